package suite

// Suite is a yaml-defined set of expression regression cases, used by
// `calc -suite` and the evaluator tests.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case checks one expression against either an expected value or an
// expected error kind. Exactly one of Want/WantErr must be set.
type Case struct {
	ID         string   `yaml:"id"`
	Expression string   `yaml:"expression"`
	Want       *float64 `yaml:"want,omitempty"`
	WantErr    string   `yaml:"want_err,omitempty"`
	Tolerance  float64  `yaml:"tolerance,omitempty"`
}
