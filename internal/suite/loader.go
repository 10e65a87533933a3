package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultTolerance = 1e-9

var validErrKinds = map[string]bool{
	"InvalidNumber":        true,
	"UnexpectedCharacter":  true,
	"UnmatchedParenthesis": true,
	"DivisionByZero":       true,
	"InsufficientOperands": true,
	"MalformedExpression":  true,
}

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *Suite) error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if c.Expression == "" {
			return fmt.Errorf("case %q has no expression", c.ID)
		}
		if c.Want == nil && c.WantErr == "" {
			return fmt.Errorf("case %q needs want or want_err", c.ID)
		}
		if c.Want != nil && c.WantErr != "" {
			return fmt.Errorf("case %q has both want and want_err", c.ID)
		}
		if c.WantErr != "" && !validErrKinds[c.WantErr] {
			return fmt.Errorf("case %q has unknown error kind %q", c.ID, c.WantErr)
		}
		if c.Tolerance <= 0 {
			c.Tolerance = defaultTolerance
		}
	}
	return nil
}
