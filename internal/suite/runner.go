package suite

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/mathline/internal/apperr"
	"github.com/DjordjeVuckovic/mathline/internal/eval"
)

type CaseResult struct {
	ID     string
	Pass   bool
	Detail string
}

type Report struct {
	RunID   uuid.UUID
	Suite   string
	Results []CaseResult
	Failed  int
}

// Run evaluates every case in the suite and collects pass/fail results.
func Run(s *Suite, evaluator *eval.Evaluator) *Report {
	report := &Report{
		RunID: uuid.New(),
		Suite: s.Name,
	}

	for _, c := range s.Cases {
		result := runCase(&c, evaluator)
		if !result.Pass {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	return report
}

func runCase(c *Case, evaluator *eval.Evaluator) CaseResult {
	res, err := evaluator.Evaluate(c.Expression)

	if c.WantErr != "" {
		if err == nil {
			return CaseResult{ID: c.ID, Detail: fmt.Sprintf("expected %s, got %v", c.WantErr, res.Value)}
		}
		if kind := errKind(err); kind != c.WantErr {
			return CaseResult{ID: c.ID, Detail: fmt.Sprintf("expected %s, got %s", c.WantErr, kind)}
		}
		return CaseResult{ID: c.ID, Pass: true}
	}

	if err != nil {
		return CaseResult{ID: c.ID, Detail: fmt.Sprintf("unexpected error: %s", err)}
	}
	if res.Empty {
		return CaseResult{ID: c.ID, Detail: "expression evaluated to nothing"}
	}
	if math.Abs(res.Value-*c.Want) > c.Tolerance {
		return CaseResult{ID: c.ID, Detail: fmt.Sprintf("expected %v, got %v", *c.Want, res.Value)}
	}
	return CaseResult{ID: c.ID, Pass: true}
}

func errKind(err error) string {
	var se *apperr.SyntaxError
	if errors.As(err, &se) {
		return se.Kind.String()
	}
	var ee *apperr.EvalError
	if errors.As(err, &ee) {
		return ee.Kind.String()
	}
	return "unknown"
}
