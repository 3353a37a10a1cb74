package harness

import (
	"fmt"

	"github.com/roach88/polygon/internal/describe"
)

// Result holds the outcome of running a scenario.
type Result struct {
	Descriptions []describe.Description
	Lines        []string
	Pass         bool
	Errors       []string
}

// Run describes every shape of s in order and compares the lines with s.Expect.
func Run(s *Scenario) *Result {
	result := &Result{
		Descriptions: describe.DescribeAll(s.Shapes),
	}
	for _, d := range result.Descriptions {
		result.Lines = append(result.Lines, d.Text)
	}

	if s.Expect != nil {
		result.Errors = compareLines(s.Expect, result.Lines)
	}
	result.Pass = len(result.Errors) == 0
	return result
}

func compareLines(want, got []string) []string {
	var errs []string
	if len(want) != len(got) {
		errs = append(errs, fmt.Sprintf("expected %d lines, got %d", len(want), len(got)))
	}
	for i := 0; i < len(want) && i < len(got); i++ {
		if want[i] != got[i] {
			errs = append(errs, fmt.Sprintf("line %d: expected %q, got %q", i+1, want[i], got[i]))
		}
	}
	return errs
}
