package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/polygon/internal/describe"
)

// Snapshot is the golden form of a scenario run.
type Snapshot struct {
	ScenarioName string                 `json:"scenario_name"`
	Descriptions []describe.Description `json:"descriptions"`
}

// MarshalSnapshot renders a snapshot as indented JSON.
// Strings are NFC normalized and HTML characters are not escaped, so
// equivalent inputs always produce byte-identical golden files.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	normalized := Snapshot{
		ScenarioName: norm.NFC.String(s.ScenarioName),
		Descriptions: make([]describe.Description, len(s.Descriptions)),
	}
	for i, d := range s.Descriptions {
		d.Type = norm.NFC.String(d.Type)
		d.Text = norm.NFC.String(d.Text)
		normalized.Descriptions[i] = d
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RunWithGolden runs a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can assert on Pass as well.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result := Run(scenario)
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against a golden file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(Snapshot{
		ScenarioName: scenarioName,
		Descriptions: result.Descriptions,
	})
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
