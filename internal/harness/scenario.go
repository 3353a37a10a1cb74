package harness

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/polygon/internal/polygon"
)

//go:embed scenario.cue
var scenarioSchema string

// Scenario is one conformance case: a list of shapes and the lines
// describing them.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string

	// Description explains what this scenario validates.
	Description string

	// Shapes are described in order.
	Shapes []polygon.Polygon

	// Expect holds the expected output lines. Nil skips the comparison.
	Expect []string
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("error scanning directory: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// ParseScenario decodes scenario YAML and validates it against the
// #Scenario CUE definition. Shapes are decoded through the polygon codec.
func ParseScenario(data []byte) (*Scenario, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("invalid scenario: empty document")
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema, cue.Filename("scenario.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling scenario schema: %w", err)
	}

	v := schema.LookupPath(cue.ParsePath("#Scenario")).Unify(ctx.Encode(raw))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	s := &Scenario{}
	var err error
	if s.Name, err = v.LookupPath(cue.ParsePath("name")).String(); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if s.Description, err = v.LookupPath(cue.ParsePath("description")).String(); err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}

	iter, err := v.LookupPath(cue.ParsePath("shapes")).List()
	if err != nil {
		return nil, fmt.Errorf("shapes: %w", err)
	}
	for i := 0; iter.Next(); i++ {
		data, err := iter.Value().MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		p, err := polygon.UnmarshalPolygon(data)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		s.Shapes = append(s.Shapes, p)
	}

	if expect := v.LookupPath(cue.ParsePath("expect")); expect.Exists() {
		s.Expect = []string{}
		if err := expect.Decode(&s.Expect); err != nil {
			return nil, fmt.Errorf("expect: %w", err)
		}
	}

	return s, nil
}
