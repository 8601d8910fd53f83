// Package harness runs conformance test-vector suites against the operation
// catalogue.
//
// A suite is a YAML file of cases, each naming an operation, its operands,
// and optionally the expected value and partials. Running a suite evaluates
// every case through the dispatch tables and compares the results, so ports
// and code generators can validate themselves against the reference engine
// without linking it.
package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leibniz-ad/leibniz/internal/op"
)

// Suite is one conformance test-vector file.
type Suite struct {
	// Name identifies the suite in reports.
	Name string `yaml:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description,omitempty"`

	// Cases are the test vectors, run independently of each other.
	Cases []Case `yaml:"cases"`
}

// Case is a single test vector: one operation applied to concrete operands.
type Case struct {
	// Op is the operation name, matched case-insensitively ("add", "Sin").
	Op string `yaml:"op"`

	// X is the first operand.
	X float64 `yaml:"x"`

	// Y is the second operand. Arity-1 operations ignore it.
	Y float64 `yaml:"y,omitempty"`

	// Want holds the expected results. If nil the case only checks that
	// evaluation completes, which still exercises the dispatch path.
	Want *Expect `yaml:"want,omitempty"`
}

// Expect lists expected results for a case. Each field is optional; only
// the ones present are compared (subset match).
type Expect struct {
	// F is the expected forward value.
	F *float64 `yaml:"f,omitempty"`

	// DX and DY are the expected partial derivatives.
	DX *float64 `yaml:"dx,omitempty"`
	DY *float64 `yaml:"dy,omitempty"`

	// Tol is the comparison tolerance, relative with an absolute floor:
	// |got-want| <= Tol*max(1, |want|). Zero means the default 1e-9.
	Tol float64 `yaml:"tol,omitempty"`
}

// DefaultTolerance is used when a case does not set one.
const DefaultTolerance = 1e-9

// LoadSuite reads and parses a suite YAML file. Unknown fields are
// rejected so typos surface as load errors instead of silently ignored
// expectations.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	suite, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}

// ParseSuite parses suite YAML from memory.
func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return &suite, nil
}

// validateSuite checks required fields and resolves every operation name so
// a bad vector fails at load time, not mid-run.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Op == "" {
			return fmt.Errorf("cases[%d]: op is required", i)
		}
		if _, err := op.ParseKind(c.Op); err != nil {
			return fmt.Errorf("cases[%d]: %w", i, err)
		}
		if c.Want != nil && c.Want.Tol < 0 {
			return fmt.Errorf("cases[%d]: tol must be non-negative", i)
		}
	}
	return nil
}
