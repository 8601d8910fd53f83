package harness

import (
	"fmt"
	"math"

	"github.com/leibniz-ad/leibniz/internal/op"
	"github.com/leibniz-ad/leibniz/internal/parallel"
	"github.com/leibniz-ad/leibniz/internal/registry"
	"github.com/leibniz-ad/leibniz/internal/scalar"
)

// Result records the outcome of one case.
type Result struct {
	// Op is the resolved operation name.
	Op string `json:"op"`

	// X and Y echo the operands.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// F, DX, DY are the engine's results.
	F  float64 `json:"f"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`

	// Mismatches lists every expectation the case missed; empty means the
	// case passed.
	Mismatches []string `json:"mismatches,omitempty"`
}

// Passed reports whether the case met all its expectations.
func (r *Result) Passed() bool { return len(r.Mismatches) == 0 }

// Report is the outcome of a whole suite run. Results keep the case order
// of the suite file regardless of execution order.
type Report struct {
	Suite   string   `json:"suite"`
	Results []Result `json:"results"`
	Failed  int      `json:"failed"`
}

// Passed reports whether every case in the suite passed.
func (r *Report) Passed() bool { return r.Failed == 0 }

// Run evaluates every case of the suite through the Float64 dispatch table
// and compares the results against the expectations. Cases are independent,
// so they fan out over CPUs; the dispatch tables are built once and shared
// by all workers.
func Run(suite *Suite) *Report {
	table := registry.For[scalar.Float64]()
	results := make([]Result, len(suite.Cases))

	parallel.For(len(suite.Cases), func(i int) {
		results[i] = runCase(table, suite.Cases[i])
	}, parallel.DefaultConfig())

	report := &Report{Suite: suite.Name, Results: results}
	for i := range results {
		if !results[i].Passed() {
			report.Failed++
		}
	}
	return report
}

// runCase evaluates one vector. Operation names were resolved during suite
// validation, so ParseKind cannot fail here.
func runCase(table *registry.Table[scalar.Float64], c Case) Result {
	kind, err := op.ParseKind(c.Op)
	if err != nil {
		panic(fmt.Sprintf("unvalidated case reached the runner: %v", err))
	}

	f, dx, dy := table.EvaluatePartials(kind, scalar.Float64(c.X), scalar.Float64(c.Y))
	r := Result{
		Op: kind.String(),
		X:  c.X,
		Y:  c.Y,
		F:  float64(f),
		DX: float64(dx),
		DY: float64(dy),
	}

	if c.Want == nil {
		return r
	}
	tol := c.Want.Tol
	if tol == 0 {
		tol = DefaultTolerance
	}
	r.compare("f", r.F, c.Want.F, tol)
	r.compare("dx", r.DX, c.Want.DX, tol)
	r.compare("dy", r.DY, c.Want.DY, tol)
	return r
}

// compare records a mismatch when got is outside the tolerance around a
// stated expectation. A NaN expectation matches exactly a NaN result.
func (r *Result) compare(name string, got float64, want *float64, tol float64) {
	if want == nil {
		return
	}
	if math.IsNaN(*want) {
		if !math.IsNaN(got) {
			r.Mismatches = append(r.Mismatches, fmt.Sprintf("%s: got %g, want NaN", name, got))
		}
		return
	}
	if math.Abs(got-*want) > tol*math.Max(1, math.Abs(*want)) {
		r.Mismatches = append(r.Mismatches, fmt.Sprintf("%s: got %g, want %g (tol %g)", name, got, *want, tol))
	}
}
