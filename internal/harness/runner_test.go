package harness

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leibniz-ad/leibniz/internal/op"
	"github.com/leibniz-ad/leibniz/internal/registry"
	"github.com/leibniz-ad/leibniz/internal/scalar"
)

func f64(v float64) *float64 { return &v }

func TestRunAllPass(t *testing.T) {
	suite := &Suite{
		Name: "smoke",
		Cases: []Case{
			{Op: "add", X: 2, Y: 3, Want: &Expect{F: f64(5), DX: f64(1), DY: f64(1)}},
			{Op: "div", X: 6, Y: 3, Want: &Expect{F: f64(2), DX: f64(1.0 / 3), DY: f64(-2.0 / 3)}},
			{Op: "sin", X: 0.5, Want: &Expect{F: f64(math.Sin(0.5)), DX: f64(math.Cos(0.5)), DY: f64(0)}},
			{Op: "pow", X: 2, Y: 3, Want: &Expect{F: f64(8), DX: f64(12), DY: f64(math.Log(2) * 8)}},
		},
	}

	report := Run(suite)
	require.NotNil(t, report)
	assert.True(t, report.Passed())
	assert.Zero(t, report.Failed)
	assert.Equal(t, "smoke", report.Suite)
	require.Len(t, report.Results, 4)

	// Results keep the file order regardless of worker scheduling.
	assert.Equal(t, "Add", report.Results[0].Op)
	assert.Equal(t, "Div", report.Results[1].Op)
	assert.Equal(t, "Sin", report.Results[2].Op)
	assert.Equal(t, "Pow", report.Results[3].Op)

	r := report.Results[0]
	assert.Equal(t, 2.0, r.X)
	assert.Equal(t, 3.0, r.Y)
	assert.Equal(t, 5.0, r.F)
}

func TestRunDetectsMismatch(t *testing.T) {
	suite := &Suite{
		Name: "failing",
		Cases: []Case{
			{Op: "add", X: 2, Y: 3, Want: &Expect{F: f64(6)}},
			{Op: "mul", X: 2, Y: 3, Want: &Expect{F: f64(6)}},
		},
	}

	report := Run(suite)
	assert.False(t, report.Passed())
	assert.Equal(t, 1, report.Failed)

	bad := report.Results[0]
	assert.False(t, bad.Passed())
	require.Len(t, bad.Mismatches, 1)
	assert.Contains(t, bad.Mismatches[0], "f: got 5, want 6")

	assert.True(t, report.Results[1].Passed())
}

func TestRunNaNExpectation(t *testing.T) {
	nan := math.NaN()
	suite := &Suite{
		Name: "nan",
		Cases: []Case{
			// log(-1) is NaN and the expectation says so.
			{Op: "log", X: -1, Want: &Expect{F: f64(nan)}},
			// 0/0 is NaN too.
			{Op: "div", X: 0, Y: 0, Want: &Expect{F: f64(nan)}},
			// A NaN expectation against a finite result must fail.
			{Op: "add", X: 1, Y: 1, Want: &Expect{F: f64(nan)}},
		},
	}

	report := Run(suite)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, report.Results[0].Passed())
	assert.True(t, report.Results[1].Passed())
	assert.False(t, report.Results[2].Passed())
	assert.Contains(t, report.Results[2].Mismatches[0], "want NaN")
}

func TestRunTolerance(t *testing.T) {
	// 1e-9 off on a magnitude-8 value passes the default relative tolerance
	// but fails a 1e-12 one.
	loose := &Suite{Name: "loose", Cases: []Case{
		{Op: "pow", X: 2, Y: 3, Want: &Expect{F: f64(8.000000001)}},
	}}
	tight := &Suite{Name: "tight", Cases: []Case{
		{Op: "pow", X: 2, Y: 3, Want: &Expect{F: f64(8.000000001), Tol: 1e-12}},
	}}

	assert.True(t, Run(loose).Passed())
	assert.False(t, Run(tight).Passed())
}

func TestRunWithoutExpectations(t *testing.T) {
	suite := &Suite{
		Name:  "dispatch-only",
		Cases: []Case{{Op: "tanh", X: 0.3}, {Op: "equality", X: 1, Y: 1}},
	}

	report := Run(suite)
	assert.True(t, report.Passed())
	assert.InDelta(t, math.Tanh(0.3), report.Results[0].F, 1e-15)
	assert.Equal(t, 1.0, report.Results[1].F)
}

func TestRunPrintDebugCase(t *testing.T) {
	var buf bytes.Buffer
	prev := op.SetDebugOutput(&buf)
	defer op.SetDebugOutput(prev)

	suite := &Suite{
		Name: "diagnostic",
		Cases: []Case{
			{Op: "printdebug", X: 3.5, Y: 7, Want: &Expect{F: f64(3.5), DX: f64(1), DY: f64(0)}},
		},
	}

	report := Run(suite)
	assert.True(t, report.Passed())
	assert.Equal(t, "|> 7 : 3.5\n", buf.String())
}

func TestRunLargeSuite(t *testing.T) {
	// Enough cases to spread over every worker.
	cases := make([]Case, 500)
	for i := range cases {
		x := float64(i%13) + 0.5
		cases[i] = Case{Op: "sinh", X: x, Want: &Expect{
			F:  f64(math.Sinh(x)),
			DX: f64(math.Cosh(x)),
		}}
	}

	report := Run(&Suite{Name: "bulk", Cases: cases})
	assert.True(t, report.Passed())
	assert.Len(t, report.Results, 500)
}

func TestRunCasePanicsOnUnvalidatedOp(t *testing.T) {
	table := registry.For[scalar.Float64]()
	assert.Panics(t, func() { runCase(table, Case{Op: "bogus", X: 1}) })
}
