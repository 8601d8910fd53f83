package extern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionEvaluate(t *testing.T) {
	// An external node that sums its two inputs elementwise.
	sum := func(fn *Function, fwdOrder, adjOrder int) error {
		a, b := fn.Input(0), fn.Input(1)
		out := fn.Output(0)
		for i := range out {
			out[i] = a[i] + b[i]
		}
		return nil
	}

	fn := New(sum, 2, 1)
	assert.Equal(t, 2, fn.NumInputs())
	assert.Equal(t, 1, fn.NumOutputs())

	require.NoError(t, fn.SetInput(0, []float64{1, 2, 3}))
	require.NoError(t, fn.SetInput(1, []float64{10, 20, 30}))
	require.NoError(t, fn.SetOutput(0, make([]float64, 3)))

	require.NoError(t, fn.Evaluate(0, 0))
	assert.Equal(t, []float64{11, 22, 33}, fn.Output(0))
}

func TestFunctionUserData(t *testing.T) {
	type state struct{ calls int }

	wrapper := func(fn *Function, fwdOrder, adjOrder int) error {
		fn.UserData().(*state).calls++
		return nil
	}

	fn := New(wrapper, 0, 0)
	assert.Nil(t, fn.UserData())

	s := &state{}
	fn.SetUserData(s)
	require.NoError(t, fn.Evaluate(0, 0))
	require.NoError(t, fn.Evaluate(0, 0))
	assert.Equal(t, 2, s.calls)
}

func TestFunctionOrdersPassedThrough(t *testing.T) {
	var gotFwd, gotAdj int
	fn := New(func(_ *Function, fwdOrder, adjOrder int) error {
		gotFwd, gotAdj = fwdOrder, adjOrder
		return nil
	}, 0, 0)

	require.NoError(t, fn.Evaluate(2, 1))
	assert.Equal(t, 2, gotFwd)
	assert.Equal(t, 1, gotAdj)
}

func TestFunctionSlotRangeErrors(t *testing.T) {
	fn := New(nil, 1, 1)

	assert.Error(t, fn.SetInput(-1, nil))
	assert.Error(t, fn.SetInput(1, nil))
	assert.NoError(t, fn.SetInput(0, []float64{1}))

	assert.Error(t, fn.SetOutput(-1, nil))
	assert.Error(t, fn.SetOutput(1, nil))
	assert.NoError(t, fn.SetOutput(0, []float64{0}))
}

func TestFunctionNoWrapper(t *testing.T) {
	fn := New(nil, 0, 0)
	err := fn.Evaluate(0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wrapper attached")
}

func TestFunctionWrapperErrorWrapped(t *testing.T) {
	cause := errors.New("solver diverged")
	fn := New(func(*Function, int, int) error { return cause }, 0, 0)

	err := fn.Evaluate(0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "external node: solver diverged")
}
