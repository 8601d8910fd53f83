// Package extern defines the boundary contract for graph nodes implemented
// by externally supplied code.
//
// A Function adapts a plain callback into something a graph evaluator can
// treat like any other node: it owns numbered input and output buffers, an
// opaque user-data value handed back on every invocation, and an Evaluate
// call parameterized by the requested forward- and adjoint-sensitivity
// orders. The operation catalogue never calls into this package; it exists
// for evaluators that mix built-in primitives with external code.
package extern

import (
	"errors"
	"fmt"
)

// Wrapper is the callback an external node supplies. It reads the
// Function's input buffers, writes its output buffers, and produces forward
// sensitivities up to fwdOrder and adjoint sensitivities up to adjOrder when
// the orders ask for them.
type Wrapper func(fn *Function, fwdOrder, adjOrder int) error

// Function adapts a Wrapper into a graph node with fixed numbers of input
// and output slots. Not safe for concurrent Evaluate calls on the same
// instance: the buffers are shared state between caller and wrapper.
type Function struct {
	wrapper  Wrapper
	userData any
	inputs   [][]float64
	outputs  [][]float64
}

// New creates a Function around w with the given slot counts.
func New(w Wrapper, numInputs, numOutputs int) *Function {
	return &Function{
		wrapper: w,
		inputs:  make([][]float64, numInputs),
		outputs: make([][]float64, numOutputs),
	}
}

// SetUserData attaches an opaque value handed back through UserData on
// every invocation, typically the external code's own state.
func (f *Function) SetUserData(v any) { f.userData = v }

// UserData returns the value attached with SetUserData, or nil.
func (f *Function) UserData() any { return f.userData }

// NumInputs returns the number of input slots.
func (f *Function) NumInputs() int { return len(f.inputs) }

// NumOutputs returns the number of output slots.
func (f *Function) NumOutputs() int { return len(f.outputs) }

// SetInput stores the operand buffer for input slot i.
func (f *Function) SetInput(i int, values []float64) error {
	if i < 0 || i >= len(f.inputs) {
		return fmt.Errorf("input slot %d out of range [0, %d)", i, len(f.inputs))
	}
	f.inputs[i] = values
	return nil
}

// Input returns the operand buffer in input slot i, or nil when unset.
func (f *Function) Input(i int) []float64 { return f.inputs[i] }

// SetOutput stores the result buffer for output slot i; the wrapper writes
// into it during Evaluate.
func (f *Function) SetOutput(i int, values []float64) error {
	if i < 0 || i >= len(f.outputs) {
		return fmt.Errorf("output slot %d out of range [0, %d)", i, len(f.outputs))
	}
	f.outputs[i] = values
	return nil
}

// Output returns the result buffer in output slot i, or nil when unset.
func (f *Function) Output(i int) []float64 { return f.outputs[i] }

// Evaluate invokes the wrapper with the requested sensitivity orders.
func (f *Function) Evaluate(fwdOrder, adjOrder int) error {
	if f.wrapper == nil {
		return errors.New("no wrapper attached")
	}
	if err := f.wrapper(f, fwdOrder, adjOrder); err != nil {
		return fmt.Errorf("external node: %w", err)
	}
	return nil
}
