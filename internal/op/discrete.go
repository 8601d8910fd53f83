package op

import "github.com/leibniz-ad/leibniz/internal/scalar"

// stepOp computes the Heaviside step f = (x >= 0): 1 at and above zero,
// 0 below.
//
// Partial: 0 everywhere, including the jump at x = 0.
type stepOp[T scalar.Value[T]] struct{}

func (stepOp[T]) eval(x T) T { return x.Ge(x.Const(0)) }

func (stepOp[T]) partial(_, f T) T { return f.Const(0) }

// floorOp computes f = floor(x), flat between integers.
//
// Partial: 0 everywhere.
type floorOp[T scalar.Value[T]] struct{}

func (floorOp[T]) eval(x T) T { return x.Floor() }

func (floorOp[T]) partial(_, f T) T { return f.Const(0) }

// ceilOp computes f = ceil(x), flat between integers.
//
// Partial: 0 everywhere.
type ceilOp[T scalar.Value[T]] struct{}

func (ceilOp[T]) eval(x T) T { return x.Ceil() }

func (ceilOp[T]) partial(_, f T) T { return f.Const(0) }

// equalityOp computes the indicator f = (x == y).
//
// Partials: 0 and 0; the indicator is flat away from the diagonal and the
// jump on it carries no usable derivative.
type equalityOp[T scalar.Value[T]] struct{}

func (equalityOp[T]) Eval(x, y T) T { return x.Eq(y) }

func (equalityOp[T]) Partials(_, _, f T) (T, T) {
	zero := f.Const(0)
	return zero, zero
}
