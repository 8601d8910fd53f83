package op

import "github.com/leibniz-ad/leibniz/internal/scalar"

// addOp computes f = x + y.
//
// Partials: d(x+y)/dx = 1, d(x+y)/dy = 1.
type addOp[T scalar.Value[T]] struct{}

func (addOp[T]) Eval(x, y T) T { return x.Add(y) }

func (addOp[T]) Partials(_, _, f T) (T, T) {
	one := f.Const(1)
	return one, one
}

// subOp computes f = x - y.
//
// Partials: d(x-y)/dx = 1, d(x-y)/dy = -1.
type subOp[T scalar.Value[T]] struct{}

func (subOp[T]) Eval(x, y T) T { return x.Sub(y) }

func (subOp[T]) Partials(_, _, f T) (T, T) {
	return f.Const(1), f.Const(-1)
}

// mulOp computes f = x * y.
//
// Partials: d(x*y)/dx = y, d(x*y)/dy = x.
type mulOp[T scalar.Value[T]] struct{}

func (mulOp[T]) Eval(x, y T) T { return x.Mul(y) }

func (mulOp[T]) Partials(x, y, _ T) (T, T) {
	return y, x
}

// divOp computes f = x / y.
//
// Partials: d(x/y)/dx = 1/y, d(x/y)/dy = -f/y.
type divOp[T scalar.Value[T]] struct{}

func (divOp[T]) Eval(x, y T) T { return x.Div(y) }

func (divOp[T]) Partials(_, y, f T) (T, T) {
	dx := f.Const(1).Div(y)
	return dx, dx.Neg().Mul(f)
}

// negOp computes f = -x.
//
// Partial: d(-x)/dx = -1.
type negOp[T scalar.Value[T]] struct{}

func (negOp[T]) eval(x T) T { return x.Neg() }

func (negOp[T]) partial(_, f T) T { return f.Const(-1) }

// invOp computes the reciprocal f = 1/x.
//
// Partial: d(1/x)/dx = -1/x² = -f².
type invOp[T scalar.Value[T]] struct{}

func (invOp[T]) eval(x T) T { return x.Const(1).Div(x) }

func (invOp[T]) partial(_, f T) T { return f.Mul(f).Neg() }
