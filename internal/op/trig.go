package op

import "github.com/leibniz-ad/leibniz/internal/scalar"

// sinOp computes f = sin(x).
//
// Partial: d(sin(x))/dx = cos(x).
type sinOp[T scalar.Value[T]] struct{}

func (sinOp[T]) eval(x T) T { return x.Sin() }

func (sinOp[T]) partial(x, _ T) T { return x.Cos() }

// cosOp computes f = cos(x).
//
// Partial: d(cos(x))/dx = -sin(x).
type cosOp[T scalar.Value[T]] struct{}

func (cosOp[T]) eval(x T) T { return x.Cos() }

func (cosOp[T]) partial(x, _ T) T { return x.Sin().Neg() }

// tanOp computes f = tan(x).
//
// Partial: d(tan(x))/dx = 1/cos²(x).
type tanOp[T scalar.Value[T]] struct{}

func (tanOp[T]) eval(x T) T { return x.Tan() }

func (tanOp[T]) partial(x, _ T) T {
	c := x.Cos()
	return x.Const(1).Div(c.Mul(c))
}

// asinOp computes f = asin(x).
//
// Partial: d(asin(x))/dx = 1/sqrt(1-x²).
type asinOp[T scalar.Value[T]] struct{}

func (asinOp[T]) eval(x T) T { return x.Asin() }

func (asinOp[T]) partial(x, _ T) T {
	one := x.Const(1)
	return one.Div(one.Sub(x.Mul(x)).Sqrt())
}

// acosOp computes f = acos(x).
//
// Partial: d(acos(x))/dx = -1/sqrt(1-x²).
type acosOp[T scalar.Value[T]] struct{}

func (acosOp[T]) eval(x T) T { return x.Acos() }

func (acosOp[T]) partial(x, _ T) T {
	one := x.Const(1)
	return one.Div(one.Sub(x.Mul(x)).Sqrt()).Neg()
}

// atanOp computes f = atan(x).
//
// Partial: d(atan(x))/dx = 1/(1+x²).
type atanOp[T scalar.Value[T]] struct{}

func (atanOp[T]) eval(x T) T { return x.Atan() }

func (atanOp[T]) partial(x, _ T) T {
	one := x.Const(1)
	return one.Div(one.Add(x.Mul(x)))
}
