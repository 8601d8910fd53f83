package op

import "github.com/leibniz-ad/leibniz/internal/scalar"

// sinhOp computes f = sinh(x).
//
// Partial: d(sinh(x))/dx = cosh(x).
type sinhOp[T scalar.Value[T]] struct{}

func (sinhOp[T]) eval(x T) T { return x.Sinh() }

func (sinhOp[T]) partial(x, _ T) T { return x.Cosh() }

// coshOp computes f = cosh(x).
//
// Partial: d(cosh(x))/dx = sinh(x).
type coshOp[T scalar.Value[T]] struct{}

func (coshOp[T]) eval(x T) T { return x.Cosh() }

func (coshOp[T]) partial(x, _ T) T { return x.Sinh() }

// tanhOp computes f = tanh(x).
//
// Partial: d(tanh(x))/dx = 1 - tanh²(x) = 1 - f².
type tanhOp[T scalar.Value[T]] struct{}

func (tanhOp[T]) eval(x T) T { return x.Tanh() }

func (tanhOp[T]) partial(x, f T) T { return x.Const(1).Sub(f.Mul(f)) }
