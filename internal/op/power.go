package op

import "github.com/leibniz-ad/leibniz/internal/scalar"

// expOp computes f = e**x.
//
// Partial: d(exp(x))/dx = exp(x) = f, reused instead of recomputed.
type expOp[T scalar.Value[T]] struct{}

func (expOp[T]) eval(x T) T { return x.Exp() }

func (expOp[T]) partial(_, f T) T { return f }

// logOp computes the natural logarithm f = log(x).
//
// Partial: d(log(x))/dx = 1/x.
type logOp[T scalar.Value[T]] struct{}

func (logOp[T]) eval(x T) T { return x.Log() }

func (logOp[T]) partial(x, _ T) T { return x.Const(1).Div(x) }

// powOp computes f = x**y with both operands live.
//
// Partials: d(x^y)/dx = y*x^(y-1), d(x^y)/dy = log(x)*f.
type powOp[T scalar.Value[T]] struct{}

func (powOp[T]) Eval(x, y T) T { return x.Pow(y) }

func (powOp[T]) Partials(x, y, f T) (T, T) {
	dx := y.Mul(x.Pow(y.Sub(y.Const(1))))
	return dx, x.Log().Mul(f)
}

// constPowOp computes f = x**y for an exponent known to be constant: the
// forward rule matches powOp but the second partial is pinned to zero, so
// no log(x) term appears and negative bases stay differentiable.
type constPowOp[T scalar.Value[T]] struct{}

func (constPowOp[T]) Eval(x, y T) T { return x.Pow(y) }

func (constPowOp[T]) Partials(x, y, f T) (T, T) {
	dx := y.Mul(x.Pow(y.Sub(y.Const(1))))
	return dx, f.Const(0)
}

// sqrtOp computes f = sqrt(x).
//
// Partial: d(sqrt(x))/dx = 1/(2*sqrt(x)) = 1/(2f).
type sqrtOp[T scalar.Value[T]] struct{}

func (sqrtOp[T]) eval(x T) T { return x.Sqrt() }

func (sqrtOp[T]) partial(_, f T) T { return f.Const(1).Div(f.Add(f)) }
