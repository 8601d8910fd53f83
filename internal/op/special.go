package op

import (
	"math"

	"github.com/leibniz-ad/leibniz/internal/scalar"
)

// erfOp computes the error function f = erf(x).
//
// Partial: d(erf(x))/dx = (2/sqrt(pi)) * exp(-x²).
type erfOp[T scalar.Value[T]] struct{}

func (erfOp[T]) eval(x T) T { return x.Erf() }

func (erfOp[T]) partial(x, _ T) T {
	return x.Const(2 / math.SqrtPi).Mul(x.Mul(x).Neg().Exp())
}

// printDebugOp passes x through unchanged and, as a side effect, writes the
// diagnostic line "|> y : x" to the package debug writer, tagging the value
// x with the marker y. Its zero flags all stay false so graph passes never
// elide the node and lose the diagnostic.
//
// Partials: f is x passed through, so d/dx = 1 and d/dy = 0.
type printDebugOp[T scalar.Value[T]] struct{}

func (printDebugOp[T]) Eval(x, y T) T {
	debugPrint(y.String(), x.String())
	return x
}

func (printDebugOp[T]) Partials(_, _, f T) (T, T) {
	return f.Const(1), f.Const(0)
}
