package op

import "github.com/leibniz-ad/leibniz/internal/scalar"

// minOp computes f = min(x, y).
//
// Partials: the subgradient indicator d/dx = (x <= y), d/dy = 1 - d/dx.
// At a tie the full weight goes to x.
type minOp[T scalar.Value[T]] struct{}

func (minOp[T]) Eval(x, y T) T { return x.Min(y) }

func (minOp[T]) Partials(x, y, _ T) (T, T) {
	dx := x.Le(y)
	return dx, dx.Const(1).Sub(dx)
}

// maxOp computes f = max(x, y).
//
// Partials: d/dx = (x >= y), d/dy = 1 - d/dx, ties to x as for minOp.
type maxOp[T scalar.Value[T]] struct{}

func (maxOp[T]) Eval(x, y T) T { return x.Max(y) }

func (maxOp[T]) Partials(x, y, _ T) (T, T) {
	dx := x.Ge(y)
	return dx, dx.Const(1).Sub(dx)
}
