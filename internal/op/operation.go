// Package op defines the closed catalogue of primitive scalar operations
// shared by expression graphs, the dispatch tables, and generated code.
//
// Each operation contributes three things:
//   - Eval: the forward rule f = op(x, y)
//   - Partials: the partial derivatives (df/dx, df/dy), given x, y and the
//     already-computed f, so rules like d(exp(x))/dx = f can reuse it
//   - a Descriptor: arity, algebraic flags, and rendering fragments
//
// Everything is written against the scalar.Value capability set, so the same
// catalogue serves plain floats, dual numbers, and any future numeric-like
// instantiation.
package op

import "github.com/leibniz-ad/leibniz/internal/scalar"

// Operation is the uniform binary contract every primitive satisfies.
// Arity-1 operations take it through liftUnary.
type Operation[T scalar.Value[T]] interface {
	// Eval computes f = op(x, y). Arity-1 operations ignore y.
	Eval(x, y T) T

	// Partials computes (df/dx, df/dy). f must be the value Eval returned
	// for the same x and y: several rules are cheapest in terms of f, and
	// the contract trusts the caller instead of recomputing it.
	Partials(x, y, f T) (T, T)
}

// unaryOperation is the reduced contract for arity-1 primitives.
type unaryOperation[T scalar.Value[T]] interface {
	eval(x T) T
	partial(x, f T) T
}

// liftUnary adapts an arity-1 primitive to the uniform binary contract:
// the second operand is ignored and the second partial is identically zero.
type liftUnary[T scalar.Value[T]] struct {
	u unaryOperation[T]
}

func (l liftUnary[T]) Eval(x, _ T) T { return l.u.eval(x) }

func (l liftUnary[T]) Partials(x, _, f T) (T, T) {
	return l.u.partial(x, f), f.Const(0)
}

// Catalog returns the operation catalogue for T, indexed by Kind. Every slot
// is populated; the dispatch-table build asserts this before first use.
func Catalog[T scalar.Value[T]]() [Count]Operation[T] {
	var c [Count]Operation[T]

	c[Add] = addOp[T]{}
	c[Sub] = subOp[T]{}
	c[Mul] = mulOp[T]{}
	c[Div] = divOp[T]{}
	c[Neg] = liftUnary[T]{negOp[T]{}}
	c[Exp] = liftUnary[T]{expOp[T]{}}
	c[Log] = liftUnary[T]{logOp[T]{}}
	c[Pow] = powOp[T]{}
	c[ConstPow] = constPowOp[T]{}
	c[Sqrt] = liftUnary[T]{sqrtOp[T]{}}
	c[Sin] = liftUnary[T]{sinOp[T]{}}
	c[Cos] = liftUnary[T]{cosOp[T]{}}
	c[Tan] = liftUnary[T]{tanOp[T]{}}
	c[Asin] = liftUnary[T]{asinOp[T]{}}
	c[Acos] = liftUnary[T]{acosOp[T]{}}
	c[Atan] = liftUnary[T]{atanOp[T]{}}
	c[Step] = liftUnary[T]{stepOp[T]{}}
	c[Floor] = liftUnary[T]{floorOp[T]{}}
	c[Ceil] = liftUnary[T]{ceilOp[T]{}}
	c[Equality] = equalityOp[T]{}
	c[Erf] = liftUnary[T]{erfOp[T]{}}
	c[Min] = minOp[T]{}
	c[Max] = maxOp[T]{}
	c[Inv] = liftUnary[T]{invOp[T]{}}
	c[Sinh] = liftUnary[T]{sinhOp[T]{}}
	c[Cosh] = liftUnary[T]{coshOp[T]{}}
	c[Tanh] = liftUnary[T]{tanhOp[T]{}}
	c[PrintDebug] = printDebugOp[T]{}

	return c
}
