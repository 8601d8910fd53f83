// Package scalar defines the numeric capability contract shared by every type
// that can flow through the operation catalogue, plus the concrete
// instantiations shipped with the engine.
//
// The contract is a self-referential generic constraint: a type T satisfies
// Value[T] when it provides the arithmetic, comparisons, and transcendental
// functions the catalogue's evaluation and derivative rules are written
// against. Two instantiations are provided:
//   - Float64: plain IEEE-754 evaluation (the reference instantiation)
//   - Dual: forward-mode dual numbers carrying a tangent component
package scalar

// Value is the capability set required of a numeric-like type T.
//
// Comparisons (Le, Ge, Eq) return indicator values of T itself, Const(1)
// when the relation holds and Const(0) otherwise, rather than bool, so
// tangent types keep their own comparison semantics (compare real parts,
// zero tangent). Derivative rules for non-smooth operations are built from
// these indicators.
//
// Const builds a literal of the receiver's kind; it is how generic code
// introduces constants without knowing T. The receiver only supplies the
// kind, its value is ignored.
type Value[T any] interface {
	// Arithmetic.
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Min(T) T
	Max(T) T

	// Transcendental and rounding functions.
	Exp() T
	Log() T
	Pow(T) T
	Sqrt() T
	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan() T
	Sinh() T
	Cosh() T
	Tanh() T
	Erf() T
	Floor() T
	Ceil() T

	// Indicator comparisons.
	Le(T) T
	Ge(T) T
	Eq(T) T

	// Const returns a literal of the receiver's kind.
	Const(float64) T

	// String renders the value for diagnostics.
	String() string
}
