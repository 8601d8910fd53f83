package op

import "fmt"

// Descriptor carries the static, type-independent facts about one
// operation: arity, the algebraic flags consumed by sparsity and
// simplification passes, and the text fragments used to render it.
//
// The zero flags are structural guarantees, not numeric observations: a set
// flag promises the result is exactly zero whenever the named operands are,
// so a graph pass may elide the node. Div keeps ZeroBoth false because
// 0/0 is NaN, and PrintDebug keeps all three false so its diagnostic side
// effect is never elided.
type Descriptor struct {
	// Arity is 1 or 2. Arity-1 operations still accept a second operand
	// through the uniform binary signatures and ignore it.
	Arity int

	// Commutative reports that swapping the operands cannot change the
	// result. Never set for arity-1 operations: they ignore the second
	// operand, so swapping does change the result.
	Commutative bool

	// ZeroBoth means f(0, 0) == 0. For arity-1 operations it coincides
	// with ZeroLeft and both mean f(0) == 0.
	ZeroBoth bool
	// ZeroLeft means f(0, y) == 0 for every y.
	ZeroLeft bool
	// ZeroRight means f(x, 0) == 0 for every x. Always false for arity-1
	// operations.
	ZeroRight bool

	// Rendering fragments: binary operations render
	// Prefix + x + Infix + y + Suffix, arity-1 operations
	// Prefix + x + Suffix. The fragment texts target C-style generated
	// code, hence pow(, fmin( and fmax(.
	Prefix string
	Infix  string
	Suffix string
}

var descriptors = [Count]Descriptor{
	Add:        {Arity: 2, Commutative: true, ZeroBoth: true, Prefix: "(", Infix: "+", Suffix: ")"},
	Sub:        {Arity: 2, ZeroBoth: true, Prefix: "(", Infix: "-", Suffix: ")"},
	Mul:        {Arity: 2, Commutative: true, ZeroBoth: true, ZeroLeft: true, ZeroRight: true, Prefix: "(", Infix: "*", Suffix: ")"},
	Div:        {Arity: 2, ZeroLeft: true, Prefix: "(", Infix: "/", Suffix: ")"},
	Neg:        {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "(-", Suffix: ")"},
	Exp:        {Arity: 1, Prefix: "exp(", Suffix: ")"},
	Log:        {Arity: 1, Prefix: "log(", Suffix: ")"},
	Pow:        {Arity: 2, Prefix: "pow(", Infix: ",", Suffix: ")"},
	ConstPow:   {Arity: 2, Prefix: "pow(", Infix: ",", Suffix: ")"},
	Sqrt:       {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "sqrt(", Suffix: ")"},
	Sin:        {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "sin(", Suffix: ")"},
	Cos:        {Arity: 1, Prefix: "cos(", Suffix: ")"},
	Tan:        {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "tan(", Suffix: ")"},
	Asin:       {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "asin(", Suffix: ")"},
	Acos:       {Arity: 1, Prefix: "acos(", Suffix: ")"},
	Atan:       {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "atan(", Suffix: ")"},
	Step:       {Arity: 1, Prefix: "(", Suffix: ">=0)"},
	Floor:      {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "floor(", Suffix: ")"},
	Ceil:       {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "ceil(", Suffix: ")"},
	Equality:   {Arity: 2, Prefix: "(", Infix: "==", Suffix: ")"},
	Erf:        {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "erf(", Suffix: ")"},
	Min:        {Arity: 2, Commutative: true, ZeroBoth: true, Prefix: "fmin(", Infix: ",", Suffix: ")"},
	Max:        {Arity: 2, Commutative: true, ZeroBoth: true, Prefix: "fmax(", Infix: ",", Suffix: ")"},
	Inv:        {Arity: 1, Prefix: "(1/", Suffix: ")"},
	Sinh:       {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "sinh(", Suffix: ")"},
	Cosh:       {Arity: 1, Prefix: "cosh(", Suffix: ")"},
	Tanh:       {Arity: 1, ZeroBoth: true, ZeroLeft: true, Prefix: "tanh(", Suffix: ")"},
	PrintDebug: {Arity: 2, Prefix: "printme(", Infix: ",", Suffix: ")"},
}

// Describe returns the descriptor for k. It panics on an invalid opcode:
// descriptors are indexed by ordinal and an out-of-range value is a caller
// bug, not a recoverable condition.
func Describe(k Kind) Descriptor {
	if !k.Valid() {
		panic(fmt.Sprintf("invalid opcode %d: the operation catalogue has %d entries", uint8(k), int(Count)))
	}
	return descriptors[k]
}
