package op

import (
	"fmt"
	"strings"
)

// Kind identifies one primitive operation in the closed catalogue.
//
// Ordinals are a wire format: serialized graphs and generated code index
// dispatch tables by these values, so the list is append-only and existing
// ordinals never change.
type Kind uint8

// The operation catalogue. Count is the catalogue size, not an operation.
const (
	Add Kind = iota
	Sub
	Mul
	Div
	Neg
	Exp
	Log
	Pow
	ConstPow
	Sqrt
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Step
	Floor
	Ceil
	Equality
	Erf
	Min
	Max
	Inv
	Sinh
	Cosh
	Tanh
	PrintDebug

	Count
)

var kindNames = [Count]string{
	Add:        "Add",
	Sub:        "Sub",
	Mul:        "Mul",
	Div:        "Div",
	Neg:        "Neg",
	Exp:        "Exp",
	Log:        "Log",
	Pow:        "Pow",
	ConstPow:   "ConstPow",
	Sqrt:       "Sqrt",
	Sin:        "Sin",
	Cos:        "Cos",
	Tan:        "Tan",
	Asin:       "Asin",
	Acos:       "Acos",
	Atan:       "Atan",
	Step:       "Step",
	Floor:      "Floor",
	Ceil:       "Ceil",
	Equality:   "Equality",
	Erf:        "Erf",
	Min:        "Min",
	Max:        "Max",
	Inv:        "Inv",
	Sinh:       "Sinh",
	Cosh:       "Cosh",
	Tanh:       "Tanh",
	PrintDebug: "PrintDebug",
}

// String returns the operation name, or "Kind(n)" for an out-of-range value.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is inside the catalogue.
func (k Kind) Valid() bool { return k < Count }

// ParseKind resolves a case-insensitive operation name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k := Add; k < Count; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}
