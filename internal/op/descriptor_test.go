package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leibniz-ad/leibniz/internal/scalar"
)

func TestDescriptorArity(t *testing.T) {
	unary := []Kind{
		Neg, Exp, Log, Sqrt, Sin, Cos, Tan, Asin, Acos, Atan,
		Step, Floor, Ceil, Erf, Inv, Sinh, Cosh, Tanh,
	}
	binary := []Kind{
		Add, Sub, Mul, Div, Pow, ConstPow, Equality, Min, Max, PrintDebug,
	}
	require.Len(t, unary, 18)
	require.Len(t, binary, 10)

	for _, k := range unary {
		assert.Equal(t, 1, Describe(k).Arity, "%s arity", k)
	}
	for _, k := range binary {
		assert.Equal(t, 2, Describe(k).Arity, "%s arity", k)
	}
}

func TestDescriptorCommutative(t *testing.T) {
	commutative := map[Kind]bool{Add: true, Mul: true, Min: true, Max: true}

	for k := Add; k < Count; k++ {
		assert.Equal(t, commutative[k], Describe(k).Commutative, "%s commutative", k)
	}
}

func TestDescriptorZeroFlags(t *testing.T) {
	tests := []struct {
		kind                          Kind
		zeroBoth, zeroLeft, zeroRight bool
	}{
		{Add, true, false, false},
		{Sub, true, false, false},
		{Mul, true, true, true},
		{Div, false, true, false}, // 0/0 is NaN, 0/y is 0
		{Neg, true, true, false},
		{Exp, false, false, false},
		{Sqrt, true, true, false},
		{Step, false, false, false}, // step(0) is 1
		{Equality, false, false, false},
		{Min, true, false, false},
		{Max, true, false, false},
		{Inv, false, false, false},
		{PrintDebug, false, false, false}, // never elide the side effect
	}

	for _, tt := range tests {
		d := Describe(tt.kind)
		assert.Equal(t, tt.zeroBoth, d.ZeroBoth, "%s ZeroBoth", tt.kind)
		assert.Equal(t, tt.zeroLeft, d.ZeroLeft, "%s ZeroLeft", tt.kind)
		assert.Equal(t, tt.zeroRight, d.ZeroRight, "%s ZeroRight", tt.kind)
	}
}

// TestDescriptorZeroFlagsSound evaluates every set zero flag against the
// actual forward rules: a flag that promises zero must deliver zero, or a
// simplification pass would silently change results.
func TestDescriptorZeroFlagsSound(t *testing.T) {
	catalog := Catalog[scalar.Float64]()
	samples := []scalar.Float64{-2.5, -1, 0.5, 1, 3}

	for k := Add; k < Count; k++ {
		d := Describe(k)
		impl := catalog[k]

		if d.ZeroBoth {
			assert.Zero(t, float64(impl.Eval(0, 0)), "%s ZeroBoth", k)
		}
		if d.ZeroLeft {
			for _, y := range samples {
				assert.Zero(t, float64(impl.Eval(0, y)), "%s ZeroLeft at y=%v", k, y)
			}
		}
		if d.ZeroRight {
			for _, x := range samples {
				assert.Zero(t, float64(impl.Eval(x, 0)), "%s ZeroRight at x=%v", k, x)
			}
		}
	}
}

// TestDescriptorCommutativeSound swaps operands on every commutative
// operation and expects identical results.
func TestDescriptorCommutativeSound(t *testing.T) {
	catalog := Catalog[scalar.Float64]()
	samples := []scalar.Float64{-2.5, -1, 0, 0.5, 1, 3}

	for k := Add; k < Count; k++ {
		if !Describe(k).Commutative {
			continue
		}
		impl := catalog[k]
		for _, x := range samples {
			for _, y := range samples {
				assert.Equal(t, impl.Eval(x, y), impl.Eval(y, x),
					"%s(%v, %v) vs swapped", k, x, y)
			}
		}
	}
}

func TestDescribeInvalidOpcode(t *testing.T) {
	assert.PanicsWithValue(t,
		"invalid opcode 28: the operation catalogue has 28 entries",
		func() { Describe(Count) })

	assert.Panics(t, func() { Describe(Kind(255)) })
}
