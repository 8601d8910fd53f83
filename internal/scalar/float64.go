package scalar

import (
	"math"
	"strconv"
)

// Float64 is the reference instantiation of Value: IEEE-754 double precision
// on the math package. Domain violations keep IEEE-754 semantics (Log of a
// negative value is NaN, division by zero is ±Inf) and propagate through
// later operations; nothing here masks or checks them.
type Float64 float64

// Add returns x + y.
func (x Float64) Add(y Float64) Float64 { return x + y }

// Sub returns x - y.
func (x Float64) Sub(y Float64) Float64 { return x - y }

// Mul returns x * y.
func (x Float64) Mul(y Float64) Float64 { return x * y }

// Div returns x / y.
func (x Float64) Div(y Float64) Float64 { return x / y }

// Neg returns -x.
func (x Float64) Neg() Float64 { return -x }

// Min returns the smaller of x and y.
func (x Float64) Min(y Float64) Float64 {
	return Float64(math.Min(float64(x), float64(y)))
}

// Max returns the larger of x and y.
func (x Float64) Max(y Float64) Float64 {
	return Float64(math.Max(float64(x), float64(y)))
}

// Exp returns e**x.
func (x Float64) Exp() Float64 { return Float64(math.Exp(float64(x))) }

// Log returns the natural logarithm of x.
func (x Float64) Log() Float64 { return Float64(math.Log(float64(x))) }

// Pow returns x**y.
func (x Float64) Pow(y Float64) Float64 {
	return Float64(math.Pow(float64(x), float64(y)))
}

// Sqrt returns the square root of x.
func (x Float64) Sqrt() Float64 { return Float64(math.Sqrt(float64(x))) }

// Sin returns the sine of x.
func (x Float64) Sin() Float64 { return Float64(math.Sin(float64(x))) }

// Cos returns the cosine of x.
func (x Float64) Cos() Float64 { return Float64(math.Cos(float64(x))) }

// Tan returns the tangent of x.
func (x Float64) Tan() Float64 { return Float64(math.Tan(float64(x))) }

// Asin returns the inverse sine of x.
func (x Float64) Asin() Float64 { return Float64(math.Asin(float64(x))) }

// Acos returns the inverse cosine of x.
func (x Float64) Acos() Float64 { return Float64(math.Acos(float64(x))) }

// Atan returns the inverse tangent of x.
func (x Float64) Atan() Float64 { return Float64(math.Atan(float64(x))) }

// Sinh returns the hyperbolic sine of x.
func (x Float64) Sinh() Float64 { return Float64(math.Sinh(float64(x))) }

// Cosh returns the hyperbolic cosine of x.
func (x Float64) Cosh() Float64 { return Float64(math.Cosh(float64(x))) }

// Tanh returns the hyperbolic tangent of x.
func (x Float64) Tanh() Float64 { return Float64(math.Tanh(float64(x))) }

// Erf returns the error function of x.
func (x Float64) Erf() Float64 { return Float64(math.Erf(float64(x))) }

// Floor returns the greatest integer value less than or equal to x.
func (x Float64) Floor() Float64 { return Float64(math.Floor(float64(x))) }

// Ceil returns the least integer value greater than or equal to x.
func (x Float64) Ceil() Float64 { return Float64(math.Ceil(float64(x))) }

// Le returns 1 when x <= y, else 0.
func (x Float64) Le(y Float64) Float64 {
	if x <= y {
		return 1
	}
	return 0
}

// Ge returns 1 when x >= y, else 0.
func (x Float64) Ge(y Float64) Float64 {
	if x >= y {
		return 1
	}
	return 0
}

// Eq returns 1 when x == y, else 0.
func (x Float64) Eq(y Float64) Float64 {
	if x == y {
		return 1
	}
	return 0
}

// Const returns c as a Float64.
func (Float64) Const(c float64) Float64 { return Float64(c) }

// String renders x in shortest-round-trip form.
func (x Float64) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}
