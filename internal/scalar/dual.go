package scalar

import (
	"fmt"
	"math"
)

// Dual is a forward-mode dual number x = Real + Tangent·ϵ with ϵ² = 0.
// Every operation propagates the tangent by the chain rule, so seeding
// Tangent=1 on one input of an expression yields the derivative of the
// result with respect to that input alongside the value.
//
// Dual doubles as a self-check for the operation catalogue: running the
// catalogue's evaluation rules on Dual seeds must reproduce the catalogue's
// own analytic partials.
type Dual struct {
	Real    float64
	Tangent float64
}

// Add returns x + y.
func (x Dual) Add(y Dual) Dual {
	return Dual{x.Real + y.Real, x.Tangent + y.Tangent}
}

// Sub returns x - y.
func (x Dual) Sub(y Dual) Dual {
	return Dual{x.Real - y.Real, x.Tangent - y.Tangent}
}

// Mul returns x * y (product rule).
func (x Dual) Mul(y Dual) Dual {
	return Dual{x.Real * y.Real, x.Tangent*y.Real + x.Real*y.Tangent}
}

// Div returns x / y (quotient rule).
func (x Dual) Div(y Dual) Dual {
	return Dual{
		x.Real / y.Real,
		(x.Tangent*y.Real - x.Real*y.Tangent) / (y.Real * y.Real),
	}
}

// Neg returns -x.
func (x Dual) Neg() Dual { return Dual{-x.Real, -x.Tangent} }

// Min returns the operand with the smaller real part; the winner's tangent
// travels with it. Ties go to x.
func (x Dual) Min(y Dual) Dual {
	if x.Real <= y.Real {
		return x
	}
	return y
}

// Max returns the operand with the larger real part; the winner's tangent
// travels with it. Ties go to x.
func (x Dual) Max(y Dual) Dual {
	if x.Real >= y.Real {
		return x
	}
	return y
}

// Exp returns e**x.
func (x Dual) Exp() Dual {
	f := math.Exp(x.Real)
	return Dual{f, f * x.Tangent}
}

// Log returns the natural logarithm of x.
func (x Dual) Log() Dual {
	return Dual{math.Log(x.Real), x.Tangent / x.Real}
}

// Pow returns x**y. Each partial term is skipped when its tangent seed is
// zero, so constant exponents do not pull NaN in from log of a negative
// base.
func (x Dual) Pow(y Dual) Dual {
	f := math.Pow(x.Real, y.Real)
	var t float64
	if x.Tangent != 0 {
		t += y.Real * math.Pow(x.Real, y.Real-1) * x.Tangent
	}
	if y.Tangent != 0 {
		t += math.Log(x.Real) * f * y.Tangent
	}
	return Dual{f, t}
}

// Sqrt returns the square root of x.
func (x Dual) Sqrt() Dual {
	f := math.Sqrt(x.Real)
	return Dual{f, x.Tangent / (2 * f)}
}

// Sin returns the sine of x.
func (x Dual) Sin() Dual {
	return Dual{math.Sin(x.Real), math.Cos(x.Real) * x.Tangent}
}

// Cos returns the cosine of x.
func (x Dual) Cos() Dual {
	return Dual{math.Cos(x.Real), -math.Sin(x.Real) * x.Tangent}
}

// Tan returns the tangent of x.
func (x Dual) Tan() Dual {
	f := math.Tan(x.Real)
	return Dual{f, (1 + f*f) * x.Tangent}
}

// Asin returns the inverse sine of x.
func (x Dual) Asin() Dual {
	return Dual{
		math.Asin(x.Real),
		x.Tangent / math.Sqrt(1-x.Real*x.Real),
	}
}

// Acos returns the inverse cosine of x.
func (x Dual) Acos() Dual {
	return Dual{
		math.Acos(x.Real),
		-x.Tangent / math.Sqrt(1-x.Real*x.Real),
	}
}

// Atan returns the inverse tangent of x.
func (x Dual) Atan() Dual {
	return Dual{
		math.Atan(x.Real),
		x.Tangent / (1 + x.Real*x.Real),
	}
}

// Sinh returns the hyperbolic sine of x.
func (x Dual) Sinh() Dual {
	return Dual{math.Sinh(x.Real), math.Cosh(x.Real) * x.Tangent}
}

// Cosh returns the hyperbolic cosine of x.
func (x Dual) Cosh() Dual {
	return Dual{math.Cosh(x.Real), math.Sinh(x.Real) * x.Tangent}
}

// Tanh returns the hyperbolic tangent of x.
func (x Dual) Tanh() Dual {
	f := math.Tanh(x.Real)
	return Dual{f, (1 - f*f) * x.Tangent}
}

// Erf returns the error function of x.
func (x Dual) Erf() Dual {
	return Dual{
		math.Erf(x.Real),
		2 / math.SqrtPi * math.Exp(-x.Real*x.Real) * x.Tangent,
	}
}

// Floor returns the floor of the real part. The tangent is zero: the floor
// is flat almost everywhere.
func (x Dual) Floor() Dual { return Dual{math.Floor(x.Real), 0} }

// Ceil returns the ceiling of the real part with a zero tangent.
func (x Dual) Ceil() Dual { return Dual{math.Ceil(x.Real), 0} }

// Le returns the indicator of x.Real <= y.Real with a zero tangent.
func (x Dual) Le(y Dual) Dual {
	if x.Real <= y.Real {
		return Dual{Real: 1}
	}
	return Dual{}
}

// Ge returns the indicator of x.Real >= y.Real with a zero tangent.
func (x Dual) Ge(y Dual) Dual {
	if x.Real >= y.Real {
		return Dual{Real: 1}
	}
	return Dual{}
}

// Eq returns the indicator of x.Real == y.Real with a zero tangent.
func (x Dual) Eq(y Dual) Dual {
	if x.Real == y.Real {
		return Dual{Real: 1}
	}
	return Dual{}
}

// Const returns c with a zero tangent.
func (Dual) Const(c float64) Dual { return Dual{Real: c} }

// String renders x as "(real+tangentϵ)".
func (x Dual) String() string {
	return fmt.Sprintf("(%g%+gϵ)", x.Real, x.Tangent)
}
