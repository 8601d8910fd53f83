// Copyright 2025 The Leibniz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar defines the numeric types the operation engine works on.
//
// Value is the capability contract: any type providing the arithmetic,
// transcendental and comparison methods it lists can instantiate the
// dispatch tables in the registry package. Two implementations ship with
// the engine: Float64 for plain evaluation and Dual for forward-mode
// tangent propagation.
//
// Example:
//
//	x := scalar.Dual{Real: 0.5, Tangent: 1}
//	fmt.Println(x.Sin()) // sin evaluated at 0.5, derivative in the tangent
package scalar

import (
	"github.com/leibniz-ad/leibniz/internal/scalar"
)

// Value is the capability set a numeric type must provide to flow through
// the operation tables.
type Value[T any] = scalar.Value[T]

// Float64 wraps float64 with the Value method set.
type Float64 = scalar.Float64

// Dual is a first-order dual number: a real part and a tangent that the
// operation methods propagate by the chain rule.
type Dual = scalar.Dual
