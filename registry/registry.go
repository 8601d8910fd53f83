// Copyright 2025 The Leibniz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package registry provides the per-type dispatch tables that tie opcodes
// to evaluation and derivative rules.
//
// A Table binds every operation in the catalogue to a concrete numeric
// type. Tables are built once per type on first use and shared between
// goroutines, so interpreter loops can dispatch on opcodes without
// per-call setup.
//
// Example:
//
//	f := registry.Evaluate(op.Add, scalar.Float64(2), scalar.Float64(3))
//	dx, dy := registry.Partials(op.Div, scalar.Float64(6), scalar.Float64(3), f)
package registry

import (
	"github.com/leibniz-ad/leibniz/internal/op"
	"github.com/leibniz-ad/leibniz/internal/registry"
	"github.com/leibniz-ad/leibniz/internal/scalar"
)

// Table holds the dispatch tables for one numeric type.
type Table[T scalar.Value[T]] = registry.Table[T]

// For returns the dispatch table for T, building it on first use.
func For[T scalar.Value[T]]() *Table[T] { return registry.For[T]() }

// Evaluate applies operation k to the operands using T's memoized table.
func Evaluate[T scalar.Value[T]](k op.Kind, x, y T) T {
	return registry.Evaluate(k, x, y)
}

// Partials returns the partial derivatives of operation k given the
// operands and the already-computed forward value f.
func Partials[T scalar.Value[T]](k op.Kind, x, y, f T) (T, T) {
	return registry.Partials(k, x, y, f)
}

// EvaluatePartials computes the forward value and both partials in one
// call. It is safe to use when the result will overwrite an operand slot.
func EvaluatePartials[T scalar.Value[T]](k op.Kind, x, y T) (f, dx, dy T) {
	return registry.EvaluatePartials(k, x, y)
}
