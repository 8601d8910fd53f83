// Copyright 2025 The Leibniz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package op exposes the closed catalogue of primitive scalar operations.
//
// Every differentiable expression in the engine is built from these
// primitives. Each Kind carries a static Descriptor (arity, algebraic
// flags, rendering fragments) and, through the registry package, evaluation
// and derivative rules for any numeric type satisfying scalar.Value.
//
// Kind ordinals are stable and append-only: serialized graphs and generated
// code index dispatch tables by them.
//
// Example:
//
//	k, _ := op.ParseKind("mul")
//	fmt.Println(op.Render(k, "a", "b"))   // (a*b)
//	fmt.Println(op.Describe(k).Commutative) // true
package op

import (
	"io"

	"github.com/leibniz-ad/leibniz/internal/op"
	"github.com/leibniz-ad/leibniz/internal/scalar"
)

// Kind identifies one primitive operation in the closed catalogue.
type Kind = op.Kind

// The operation catalogue. Count is the catalogue size, not an operation.
const (
	Add        Kind = op.Add
	Sub        Kind = op.Sub
	Mul        Kind = op.Mul
	Div        Kind = op.Div
	Neg        Kind = op.Neg
	Exp        Kind = op.Exp
	Log        Kind = op.Log
	Pow        Kind = op.Pow
	ConstPow   Kind = op.ConstPow
	Sqrt       Kind = op.Sqrt
	Sin        Kind = op.Sin
	Cos        Kind = op.Cos
	Tan        Kind = op.Tan
	Asin       Kind = op.Asin
	Acos       Kind = op.Acos
	Atan       Kind = op.Atan
	Step       Kind = op.Step
	Floor      Kind = op.Floor
	Ceil       Kind = op.Ceil
	Equality   Kind = op.Equality
	Erf        Kind = op.Erf
	Min        Kind = op.Min
	Max        Kind = op.Max
	Inv        Kind = op.Inv
	Sinh       Kind = op.Sinh
	Cosh       Kind = op.Cosh
	Tanh       Kind = op.Tanh
	PrintDebug Kind = op.PrintDebug

	Count Kind = op.Count
)

// Descriptor carries the static, type-independent facts about one
// operation: arity, algebraic flags, and rendering fragments.
type Descriptor = op.Descriptor

// Operation is the uniform binary contract every primitive satisfies:
// a forward rule and a partial-derivative rule in terms of the operands
// and the already-computed forward value.
type Operation[T scalar.Value[T]] = op.Operation[T]

// Catalog returns the operation catalogue for T, indexed by Kind. Most
// callers want the memoized dispatch tables in the registry package
// instead; Catalog serves graph builders that bind operations directly.
func Catalog[T scalar.Value[T]]() [Count]Operation[T] {
	return op.Catalog[T]()
}

// Describe returns the descriptor for k. It panics on an invalid opcode.
func Describe(k Kind) Descriptor { return op.Describe(k) }

// ParseKind resolves a case-insensitive operation name to its Kind.
func ParseKind(name string) (Kind, error) { return op.ParseKind(name) }

// Render formats one operation applied to already-rendered operand texts.
func Render(k Kind, xText, yText string) string { return op.Render(k, xText, yText) }

// AppendRender appends the rendering of k applied to the operand texts to
// dst and returns the extended slice.
func AppendRender(dst []byte, k Kind, xText, yText string) []byte {
	return op.AppendRender(dst, k, xText, yText)
}

// Fragments returns the prefix, infix and suffix rendering fragments of k,
// for callers that stream expression text themselves.
func Fragments(k Kind) (prefix, infix, suffix string) { return op.Fragments(k) }

// SetDebugOutput redirects PrintDebug diagnostics to w and returns the
// previous writer. A nil w restores the default, standard error.
func SetDebugOutput(w io.Writer) io.Writer { return op.SetDebugOutput(w) }
