// Package registry builds and memoizes the per-type dispatch tables for the
// operation catalogue.
//
// A Table holds five parallel opcode-indexed structures (evaluation, partial
// derivatives, combined evaluation+partials, rendering, and the static
// descriptors), so graph interpreters and code generators dispatch any
// operation in O(1) from its opcode. Tables are built exactly once per
// numeric type through For, verified complete at construction, and immutable
// afterwards.
package registry

import (
	"fmt"

	"github.com/leibniz-ad/leibniz/internal/op"
	"github.com/leibniz-ad/leibniz/internal/scalar"
)

// Table is the dispatch surface for one numeric type. Obtain it through
// For; the zero value is unusable.
type Table[T scalar.Value[T]] struct {
	eval     [op.Count]func(x, y T) T
	partials [op.Count]func(x, y, f T) (T, T)
	combined [op.Count]func(x, y T) (T, T, T)
	render   [op.Count]func(xText, yText string) string
	desc     [op.Count]op.Descriptor
}

// build constructs the table from the operation catalogue and asserts every
// opcode resolved to an implementation. An unfilled slot means the catalogue
// and the Kind list went out of sync, which must surface at startup rather
// than as a nil call later.
func build[T scalar.Value[T]]() *Table[T] {
	catalog := op.Catalog[T]()

	t := &Table[T]{}
	for k := op.Add; k < op.Count; k++ {
		impl := catalog[k]
		if impl == nil {
			panic(fmt.Sprintf("operation table incomplete: %s has no implementation", k))
		}
		t.eval[k] = impl.Eval
		t.partials[k] = impl.Partials
		t.combined[k] = combine(impl)
		t.render[k] = renderFunc(k)
		t.desc[k] = op.Describe(k)
	}
	return t
}

// combine builds the one-shot eval+partials entry. The forward value lands
// in a local before the derivative rule runs, so callers that store results
// over their own operand slots (work tapes) never feed a clobbered operand
// into the derivative.
func combine[T scalar.Value[T]](impl op.Operation[T]) func(x, y T) (T, T, T) {
	return func(x, y T) (T, T, T) {
		f := impl.Eval(x, y)
		dx, dy := impl.Partials(x, y, f)
		return f, dx, dy
	}
}

func renderFunc(k op.Kind) func(xText, yText string) string {
	return func(xText, yText string) string { return op.Render(k, xText, yText) }
}

// check panics on an opcode outside the catalogue. Dispatch is by ordinal
// into fixed tables; an out-of-range value is a caller bug and must fault
// instead of reading a stale or zero slot.
func (t *Table[T]) check(k op.Kind) {
	if !k.Valid() {
		panic(fmt.Sprintf("invalid opcode %d: the operation catalogue has %d entries", uint8(k), int(op.Count)))
	}
}

// Evaluate computes f = op(x, y). Arity-1 operations ignore y; pass the
// type's zero value.
func (t *Table[T]) Evaluate(k op.Kind, x, y T) T {
	t.check(k)
	return t.eval[k](x, y)
}

// Partials computes (df/dx, df/dy) at x, y given the already-computed
// forward value f. The value is trusted, not recomputed: callers holding f
// skip a second evaluation, and several rules (Exp, Tanh, Sqrt, Div, Inv)
// are cheapest in terms of f. Use EvaluatePartials when the storage
// receiving f may alias an operand.
func (t *Table[T]) Partials(k op.Kind, x, y, f T) (dx, dy T) {
	t.check(k)
	return t.partials[k](x, y, f)
}

// EvaluatePartials computes the forward value together with both partials
// in one dispatch, safely even if the caller is about to overwrite an
// operand slot with the result.
func (t *Table[T]) EvaluatePartials(k op.Kind, x, y T) (f, dx, dy T) {
	t.check(k)
	return t.combined[k](x, y)
}

// Render formats the operation over already-rendered operand texts.
func (t *Table[T]) Render(k op.Kind, xText, yText string) string {
	t.check(k)
	return t.render[k](xText, yText)
}

// Describe returns the static descriptor of k.
func (t *Table[T]) Describe(k op.Kind) op.Descriptor {
	t.check(k)
	return t.desc[k]
}

// Arity returns the number of operands k consumes, 1 or 2.
func (t *Table[T]) Arity(k op.Kind) int { return t.Describe(k).Arity }

// IsCommutative reports whether swapping operands cannot change the result.
func (t *Table[T]) IsCommutative(k op.Kind) bool { return t.Describe(k).Commutative }

// ZeroBoth reports that f(0, 0) == 0 structurally.
func (t *Table[T]) ZeroBoth(k op.Kind) bool { return t.Describe(k).ZeroBoth }

// ZeroLeft reports that f(0, y) == 0 for every y.
func (t *Table[T]) ZeroLeft(k op.Kind) bool { return t.Describe(k).ZeroLeft }

// ZeroRight reports that f(x, 0) == 0 for every x.
func (t *Table[T]) ZeroRight(k op.Kind) bool { return t.Describe(k).ZeroRight }

// Fragments returns the prefix, infix and suffix rendering fragments of k.
func (t *Table[T]) Fragments(k op.Kind) (prefix, infix, suffix string) {
	d := t.Describe(k)
	return d.Prefix, d.Infix, d.Suffix
}
