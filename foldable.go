// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Foldable is the resolved class of a finite structure S with elements A.
//
// Whatever primitive the definition supplied, the derived operations agree
// on one linearization: Unpack, the folds and the walk all observe the
// elements in the same left-to-right order.
type Foldable[S, A any] struct {
	tag  *Tag
	elem Elem[A]

	// unpack may return backing storage; callers must not mutate it.
	unpack  func(S) []A
	each    func(S, func(A) bool)
	foldl   func(S, Erased, func(Erased, A) Erased) Erased
	foldr   func(S, Erased, func(A, Erased) Erased) Erased
	length  func(S) int
	isEmpty func(S) bool
}

// NewFoldable resolves a Foldable class from d.
func NewFoldable[S, A any](d Def[S, A]) (*Foldable[S, A], error) {
	return newFoldable(&d, &Tag{name: d.name()})
}

// MustFoldable is like NewFoldable but panics on a dispatch failure.
func MustFoldable[S, A any](d Def[S, A]) *Foldable[S, A] {
	f, err := NewFoldable(d)
	if err != nil {
		panic(err)
	}
	return f
}

func newFoldable[S, A any](d *Def[S, A], t *Tag) (*Foldable[S, A], error) {
	f := &Foldable[S, A]{tag: t, elem: d.Elem, foldl: d.Foldl, foldr: d.Foldr}
	switch {
	case d.Unpack != nil:
		f.unpack = d.Unpack
		f.each = walk(d.Unpack)
	case d.hasIterable():
		head, tail, isEmpty := d.Head, d.Tail, d.IsEmpty
		f.each = func(xs S, yield func(A) bool) {
			for !isEmpty(xs) {
				if !yield(head(xs)) {
					return
				}
				xs = tail(xs)
			}
		}
		f.unpack = collect(f.each)
	case d.Foldl != nil:
		foldl := d.Foldl
		f.unpack = func(xs S) []A {
			out, _ := foldl(xs, []A(nil), func(acc Erased, x A) Erased {
				return append(acc.([]A), x)
			}).([]A)
			return out
		}
		f.each = walk(f.unpack)
	case d.Foldr != nil:
		foldr := d.Foldr
		f.unpack = func(xs S) []A {
			out, _ := foldr(xs, []A(nil), func(x A, acc Erased) Erased {
				return append(acc.([]A), x)
			}).([]A)
			slices.Reverse(out)
			return out
		}
		f.each = walk(f.unpack)
	default:
		return nil, errors.WithStack(&DispatchError{
			Tag:   t.name,
			Op:    OpFoldl,
			Needs: []Op{OpUnpack, OpFoldl, OpFoldr, OpHead, OpTail, OpIsEmpty},
		})
	}
	t.resolve(OpUnpack, d.Unpack != nil, true)
	t.resolve(OpFoldl, d.Foldl != nil, true)
	t.resolve(OpFoldr, d.Foldr != nil, true)
	t.resolve(OpEqual, d.Elem.Equal != nil, false)
	t.resolve(OpLess, d.Elem.Less != nil, false)

	switch {
	case d.Length != nil:
		f.length = d.Length
	case d.Unpack != nil:
		unpack := d.Unpack
		f.length = func(xs S) int { return len(unpack(xs)) }
	default:
		each := f.each
		f.length = func(xs S) int {
			n := 0
			each(xs, func(A) bool { n++; return true })
			return n
		}
	}
	t.resolve(OpLength, d.Length != nil, true)

	if d.IsEmpty != nil {
		f.isEmpty = d.IsEmpty
	} else {
		each := f.each
		f.isEmpty = func(xs S) bool {
			empty := true
			each(xs, func(A) bool { empty = false; return false })
			return empty
		}
	}
	t.resolve(OpIsEmpty, d.IsEmpty != nil, true)
	return f, nil
}

func walk[S, A any](unpack func(S) []A) func(S, func(A) bool) {
	return func(xs S, yield func(A) bool) {
		for _, x := range unpack(xs) {
			if !yield(x) {
				return
			}
		}
	}
}

func collect[S, A any](each func(S, func(A) bool)) func(S) []A {
	return func(xs S) []A {
		var out []A
		each(xs, func(x A) bool { out = append(out, x); return true })
		return out
	}
}

// unerase recovers a typed value from a primitive fold accumulator.
// A nil interface maps to the zero value so interface-typed states work.
func unerase[B any](e Erased) B {
	if e == nil {
		var zero B
		return zero
	}
	return e.(B)
}

// Tag returns the dispatch table of the class.
func (f *Foldable[S, A]) Tag() *Tag { return f.tag }

// Elem returns the element instances the class was built with.
func (f *Foldable[S, A]) Elem() Elem[A] { return f.elem }

// Linearize returns the elements of xs left to right in a fresh slice.
func (f *Foldable[S, A]) Linearize(xs S) []A {
	src := f.unpack(xs)
	out := make([]A, len(src))
	copy(out, src)
	return out
}

// All returns an iterator over the elements of xs.
// Breaking out of the loop stops the walk early.
func (f *Foldable[S, A]) All(xs S) iter.Seq[A] {
	return func(yield func(A) bool) { f.each(xs, yield) }
}

// Length returns the number of elements of xs.
func (f *Foldable[S, A]) Length(xs S) int { return f.length(xs) }

// IsEmpty reports whether xs has no elements.
func (f *Foldable[S, A]) IsEmpty(xs S) bool { return f.isEmpty(xs) }

// ForEach calls fn on every element left to right, for side effects only.
func (f *Foldable[S, A]) ForEach(xs S, fn func(A)) {
	f.each(xs, func(x A) bool { fn(x); return true })
}

// Unpack invokes fn with the linearization of xs as positional arguments.
// fn receives a fresh slice, so writes to it never reach xs.
func Unpack[S, A, R any](f *Foldable[S, A], xs S, fn func(...A) R) R {
	return fn(f.Linearize(xs)...)
}

// Foldl reduces xs from the left: fn(fn(fn(state, x1), x2)..., xn).
// An empty structure returns state unchanged.
func Foldl[S, A, B any](f *Foldable[S, A], xs S, state B, fn func(B, A) B) B {
	if f.foldl != nil {
		return unerase[B](f.foldl(xs, state, func(acc Erased, x A) Erased {
			return fn(unerase[B](acc), x)
		}))
	}
	f.each(xs, func(x A) bool {
		state = fn(state, x)
		return true
	})
	return state
}

// Foldr reduces xs from the right: fn(x1, fn(x2, ... fn(xn, state))).
// An empty structure returns state unchanged.
func Foldr[S, A, B any](f *Foldable[S, A], xs S, state B, fn func(A, B) B) B {
	if f.foldr != nil {
		return unerase[B](f.foldr(xs, state, func(x A, acc Erased) Erased {
			return fn(x, unerase[B](acc))
		}))
	}
	elems := f.unpack(xs)
	for i := len(elems) - 1; i >= 0; i-- {
		state = fn(elems[i], state)
	}
	return state
}

// Foldl1 reduces a non-empty xs from the left using its first element as
// the initial state. It panics with ErrEmpty when xs is empty.
func (f *Foldable[S, A]) Foldl1(xs S, fn func(A, A) A) A {
	acc := Foldl(f, xs, Nothing[A](), func(m Maybe[A], x A) Maybe[A] {
		if v, ok := m.Get(); ok {
			return Just(fn(v, x))
		}
		return Just(x)
	})
	v, ok := acc.Get()
	if !ok {
		emptyStructure(f.tag.name, "foldl1")
	}
	return v
}

// Foldr1 reduces a non-empty xs from the right using its last element as
// the initial state. It panics with ErrEmpty when xs is empty.
func (f *Foldable[S, A]) Foldr1(xs S, fn func(A, A) A) A {
	acc := Foldr(f, xs, Nothing[A](), func(x A, m Maybe[A]) Maybe[A] {
		if v, ok := m.Get(); ok {
			return Just(fn(x, v))
		}
		return Just(x)
	})
	v, ok := acc.Get()
	if !ok {
		emptyStructure(f.tag.name, "foldr1")
	}
	return v
}

// MinimumBy returns the smallest element under pred. On ties the earlier
// element wins. It panics with ErrEmpty when xs is empty.
func (f *Foldable[S, A]) MinimumBy(xs S, pred func(A, A) bool) A {
	if f.isEmpty(xs) {
		emptyStructure(f.tag.name, "minimum")
	}
	return f.Foldl1(xs, func(m, x A) A {
		if pred(x, m) {
			return x
		}
		return m
	})
}

// MaximumBy returns the largest element under pred. On ties the earlier
// element wins. It panics with ErrEmpty when xs is empty.
func (f *Foldable[S, A]) MaximumBy(xs S, pred func(A, A) bool) A {
	if f.isEmpty(xs) {
		emptyStructure(f.tag.name, "maximum")
	}
	return f.Foldl1(xs, func(m, x A) A {
		if pred(m, x) {
			return x
		}
		return m
	})
}

// Minimum is MinimumBy with the element Less instance.
func (f *Foldable[S, A]) Minimum(xs S) A { return f.MinimumBy(xs, f.less()) }

// Maximum is MaximumBy with the element Less instance.
func (f *Foldable[S, A]) Maximum(xs S) A { return f.MaximumBy(xs, f.less()) }

// CountIf returns the number of elements satisfying pred.
func (f *Foldable[S, A]) CountIf(xs S, pred func(A) bool) int {
	return Foldl(f, xs, 0, func(n int, x A) int {
		if pred(x) {
			return n + 1
		}
		return n
	})
}

// Count returns the number of elements equal to x.
func (f *Foldable[S, A]) Count(xs S, x A) int {
	eq := f.equal()
	return f.CountIf(xs, func(y A) bool { return eq(x, y) })
}

func (f *Foldable[S, A]) equal() func(A, A) bool {
	if f.elem.Equal == nil {
		dispatchFailure(f.tag.name, OpEqual)
	}
	return f.elem.Equal
}

func (f *Foldable[S, A]) less() func(A, A) bool {
	if f.elem.Less == nil {
		dispatchFailure(f.tag.name, OpLess)
	}
	return f.elem.Less
}
