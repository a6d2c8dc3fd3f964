// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"slices"

	"github.com/pkg/errors"
)

// Sequence is the resolved class of a finite ordered structure that can be
// built with Prepend and Empty. Every Sequence is isomorphic to an ordered
// list: Convert between two Sequence classes preserves order and length.
//
// Derived operations compute the linearization of their result and build
// it with Make, which costs one pass for slice-backed and cons-backed
// representations alike.
type Sequence[S, A any] struct {
	*Iterable[S, A]

	prepend func(A, S) S
	snoc    func(S, A) S
	empty   func() S
	concat  func(S, S) S
	// build takes ownership of elems and may retain it.
	build func(elems []A) S
}

// NewSequence resolves a Sequence class from d, which must supply Prepend
// and Empty, and either Head, Tail and IsEmpty or Unpack and Make.
func NewSequence[S, A any](d Def[S, A]) (*Sequence[S, A], error) {
	t := &Tag{name: d.name()}
	if d.Prepend == nil || d.Empty == nil {
		return nil, errors.WithStack(&DispatchError{
			Tag:   t.name,
			Op:    OpPrepend,
			Needs: []Op{OpPrepend, OpEmpty},
		})
	}
	var derived []Op
	if !d.hasIterable() {
		if d.Unpack == nil || d.Make == nil {
			return nil, errors.WithStack(&DispatchError{
				Tag:   t.name,
				Op:    OpHead,
				Needs: []Op{OpHead, OpTail, OpIsEmpty, OpUnpack, OpMake},
			})
		}
		unpack, mk := d.Unpack, d.Make
		if d.Head == nil {
			d.Head = func(xs S) A { return unpack(xs)[0] }
			derived = append(derived, OpHead)
		}
		if d.Tail == nil {
			d.Tail = func(xs S) S { return mk(unpack(xs)[1:]) }
			derived = append(derived, OpTail)
		}
		if d.IsEmpty == nil {
			d.IsEmpty = func(xs S) bool { return len(unpack(xs)) == 0 }
			derived = append(derived, OpIsEmpty)
		}
	}
	it, err := newIterable(&d, t)
	if err != nil {
		return nil, err
	}
	for _, op := range derived {
		t.table[op] = Derived
	}

	s := &Sequence[S, A]{Iterable: it, prepend: d.Prepend, empty: d.Empty}
	t.resolve(OpPrepend, true, false)
	t.resolve(OpEmpty, true, false)

	s.build = d.Make
	if s.build == nil {
		prepend, empty := d.Prepend, d.Empty
		s.build = func(elems []A) S {
			xs := empty()
			for i := len(elems) - 1; i >= 0; i-- {
				xs = prepend(elems[i], xs)
			}
			return xs
		}
	}
	t.resolve(OpMake, d.Make != nil, true)

	s.snoc = d.Append
	if s.snoc == nil {
		s.snoc = func(xs S, x A) S {
			return s.build(append(s.Linearize(xs), x))
		}
	}
	t.resolve(OpAppend, d.Append != nil, true)

	s.concat = d.Concat
	if s.concat == nil {
		if d.Make != nil {
			s.concat = func(xs, ys S) S {
				return s.build(slices.Concat(s.unpack(xs), s.unpack(ys)))
			}
		} else {
			s.concat = func(xs, ys S) S { return Foldr(s.Foldable, xs, ys, s.prepend) }
		}
	}
	t.resolve(OpConcat, d.Concat != nil, true)
	return s, nil
}

// MustSequence is like NewSequence but panics on a dispatch failure.
func MustSequence[S, A any](d Def[S, A]) *Sequence[S, A] {
	s, err := NewSequence(d)
	if err != nil {
		panic(err)
	}
	return s
}

// Empty returns the empty sequence.
func (s *Sequence[S, A]) Empty() S { return s.empty() }

// Prepend returns x followed by xs.
func (s *Sequence[S, A]) Prepend(x A, xs S) S { return s.prepend(x, xs) }

// Append returns xs followed by x.
func (s *Sequence[S, A]) Append(xs S, x A) S { return s.snoc(xs, x) }

// Make builds a sequence from elems, left to right.
func (s *Sequence[S, A]) Make(elems ...A) S { return s.build(slices.Clone(elems)) }

// Lift returns the one-element sequence holding x.
func (s *Sequence[S, A]) Lift(x A) S { return s.prepend(x, s.empty()) }

// Concat joins xss left to right; no arguments give the empty sequence.
func (s *Sequence[S, A]) Concat(xss ...S) S {
	if len(xss) == 0 {
		return s.empty()
	}
	out := xss[len(xss)-1]
	for i := len(xss) - 2; i >= 0; i-- {
		out = s.concat(xss[i], out)
	}
	return out
}

// Reverse returns the elements of xs in reverse order.
// It agrees with a left fold of Prepend starting from Empty.
func (s *Sequence[S, A]) Reverse(xs S) S {
	elems := s.Linearize(xs)
	slices.Reverse(elems)
	return s.build(elems)
}

// Filter keeps the elements satisfying pred, in order.
func (s *Sequence[S, A]) Filter(xs S, pred func(A) bool) S {
	var out []A
	s.each(xs, func(x A) bool {
		if pred(x) {
			out = append(out, x)
		}
		return true
	})
	return s.build(out)
}

// RemoveIf drops the elements satisfying pred, in order.
func (s *Sequence[S, A]) RemoveIf(xs S, pred func(A) bool) S {
	return s.Filter(xs, func(x A) bool { return !pred(x) })
}

// Init returns xs without its last element. It panics with ErrEmpty when
// xs is empty.
func (s *Sequence[S, A]) Init(xs S) S {
	elems := s.unpack(xs)
	if len(elems) == 0 {
		emptyStructure(s.tag.name, "init")
	}
	return s.build(slices.Clone(elems[:len(elems)-1]))
}

// DropBack removes at most n trailing elements.
func (s *Sequence[S, A]) DropBack(xs S, n int) S {
	elems := s.unpack(xs)
	keep := max(len(elems)-max(n, 0), 0)
	return s.build(slices.Clone(elems[:keep]))
}

// Slice returns the elements at positions [from, to). It panics with
// ErrIndex unless 0 <= from <= to <= Length(xs).
func (s *Sequence[S, A]) Slice(xs S, from, to int) S {
	n := s.length(xs)
	if bad, ok := badRange(from, to, n); !ok {
		indexOutOfRange(s.tag.name, "slice", bad, n)
	}
	return s.TakeExactly(s.Drop(xs, from), to-from)
}

// RemoveAt removes the n-th element. It panics with ErrIndex when n is
// outside xs.
func (s *Sequence[S, A]) RemoveAt(xs S, n int) S {
	elems := s.unpack(xs)
	if n < 0 || n >= len(elems) {
		indexOutOfRange(s.tag.name, "remove_at", n, len(elems))
	}
	return s.build(slices.Concat(elems[:n], elems[n+1:]))
}

// RemoveRange removes the elements at positions [from, to). It panics
// with ErrIndex unless 0 <= from <= to <= Length(xs).
func (s *Sequence[S, A]) RemoveRange(xs S, from, to int) S {
	elems := s.unpack(xs)
	if bad, ok := badRange(from, to, len(elems)); !ok {
		indexOutOfRange(s.tag.name, "remove_range", bad, len(elems))
	}
	return s.build(slices.Concat(elems[:from], elems[to:]))
}

// badRange checks 0 <= from <= to <= n and returns the offending bound.
func badRange(from, to, n int) (int, bool) {
	switch {
	case from < 0 || from > n:
		return from, false
	case to < from || to > n:
		return to, false
	}
	return 0, true
}

// Insert places x before the n-th element; n may equal Length(xs).
func (s *Sequence[S, A]) Insert(xs S, n int, x A) S {
	return s.InsertRange(xs, n, s.Lift(x))
}

// InsertRange places the elements of ys before the n-th element of xs.
func (s *Sequence[S, A]) InsertRange(xs S, n int, ys S) S {
	elems := s.unpack(xs)
	if n < 0 || n > len(elems) {
		indexOutOfRange(s.tag.name, "insert", n, len(elems))
	}
	return s.build(slices.Concat(elems[:n], s.unpack(ys), elems[n:]))
}

// Prefix places z before every element of xs.
func (s *Sequence[S, A]) Prefix(xs S, z A) S {
	elems := s.unpack(xs)
	out := make([]A, 0, 2*len(elems))
	for _, x := range elems {
		out = append(out, z, x)
	}
	return s.build(out)
}

// Suffix places z after every element of xs.
func (s *Sequence[S, A]) Suffix(xs S, z A) S {
	elems := s.unpack(xs)
	out := make([]A, 0, 2*len(elems))
	for _, x := range elems {
		out = append(out, x, z)
	}
	return s.build(out)
}

// Intersperse places z between every two adjacent elements: the head
// followed by the tail prefixed with z.
func (s *Sequence[S, A]) Intersperse(xs S, z A) S {
	if s.isEmpty(xs) {
		return xs
	}
	return s.prepend(s.head(xs), s.Prefix(s.tail(xs), z))
}

// Subsequence gathers the elements at indices, which may repeat and come
// in any order. It panics with ErrIndex on an index outside xs.
func (s *Sequence[S, A]) Subsequence(xs S, indices ...int) S {
	elems := s.unpack(xs)
	out := make([]A, len(indices))
	for i, n := range indices {
		if n < 0 || n >= len(elems) {
			indexOutOfRange(s.tag.name, "subsequence", n, len(elems))
		}
		out[i] = elems[n]
	}
	return s.build(out)
}

// AdjustIf applies f to the elements satisfying pred.
func (s *Sequence[S, A]) AdjustIf(xs S, pred func(A) bool, f func(A) A) S {
	out := s.Linearize(xs)
	for i, x := range out {
		if pred(x) {
			out[i] = f(x)
		}
	}
	return s.build(out)
}

// ReplaceIf replaces the elements satisfying pred with v.
func (s *Sequence[S, A]) ReplaceIf(xs S, pred func(A) bool, v A) S {
	return s.AdjustIf(xs, pred, func(A) A { return v })
}

// Replace replaces the elements equal to old with v.
func (s *Sequence[S, A]) Replace(xs S, old, v A) S {
	eq := s.equal()
	return s.ReplaceIf(xs, func(x A) bool { return eq(old, x) }, v)
}

// Fill replaces every element with v, keeping the length.
func (s *Sequence[S, A]) Fill(xs S, v A) S {
	return s.Replicate(v, s.length(xs))
}

// Replicate returns n copies of x.
func (s *Sequence[S, A]) Replicate(x A, n int) S {
	out := make([]A, max(n, 0))
	for i := range out {
		out[i] = x
	}
	return s.build(out)
}

// Cycle repeats xs n times.
func (s *Sequence[S, A]) Cycle(xs S, n int) S {
	elems := s.unpack(xs)
	out := make([]A, 0, len(elems)*max(n, 0))
	for range n {
		out = append(out, elems...)
	}
	return s.build(out)
}
