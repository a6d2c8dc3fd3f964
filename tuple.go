// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"fmt"
	"slices"
)

// Tuple is an immutable slice-backed sequence.
//
// Shrinking operations share the backing array; growing operations always
// copy, so no Tuple ever observes a write through another.
type Tuple[A any] struct {
	elems []A
}

// MakeTuple builds a Tuple holding a copy of elems.
func MakeTuple[A any](elems ...A) Tuple[A] {
	return own(slices.Clone(elems))
}

// own wraps elems without copying. Empty tuples share the nil slice so
// that every empty Tuple is the zero value.
func own[A any](elems []A) Tuple[A] {
	if len(elems) == 0 {
		return Tuple[A]{}
	}
	return Tuple[A]{elems: elems}
}

// Len returns the number of elements.
func (t Tuple[A]) Len() int { return len(t.elems) }

// Elems returns a copy of the elements.
func (t Tuple[A]) Elems() []A { return slices.Clone(t.elems) }

func (t Tuple[A]) String() string {
	return fmt.Sprintf("Tuple%v", t.elems)
}

// TupleOf returns the Sequence class of Tuple[A]. Length, At, Drop, Make
// and Concat are constant or linear time slice operations.
func TupleOf[A any](elem Elem[A]) *Sequence[Tuple[A], A] {
	return MustSequence(Def[Tuple[A], A]{
		Name:    "Tuple",
		Unpack:  func(t Tuple[A]) []A { return t.elems },
		Length:  Tuple[A].Len,
		Head:    func(t Tuple[A]) A { return t.elems[0] },
		Tail:    func(t Tuple[A]) Tuple[A] { return own(t.elems[1:]) },
		IsEmpty: func(t Tuple[A]) bool { return len(t.elems) == 0 },
		At:      func(t Tuple[A], n int) A { return t.elems[n] },
		Drop: func(t Tuple[A], n int) Tuple[A] {
			return own(t.elems[min(n, len(t.elems)):])
		},
		Prepend: func(x A, t Tuple[A]) Tuple[A] {
			return Tuple[A]{elems: slices.Concat([]A{x}, t.elems)}
		},
		Append: func(t Tuple[A], x A) Tuple[A] {
			return Tuple[A]{elems: slices.Concat(t.elems, []A{x})}
		},
		Empty: func() Tuple[A] { return Tuple[A]{} },
		Concat: func(xs, ys Tuple[A]) Tuple[A] {
			return own(slices.Concat(xs.elems, ys.elems))
		},
		Make: own[A],
		Elem: elem,
	})
}
