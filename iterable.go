// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "github.com/pkg/errors"

// Iterable is the resolved class of a structure that can be taken apart
// one element at a time with Head and Tail.
type Iterable[S, A any] struct {
	*Foldable[S, A]

	head func(S) A
	tail func(S) S
	at   func(S, int) A
	drop func(S, int) S
}

// NewIterable resolves an Iterable class from d, which must supply Head,
// Tail and IsEmpty.
func NewIterable[S, A any](d Def[S, A]) (*Iterable[S, A], error) {
	t := &Tag{name: d.name()}
	if !d.hasIterable() {
		return nil, errors.WithStack(&DispatchError{
			Tag:   t.name,
			Op:    OpHead,
			Needs: []Op{OpHead, OpTail, OpIsEmpty},
		})
	}
	return newIterable(&d, t)
}

// MustIterable is like NewIterable but panics on a dispatch failure.
func MustIterable[S, A any](d Def[S, A]) *Iterable[S, A] {
	it, err := NewIterable(d)
	if err != nil {
		panic(err)
	}
	return it
}

func newIterable[S, A any](d *Def[S, A], t *Tag) (*Iterable[S, A], error) {
	f, err := newFoldable(d, t)
	if err != nil {
		return nil, err
	}
	it := &Iterable[S, A]{Foldable: f, head: d.Head, tail: d.Tail, at: d.At, drop: d.Drop}
	t.resolve(OpHead, true, false)
	t.resolve(OpTail, true, false)
	t.resolve(OpAt, d.At != nil, true)
	t.resolve(OpDrop, d.Drop != nil, true)
	if it.at == nil {
		it.at = func(xs S, n int) A {
			for ; n > 0; n-- {
				xs = it.tail(xs)
			}
			return it.head(xs)
		}
	}
	if it.drop == nil {
		it.drop = func(xs S, n int) S {
			for ; n > 0 && !it.isEmpty(xs); n-- {
				xs = it.tail(xs)
			}
			return xs
		}
	}
	return it, nil
}

// Head returns the first element. It panics with ErrEmpty when xs is empty.
func (it *Iterable[S, A]) Head(xs S) A {
	if it.isEmpty(xs) {
		emptyStructure(it.tag.name, "head")
	}
	return it.head(xs)
}

// Tail returns xs without its first element. It panics with ErrEmpty when
// xs is empty.
func (it *Iterable[S, A]) Tail(xs S) S {
	if it.isEmpty(xs) {
		emptyStructure(it.tag.name, "tail")
	}
	return it.tail(xs)
}

// At returns the n-th element, counting from zero. It panics with
// ErrIndex when n is outside xs.
func (it *Iterable[S, A]) At(xs S, n int) A {
	if n < 0 || n >= it.length(xs) {
		indexOutOfRange(it.tag.name, "at", n, it.length(xs))
	}
	return it.at(xs, n)
}

// Last returns the last element. It panics with ErrEmpty when xs is empty.
func (it *Iterable[S, A]) Last(xs S) A {
	if it.isEmpty(xs) {
		emptyStructure(it.tag.name, "last")
	}
	if it.tag.Source(OpAt) == Explicit {
		return it.at(xs, it.length(xs)-1)
	}
	for {
		rest := it.tail(xs)
		if it.isEmpty(rest) {
			return it.head(xs)
		}
		xs = rest
	}
}

// Drop removes at most n leading elements.
func (it *Iterable[S, A]) Drop(xs S, n int) S {
	if n <= 0 {
		return xs
	}
	return it.drop(xs, n)
}

// DropWhile removes the longest prefix whose elements satisfy pred.
func (it *Iterable[S, A]) DropWhile(xs S, pred func(A) bool) S {
	for !it.isEmpty(xs) && pred(it.head(xs)) {
		xs = it.tail(xs)
	}
	return xs
}

// DropUntil removes the longest prefix whose elements do not satisfy pred.
func (it *Iterable[S, A]) DropUntil(xs S, pred func(A) bool) S {
	return it.DropWhile(xs, func(x A) bool { return !pred(x) })
}
