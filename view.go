// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"fmt"
	"iter"
	"slices"
)

// ViewKind identifies the adaptor that produced a View.
type ViewKind uint8

const (
	ViewIdentity ViewKind = iota
	ViewSliced
	ViewTransformed
	ViewJoined
	ViewFlattened
	ViewSingle
	ViewEmpty
	ViewCartesianProduct
)

var viewKindNames = [...]string{
	ViewIdentity:         "identity",
	ViewSliced:           "sliced",
	ViewTransformed:      "transformed",
	ViewJoined:           "joined",
	ViewFlattened:        "flattened",
	ViewSingle:           "single",
	ViewEmpty:            "empty",
	ViewCartesianProduct: "cartesian_product",
}

func (k ViewKind) String() string {
	if int(k) < len(viewKindNames) {
		return viewKindNames[k]
	}
	return fmt.Sprintf("ViewKind(%d)", uint8(k))
}

// source is the random-access backing of a view. Elements are erased so
// that a transformed view shares its source with the view it maps over.
type source interface {
	len() int
	at(i int) Erased
}

// View is an immutable lazy sequence described by a length and an indexed
// accessor. Elements are computed on access; adaptors never copy their
// inputs.
type View[A any] struct {
	kind ViewKind
	src  source
	proj func(Erased) A
}

// Kind returns the adaptor that produced v.
func (v View[A]) Kind() ViewKind { return v.kind }

// Len returns the number of elements of v.
func (v View[A]) Len() int {
	if v.src == nil {
		return 0
	}
	return v.src.len()
}

// IsEmpty reports whether v has no elements.
func (v View[A]) IsEmpty() bool { return v.Len() == 0 }

// At returns the i-th element. It panics with ErrIndex when i is outside v.
func (v View[A]) At(i int) A {
	if n := v.Len(); i < 0 || i >= n {
		indexOutOfRange("View", "at", i, n)
	}
	return v.at(i)
}

func (v View[A]) at(i int) A { return v.proj(v.src.at(i)) }

// Unpack computes every element of v into a fresh slice.
func (v View[A]) Unpack() []A {
	out := make([]A, v.Len())
	for i := range out {
		out[i] = v.at(i)
	}
	return out
}

// All returns an iterator computing the elements of v on demand.
func (v View[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := range v.Len() {
			if !yield(v.at(i)) {
				return
			}
		}
	}
}

func (v View[A]) String() string {
	return fmt.Sprintf("View(%s)%v", v.kind, v.Unpack())
}

// elems backs views over owned slices.
type elems[A any] []A

func (e elems[A]) len() int        { return len(e) }
func (e elems[A]) at(i int) Erased { return e[i] }

func (e elems[A]) view(k ViewKind) View[A] {
	return View[A]{kind: k, src: e, proj: unerase[A]}
}

type iterableSource[S, A any] struct {
	it *Iterable[S, A]
	xs S
}

func (s iterableSource[S, A]) len() int        { return s.it.length(s.xs) }
func (s iterableSource[S, A]) at(i int) Erased { return s.it.at(s.xs, i) }

// ViewOf returns an identity view over xs. Accessing the i-th element
// costs what At costs on the class of xs.
func ViewOf[S, A any](it *Iterable[S, A], xs S) View[A] {
	return View[A]{kind: ViewIdentity, src: iterableSource[S, A]{it: it, xs: xs}, proj: unerase[A]}
}

// SingleView returns the one-element view of x.
func SingleView[A any](x A) View[A] { return elems[A]{x}.view(ViewSingle) }

// EmptyView returns the view with no elements.
func EmptyView[A any]() View[A] { return elems[A](nil).view(ViewEmpty) }

type indexSource struct {
	base    source
	indices []int
}

func (s indexSource) len() int        { return len(s.indices) }
func (s indexSource) at(i int) Erased { return s.base.at(s.indices[i]) }

// Sliced returns the view of the elements of v at indices, which may
// repeat and come in any order. It panics with ErrIndex on an index
// outside v.
func Sliced[A any](v View[A], indices ...int) View[A] {
	n := v.Len()
	for _, i := range indices {
		if i < 0 || i >= n {
			indexOutOfRange("View", "sliced", i, n)
		}
	}
	base, mapped := v.source(), slices.Clone(indices)
	switch s := base.(type) {
	case indexSource:
		for k, i := range mapped {
			mapped[k] = s.indices[i]
		}
		base = s.base
	case windowSource:
		for k, i := range mapped {
			mapped[k] = s.off + i
		}
		base = s.base
	}
	return View[A]{kind: ViewSliced, src: indexSource{base: base, indices: mapped}, proj: v.proj}
}

// windowSource is the contiguous slice [off, off+n) of base.
type windowSource struct {
	base   source
	off, n int
}

func (s windowSource) len() int        { return s.n }
func (s windowSource) at(i int) Erased { return s.base.at(s.off + i) }

// window returns the elements of v at [from, to) without bound checks.
// Windows of windows address the innermost source directly.
func (v View[A]) window(from, to int) View[A] {
	base, off := v.source(), from
	if w, ok := base.(windowSource); ok {
		base, off = w.base, w.off+from
	}
	return View[A]{kind: ViewSliced, src: windowSource{base: base, off: off, n: max(to-from, 0)}, proj: v.proj}
}

func (v View[A]) source() source {
	if v.src == nil {
		return elems[A](nil)
	}
	return v.src
}

// Transformed returns the view of f applied to every element of v.
// Transforming a transformed view composes the functions over the
// original source instead of nesting views.
func Transformed[A, B any](v View[A], f func(A) B) View[B] {
	proj := v.proj
	if proj == nil {
		proj = unerase[A]
	}
	return View[B]{kind: ViewTransformed, src: v.source(), proj: func(e Erased) B { return f(proj(e)) }}
}

type joinSource[A any] struct {
	parts []View[A]
	// ends[k] is the total length of parts[0..k], starts[k] of parts[0..k).
	starts, ends []int
}

func joinOf[A any](parts []View[A]) joinSource[A] {
	starts, ends := make([]int, len(parts)), make([]int, len(parts))
	total := 0
	for k, p := range parts {
		starts[k] = total
		total += p.Len()
		ends[k] = total
	}
	return joinSource[A]{parts: parts, starts: starts, ends: ends}
}

func (s joinSource[A]) len() int {
	if len(s.ends) == 0 {
		return 0
	}
	return s.ends[len(s.ends)-1]
}

func (s joinSource[A]) at(i int) Erased {
	k, _ := slices.BinarySearch(s.ends, i+1)
	return s.parts[k].at(i - s.starts[k])
}

// Joined returns the concatenation of vs, left to right.
func Joined[A any](vs ...View[A]) View[A] {
	return View[A]{kind: ViewJoined, src: joinOf(slices.Clone(vs)), proj: unerase[A]}
}

// Flattened returns the concatenation of the views held by vv.
func Flattened[A any](vv View[View[A]]) View[A] {
	return View[A]{kind: ViewFlattened, src: joinOf(vv.Unpack()), proj: unerase[A]}
}

type productSource[A any] struct {
	parts []View[A]
}

func (s productSource[A]) len() int {
	n := 1
	for _, p := range s.parts {
		n *= p.Len()
	}
	return n
}

func (s productSource[A]) at(i int) Erased {
	out := make([]A, len(s.parts))
	for k := len(s.parts) - 1; k >= 0; k-- {
		n := s.parts[k].Len()
		out[k] = s.parts[k].at(i % n)
		i /= n
	}
	return elems[A](out).view(ViewIdentity)
}

// CartesianProductView returns the lazy view of every combination taking
// one element from each of vs, the last view varying fastest. With no
// views it holds a single empty combination.
func CartesianProductView[A any](vs ...View[A]) View[View[A]] {
	return View[View[A]]{
		kind: ViewCartesianProduct,
		src:  productSource[A]{parts: slices.Clone(vs)},
		proj: unerase[View[A]],
	}
}

// Views returns the Sequence class of View[A], so the whole algebra runs
// over views. Prepend and Concat join views lazily; Make wraps a fresh
// slice in an identity view.
func Views[A any](elem Elem[A]) *Sequence[View[A], A] {
	return MustSequence(Def[View[A], A]{
		Name:    "View",
		Unpack:  View[A].Unpack,
		Length:  View[A].Len,
		Head:    func(v View[A]) A { return v.at(0) },
		Tail:    func(v View[A]) View[A] { return v.window(1, v.Len()) },
		IsEmpty: View[A].IsEmpty,
		At:      View[A].at,
		Drop: func(v View[A], n int) View[A] {
			return v.window(min(n, v.Len()), v.Len())
		},
		Prepend: func(x A, v View[A]) View[A] { return Joined(SingleView(x), v) },
		Append:  func(v View[A], x A) View[A] { return Joined(v, SingleView(x)) },
		Empty:   EmptyView[A],
		Concat:  func(v, w View[A]) View[A] { return Joined(v, w) },
		Make:    func(xs []A) View[A] { return elems[A](xs).view(ViewIdentity) },
		Elem:    elem,
	})
}
