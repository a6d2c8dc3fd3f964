// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "github.com/hashicorp/go-set/v3"

// Searches walk the structure left to right and stop at the first
// decisive element.

// FindIf returns the first element satisfying pred.
func (f *Foldable[S, A]) FindIf(xs S, pred func(A) bool) Maybe[A] {
	found := Nothing[A]()
	f.each(xs, func(x A) bool {
		if pred(x) {
			found = Just(x)
			return false
		}
		return true
	})
	return found
}

// Find returns the first element equal to x.
func (f *Foldable[S, A]) Find(xs S, x A) Maybe[A] {
	eq := f.equal()
	return f.FindIf(xs, func(y A) bool { return eq(x, y) })
}

// AnyOf reports whether some element satisfies pred.
func (f *Foldable[S, A]) AnyOf(xs S, pred func(A) bool) bool {
	return f.FindIf(xs, pred).IsJust()
}

// AllOf reports whether every element satisfies pred.
func (f *Foldable[S, A]) AllOf(xs S, pred func(A) bool) bool {
	return !f.AnyOf(xs, func(x A) bool { return !pred(x) })
}

// NoneOf reports whether no element satisfies pred.
func (f *Foldable[S, A]) NoneOf(xs S, pred func(A) bool) bool {
	return !f.AnyOf(xs, pred)
}

// Contains reports whether some element equals x.
func (f *Foldable[S, A]) Contains(xs S, x A) bool {
	return f.Find(xs, x).IsJust()
}

// Subset reports whether every element of xs is contained in ys.
func (f *Foldable[S, A]) Subset(xs, ys S) bool {
	eq := f.equal()
	return f.AllOf(xs, func(x A) bool {
		return f.AnyOf(ys, func(y A) bool { return eq(x, y) })
	})
}

// SubsetComparable is Subset for comparable elements, using a hash set of
// ys instead of a nested scan.
func SubsetComparable[S any, A comparable](f *Foldable[S, A], xs, ys S) bool {
	index := set.From(f.unpack(ys))
	return f.AllOf(xs, index.Contains)
}

// Lookup returns the value of the first pair whose key equals key.
func Lookup[S any, K comparable, V any](f *Foldable[S, Pair[K, V]], xs S, key K) Maybe[V] {
	return MapMaybe(f.FindIf(xs, func(p Pair[K, V]) bool { return p.Fst == key }), Pair[K, V].Second)
}
