// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "golang.org/x/exp/constraints"

// Number is the set of element types Sum and Product accept.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Monoid is an associative binary operation with an identity.
type Monoid[M any] struct {
	Zero    M
	Combine func(M, M) M
}

// Additive returns (0, +).
func Additive[M Number]() Monoid[M] {
	return Monoid[M]{Zero: 0, Combine: func(x, y M) M { return x + y }}
}

// Multiplicative returns (1, *).
func Multiplicative[M Number]() Monoid[M] {
	return Monoid[M]{Zero: 1, Combine: func(x, y M) M { return x * y }}
}

// FoldMap injects every element into m and combines them from the left.
// An empty structure yields m.Zero.
func FoldMap[S, A, M any](f *Foldable[S, A], xs S, m Monoid[M], inject func(A) M) M {
	return Foldl(f, xs, m.Zero, func(acc M, x A) M { return m.Combine(acc, inject(x)) })
}

// Sum adds the elements of xs; the sum of nothing is 0.
func Sum[S any, A Number](f *Foldable[S, A], xs S) A {
	return FoldMap(f, xs, Additive[A](), identity[A])
}

// Product multiplies the elements of xs; the product of nothing is 1.
func Product[S any, A Number](f *Foldable[S, A], xs S) A {
	return FoldMap(f, xs, Multiplicative[A](), identity[A])
}

// SumAs adds the elements of xs in the numeric type M, for structures whose
// element type is not itself numeric.
func SumAs[M Number, S, A any](f *Foldable[S, A], xs S, inject func(A) M) M {
	return FoldMap(f, xs, Additive[M](), inject)
}

// ProductAs multiplies the elements of xs in the numeric type M.
func ProductAs[M Number, S, A any](f *Foldable[S, A], xs S, inject func(A) M) M {
	return FoldMap(f, xs, Multiplicative[M](), inject)
}

// identity is the identity injection.
// Named generic function produces a static function value per type instantiation.
func identity[A any](a A) A { return a }
