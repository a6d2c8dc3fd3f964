// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Functor, Applicative and Monad for sequences, and conversions between
// Sequence classes. Operations that change the element type take the
// class of the result explicitly.

// Transform applies f to every element of xs, building the result with to.
// It agrees with Foldr(xs, Empty, func(x, acc) Prepend(f(x), acc)).
func Transform[S, A, T, B any](from *Foldable[S, A], to *Sequence[T, B], xs S, f func(A) B) T {
	elems := from.unpack(xs)
	out := make([]B, len(elems))
	for i, x := range elems {
		out[i] = f(x)
	}
	return to.build(out)
}

// Convert rebuilds xs in the representation of to, preserving order.
// Converting to another Sequence class and back is the identity.
func Convert[S, T, A any](from *Foldable[S, A], to *Sequence[T, A], xs S) T {
	return to.build(from.Linearize(xs))
}

// Flatten concatenates the inner sequences of xss, left to right.
// It agrees with Foldr(xss, Empty, Concat).
func Flatten[SS, S, A any](outer *Foldable[SS, S], inner *Sequence[S, A], xss SS) S {
	var out []A
	outer.each(xss, func(xs S) bool {
		out = append(out, inner.unpack(xs)...)
		return true
	})
	return inner.build(out)
}

// Chain maps every element to a sequence and concatenates the results
// (monadic bind).
func Chain[S, A, T, B any](from *Foldable[S, A], to *Sequence[T, B], xs S, f func(A) T) T {
	var out []B
	from.each(xs, func(x A) bool {
		out = append(out, to.unpack(f(x))...)
		return true
	})
	return to.build(out)
}

// Ap applies every function of fns to every element of xs, concatenating
// the results function by function (applicative apply).
func Ap[SF, S, A, T, B any](fs *Foldable[SF, func(A) B], from *Foldable[S, A], to *Sequence[T, B], fns SF, xs S) T {
	elems := from.unpack(xs)
	var out []B
	fs.each(fns, func(f func(A) B) bool {
		for _, x := range elems {
			out = append(out, f(x))
		}
		return true
	})
	return to.build(out)
}

// CartesianProduct returns every combination taking one element from each
// of xss, the last sequence varying fastest. With no sequences it returns
// a single empty combination.
func CartesianProduct[S, A, SS any](inner *Sequence[S, A], outer *Sequence[SS, S], xss ...S) SS {
	combos := [][]A{nil}
	for _, xs := range xss {
		elems := inner.unpack(xs)
		next := make([][]A, 0, len(combos)*len(elems))
		for _, prefix := range combos {
			for _, x := range elems {
				combo := make([]A, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, x))
			}
		}
		combos = next
	}
	out := make([]S, len(combos))
	for i, combo := range combos {
		out[i] = inner.build(combo)
	}
	return outer.build(out)
}
