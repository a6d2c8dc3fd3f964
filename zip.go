// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "slices"

// ZipUnsafeWith combines the i-th elements of every sequence in xss with f
// and builds the results with to. The walk stops when the first sequence
// runs out; the others must be at least as long, otherwise Head panics
// with ErrEmpty. No sequences give the empty result.
func ZipUnsafeWith[S, A, T, B any](in *Iterable[S, A], to *Sequence[T, B], f func(...A) B, xss ...S) T {
	if len(xss) == 0 {
		return to.empty()
	}
	cur := slices.Clone(xss)
	var out []B
	for !in.isEmpty(cur[0]) {
		heads := make([]A, len(cur))
		for i, xs := range cur {
			heads[i] = in.Head(xs)
			cur[i] = in.tail(xs)
		}
		out = append(out, f(heads...))
	}
	return to.build(out)
}

// ZipShortestWith truncates every sequence to the shortest length, then
// zips with f.
func ZipShortestWith[S, A, T, B any](in *Sequence[S, A], to *Sequence[T, B], f func(...A) B, xss ...S) T {
	if len(xss) == 0 {
		return to.empty()
	}
	n := slices.Min(lengths(in.Foldable, xss))
	trimmed := make([]S, len(xss))
	for i, xs := range xss {
		trimmed[i] = in.TakeAtMost(xs, n)
	}
	return ZipUnsafeWith(in.Iterable, to, f, trimmed...)
}

// ZipWith zips sequences of equal length with f. It panics with ErrLength
// when the lengths differ.
func ZipWith[S, A, T, B any](in *Sequence[S, A], to *Sequence[T, B], f func(...A) B, xss ...S) T {
	if ns := lengths(in.Foldable, xss); len(ns) > 0 && slices.Min(ns) != slices.Max(ns) {
		lengthMismatch(in.tag.name, "zip", ns)
	}
	return ZipUnsafeWith(in.Iterable, to, f, xss...)
}

// ZipUnsafe groups the i-th elements of xss into sequences of the same
// class, under the length contract of ZipUnsafeWith.
func ZipUnsafe[S, A, SS any](in *Sequence[S, A], outer *Sequence[SS, S], xss ...S) SS {
	return ZipUnsafeWith(in.Iterable, outer, in.Make, xss...)
}

// ZipShortest is ZipUnsafe after truncating to the shortest input.
func ZipShortest[S, A, SS any](in *Sequence[S, A], outer *Sequence[SS, S], xss ...S) SS {
	return ZipShortestWith(in, outer, in.Make, xss...)
}

// Zip is ZipUnsafe for inputs of equal length. It panics with ErrLength
// when the lengths differ.
func Zip[S, A, SS any](in *Sequence[S, A], outer *Sequence[SS, S], xss ...S) SS {
	return ZipWith(in, outer, in.Make, xss...)
}

// Zip2 pairs up the elements of two sequences of possibly different
// element types, stopping at the shorter one.
func Zip2[S, A, T, B, U any](xc *Iterable[S, A], yc *Iterable[T, B], to *Sequence[U, Pair[A, B]], xs S, ys T) U {
	var out []Pair[A, B]
	for !xc.isEmpty(xs) && !yc.isEmpty(ys) {
		out = append(out, MakePair(xc.head(xs), yc.head(ys)))
		xs, ys = xc.tail(xs), yc.tail(ys)
	}
	return to.build(out)
}

// Unzip transposes a sequence of sequences: the i-th result holds the i-th
// element of every input. Unzip(Zip(xs, ys)) gives back (xs, ys).
func Unzip[SS, S, A any](outer *Sequence[SS, S], inner *Sequence[S, A], xss SS) SS {
	return Unpack(outer.Foldable, xss, func(cols ...S) SS {
		return ZipUnsafe(inner, outer, cols...)
	})
}

func lengths[S, A any](f *Foldable[S, A], xss []S) []int {
	ns := make([]int, len(xss))
	for i, xs := range xss {
		ns[i] = f.length(xs)
	}
	return ns
}
