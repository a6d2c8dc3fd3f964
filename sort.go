// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// SortBy sorts xs with the strict order pred. The sort is stable: elements
// that pred considers equivalent keep their relative order.
func (s *Sequence[S, A]) SortBy(xs S, pred func(A, A) bool) S {
	return s.build(quicksort(s.Linearize(xs), pred))
}

// Sort is SortBy with the element Less instance.
func (s *Sequence[S, A]) Sort(xs S) S {
	return s.SortBy(xs, s.less())
}

// quicksort takes the first element as pivot and partitions the rest into
// the elements strictly before it and the others. Both halves keep their
// relative order, and equivalent elements follow the pivot, so the result
// is stable.
func quicksort[A any](xs []A, pred func(A, A) bool) []A {
	if len(xs) < 2 {
		return xs
	}
	pivot := xs[0]
	var before, after []A
	for _, y := range xs[1:] {
		if pred(y, pivot) {
			before = append(before, y)
		} else {
			after = append(after, y)
		}
	}
	out := make([]A, 0, len(xs))
	out = append(out, quicksort(before, pred)...)
	out = append(out, pivot)
	return append(out, quicksort(after, pred)...)
}
