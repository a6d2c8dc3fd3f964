// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Equal reports whether xs and ys have the same length and pairwise equal
// elements. Both are tested for emptiness before every comparison, so a
// length difference ends the walk at the shorter one.
func (it *Iterable[S, A]) Equal(xs, ys S) bool {
	eq := it.equal()
	for {
		ex, ey := it.isEmpty(xs), it.isEmpty(ys)
		if ex || ey {
			return ex && ey
		}
		if !eq(it.head(xs), it.head(ys)) {
			return false
		}
		xs, ys = it.tail(xs), it.tail(ys)
	}
}

// Less orders sequences lexicographically. A sequence exhausted first is
// less; two exhausted sequences are equal.
func (it *Iterable[S, A]) Less(xs, ys S) bool {
	lt := it.less()
	for {
		if it.isEmpty(ys) {
			return false
		}
		if it.isEmpty(xs) {
			return true
		}
		x, y := it.head(xs), it.head(ys)
		if lt(x, y) {
			return true
		}
		if lt(y, x) {
			return false
		}
		xs, ys = it.tail(xs), it.tail(ys)
	}
}

// AsElem returns the Comparable and Orderable instances of whole sequences,
// for classes whose elements are themselves sequences of this class.
// An instance missing on A is missing on S as well.
func (it *Iterable[S, A]) AsElem() Elem[S] {
	var e Elem[S]
	if it.elem.Equal != nil {
		e.Equal = it.Equal
	}
	if it.elem.Less != nil {
		e.Less = it.Less
	}
	return e
}
