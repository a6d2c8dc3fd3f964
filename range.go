// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "fmt"

// Range is the half-open integer interval [From, To). A range with
// To <= From is empty.
type Range struct {
	From, To int
}

// MakeRange returns [from, to).
func MakeRange(from, to int) Range { return Range{From: from, To: to} }

// Len returns the number of integers in r.
func (r Range) Len() int { return max(r.To-r.From, 0) }

func (r Range) String() string { return fmt.Sprintf("[%d, %d)", r.From, r.To) }

// Ranges returns the Iterable class of Range. Ranges cannot grow, so the
// class is not a Sequence; use Convert to materialize one.
func Ranges() *Iterable[Range, int] {
	return MustIterable(Def[Range, int]{
		Name: "Range",
		Unpack: func(r Range) []int {
			out := make([]int, r.Len())
			for i := range out {
				out[i] = r.From + i
			}
			return out
		},
		Length:  Range.Len,
		Head:    func(r Range) int { return r.From },
		Tail:    func(r Range) Range { return Range{From: r.From + 1, To: r.To} },
		IsEmpty: func(r Range) bool { return r.From >= r.To },
		At:      func(r Range, n int) int { return r.From + n },
		Drop: func(r Range, n int) Range {
			return Range{From: r.From + min(max(n, 0), r.Len()), To: r.To}
		},
		Elem: OrderedElem[int](),
	})
}
