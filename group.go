// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// GroupBy splits xs into maximal runs of adjacent elements related to the
// first element of their run by pred. Concatenating the groups gives xs
// back.
func GroupBy[S, A, SS any](s *Sequence[S, A], outer *Sequence[SS, S], xs S, pred func(A, A) bool) SS {
	var groups []S
	for !s.isEmpty(xs) {
		x := s.head(xs)
		run := s.Span(s.tail(xs), func(y A) bool { return pred(x, y) })
		groups = append(groups, s.prepend(x, run.Fst))
		xs = run.Snd
	}
	return outer.build(groups)
}

// Group is GroupBy with the element Equal instance.
func Group[S, A, SS any](s *Sequence[S, A], outer *Sequence[SS, S], xs S) SS {
	return GroupBy(s, outer, xs, s.equal())
}

// Permutations returns all n! orderings of xs. Each permutation of the
// tail receives the head at every position.
func Permutations[S, A, SS any](s *Sequence[S, A], outer *Sequence[SS, S], xs S) SS {
	perms := permutations(s.Linearize(xs))
	out := make([]S, len(perms))
	for i, p := range perms {
		out[i] = s.build(p)
	}
	return outer.build(out)
}

func permutations[A any](xs []A) [][]A {
	if len(xs) == 0 {
		return [][]A{nil}
	}
	var out [][]A
	for _, p := range permutations(xs[1:]) {
		out = append(out, insertions(xs[0], p)...)
	}
	return out
}

// insertions returns x inserted at every position of ys, front first.
func insertions[A any](x A, ys []A) [][]A {
	if len(ys) == 0 {
		return [][]A{{x}}
	}
	rest := insertions(x, ys[1:])
	out := make([][]A, 0, len(rest)+1)
	out = append(out, append([]A{x}, ys...))
	for _, zs := range rest {
		out = append(out, append([]A{ys[0]}, zs...))
	}
	return out
}
