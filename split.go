// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// loop2 threads a state and the unconsumed rest of a sequence through step
// until stop holds for the current pair.
func loop2[T, U any](state T, rest U, stop func(T, U) bool, step func(T, U) (T, U)) (T, U) {
	for !stop(state, rest) {
		state, rest = step(state, rest)
	}
	return state, rest
}

// prefix collects the leading run of xs whose elements satisfy pred.
func (s *Sequence[S, A]) prefix(xs S, pred func(A) bool) ([]A, S) {
	return loop2([]A(nil), xs,
		func(_ []A, rest S) bool { return s.isEmpty(rest) || !pred(s.head(rest)) },
		func(run []A, rest S) ([]A, S) { return append(run, s.head(rest)), s.tail(rest) },
	)
}

// Span splits xs into the longest prefix satisfying pred and the rest,
// in one pass.
func (s *Sequence[S, A]) Span(xs S, pred func(A) bool) Pair[S, S] {
	run, rest := s.prefix(xs, pred)
	return MakePair(s.build(run), rest)
}

// Break is Span with pred negated: the prefix runs up to the first
// element satisfying pred.
func (s *Sequence[S, A]) Break(xs S, pred func(A) bool) Pair[S, S] {
	return s.Span(xs, func(x A) bool { return !pred(x) })
}

// TakeWhile returns the longest prefix of xs satisfying pred.
func (s *Sequence[S, A]) TakeWhile(xs S, pred func(A) bool) S {
	run, _ := s.prefix(xs, pred)
	return s.build(run)
}

// TakeUntil returns the longest prefix of xs not satisfying pred.
func (s *Sequence[S, A]) TakeUntil(xs S, pred func(A) bool) S {
	return s.TakeWhile(xs, func(x A) bool { return !pred(x) })
}

// TakeExactly returns the first n elements. It panics with ErrIndex when
// xs has fewer than n elements.
func (s *Sequence[S, A]) TakeExactly(xs S, n int) S {
	if length := s.length(xs); n < 0 || n > length {
		indexOutOfRange(s.tag.name, "take_exactly", n, length)
	}
	out := make([]A, 0, n)
	for range n {
		out = append(out, s.head(xs))
		xs = s.tail(xs)
	}
	return s.build(out)
}

// TakeAtMost returns the first n elements, or all of xs when shorter.
func (s *Sequence[S, A]) TakeAtMost(xs S, n int) S {
	var out []A
	for ; n > 0 && !s.isEmpty(xs); n-- {
		out = append(out, s.head(xs))
		xs = s.tail(xs)
	}
	return s.build(out)
}

// Take is TakeAtMost.
func (s *Sequence[S, A]) Take(xs S, n int) S { return s.TakeAtMost(xs, n) }

// Partition splits xs into the elements satisfying pred and the others,
// both in their original order, with a single left fold.
func (s *Sequence[S, A]) Partition(xs S, pred func(A) bool) Pair[S, S] {
	parts := Foldl(s.Foldable, xs, Pair[[]A, []A]{}, func(p Pair[[]A, []A], x A) Pair[[]A, []A] {
		if pred(x) {
			p.Fst = append(p.Fst, x)
		} else {
			p.Snd = append(p.Snd, x)
		}
		return p
	})
	return MakePair(s.build(parts.Fst), s.build(parts.Snd))
}
