// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// ScanLeft returns the successive states of a left fold, starting with
// state: n elements give n+1 states.
func ScanLeft[S, A, T, B any](from *Foldable[S, A], to *Sequence[T, B], xs S, state B, f func(B, A) B) T {
	out := []B{state}
	from.each(xs, func(x A) bool {
		state = f(state, x)
		out = append(out, state)
		return true
	})
	return to.build(out)
}

// ScanRight returns the successive states of a right fold, ending with
// state: n elements give n+1 states.
func ScanRight[S, A, T, B any](from *Foldable[S, A], to *Sequence[T, B], xs S, state B, f func(A, B) B) T {
	elems := from.unpack(xs)
	out := make([]B, len(elems)+1)
	out[len(elems)] = state
	for i := len(elems) - 1; i >= 0; i-- {
		out[i] = f(elems[i], out[i+1])
	}
	return to.build(out)
}

// ScanLeft1 is ScanLeft seeded with the first element: n elements give n
// states, and an empty xs gives an empty result.
func (s *Sequence[S, A]) ScanLeft1(xs S, f func(A, A) A) S {
	if s.isEmpty(xs) {
		return s.empty()
	}
	return ScanLeft(s.Foldable, s, s.tail(xs), s.head(xs), f)
}

// ScanRight1 is ScanRight seeded with the last element: n elements give n
// states, and an empty xs gives an empty result.
func (s *Sequence[S, A]) ScanRight1(xs S, f func(A, A) A) S {
	elems := s.unpack(xs)
	if len(elems) == 0 {
		return s.empty()
	}
	out := make([]A, len(elems))
	out[len(elems)-1] = elems[len(elems)-1]
	for i := len(elems) - 2; i >= 0; i-- {
		out[i] = f(elems[i], out[i+1])
	}
	return s.build(out)
}
