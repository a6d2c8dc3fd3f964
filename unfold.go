// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "slices"

// Unfolds are the duals of folds: they grow a sequence from a seed until
// the step function answers Nothing.

// UnfoldLeft calls f on the seed; Just (seed', x) appends x after the
// unfolding of seed'. The first element produced is therefore the last of
// the result, which makes UnfoldLeft invert a left fold whose step f
// exactly undoes.
func UnfoldLeft[S, A, B any](to *Sequence[S, A], seed B, f func(B) Maybe[Pair[B, A]]) S {
	var out []A
	for {
		step, ok := f(seed).Get()
		if !ok {
			break
		}
		out = append(out, step.Snd)
		seed = step.Fst
	}
	slices.Reverse(out)
	return to.build(out)
}

// UnfoldRight calls f on the seed; Just (x, seed') prepends x to the
// unfolding of seed', so elements appear in the order produced.
func UnfoldRight[S, A, B any](to *Sequence[S, A], seed B, f func(B) Maybe[Pair[A, B]]) S {
	var out []A
	for {
		step, ok := f(seed).Get()
		if !ok {
			break
		}
		out = append(out, step.Fst)
		seed = step.Snd
	}
	return to.build(out)
}
