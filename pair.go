// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "fmt"

// Pair is an ordered 2-tuple, used for (matched, rest) splits and
// (seed, element) unfold steps.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair builds a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// First returns the first component.
func (p Pair[A, B]) First() A { return p.Fst }

// Second returns the second component.
func (p Pair[A, B]) Second() B { return p.Snd }

// Swap exchanges the components.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Fst, p.Snd)
}
