// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/seq"
)

var (
	ints    = seq.TupleOf(seq.OrderedElem[int]())
	intList = seq.ListOf(seq.OrderedElem[int]())
	intView = seq.Views(seq.OrderedElem[int]())
	runes   = seq.Strings()
	ranges  = seq.Ranges()
)

// tuple builds an int Tuple.
func tuple(xs ...int) seq.Tuple[int] { return seq.MakeTuple(xs...) }

// randInts returns a random slice of length [0, 12] with values in [-50, 50].
func randInts(rng *rand.Rand) []int {
	out := make([]int, rng.IntN(13))
	for i := range out {
		out[i] = rng.IntN(101) - 50
	}
	return out
}

// randRunes returns a random rune slice of length [0, 8] mixing ASCII and
// multi-byte runes.
func randRunes(rng *rand.Rand) []rune {
	alphabet := []rune("abcxyzé日本語ß")
	out := make([]rune, rng.IntN(9))
	for i := range out {
		out[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return out
}

// recoverErr runs fn and returns the error it panicked with.
func recoverErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}
