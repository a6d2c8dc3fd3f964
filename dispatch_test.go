// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/seq"
)

func TestNewFoldableWithoutPrimitives(t *testing.T) {
	_, err := seq.NewFoldable(seq.Def[int, int]{Name: "bare"})
	require.Error(t, err)
	assert.ErrorIs(t, err, seq.ErrDispatch)

	var de *seq.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "bare", de.Tag)
	assert.Equal(t, seq.OpFoldl, de.Op)
	assert.Contains(t, de.Needs, seq.OpUnpack)
}

func TestNewFoldableFromSingleFold(t *testing.T) {
	left, err := seq.NewFoldable(seq.Def[[]int, int]{
		Name: "onlyFoldl",
		Foldl: func(xs []int, state seq.Erased, f func(seq.Erased, int) seq.Erased) seq.Erased {
			for _, x := range xs {
				state = f(state, x)
			}
			return state
		},
	})
	require.NoError(t, err)
	right, err := seq.NewFoldable(seq.Def[[]int, int]{
		Name: "onlyFoldr",
		Foldr: func(xs []int, state seq.Erased, f func(int, seq.Erased) seq.Erased) seq.Erased {
			for i := len(xs) - 1; i >= 0; i-- {
				state = f(xs[i], state)
			}
			return state
		},
	})
	require.NoError(t, err)

	for _, c := range []*seq.Foldable[[]int, int]{left, right} {
		xs := []int{1, 2, 3}
		name := c.Tag().Name()
		assert.Equal(t, xs, c.Linearize(xs), name)
		assert.Equal(t, 3, c.Length(xs), name)
		assert.False(t, c.IsEmpty(xs), name)
		assert.True(t, c.IsEmpty(nil), name)
		assert.Equal(t, "321", seq.Foldr(c, xs, "", func(x int, acc string) string { return acc + string(rune('0'+x)) }), name)
		assert.Equal(t, "123", seq.Foldl(c, xs, "", func(acc string, x int) string { return acc + string(rune('0'+x)) }), name)
	}
	assert.Equal(t, seq.Explicit, left.Tag().Source(seq.OpFoldl))
	assert.Equal(t, seq.Derived, left.Tag().Source(seq.OpFoldr))
	assert.Equal(t, seq.Derived, right.Tag().Source(seq.OpFoldl))
	assert.Equal(t, seq.Derived, right.Tag().Source(seq.OpUnpack))
}

func TestNewIterableRequiresHeadTail(t *testing.T) {
	_, err := seq.NewIterable(seq.Def[[]int, int]{
		Unpack: func(xs []int) []int { return xs },
	})
	var de *seq.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, seq.OpHead, de.Op)
	assert.Equal(t, "[]int", de.Tag)
}

func TestNewSequenceRequiresPrependAndEmpty(t *testing.T) {
	_, err := seq.NewSequence(seq.Def[[]int, int]{
		Unpack: func(xs []int) []int { return xs },
		Make:   func(xs []int) []int { return xs },
	})
	var de *seq.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, seq.OpPrepend, de.Op)
	assert.Equal(t, []seq.Op{seq.OpPrepend, seq.OpEmpty}, de.Needs)
}

func TestNewSequenceRequiresIterableOrMake(t *testing.T) {
	_, err := seq.NewSequence(seq.Def[[]int, int]{
		Unpack:  func(xs []int) []int { return xs },
		Prepend: func(x int, xs []int) []int { return append([]int{x}, xs...) },
		Empty:   func() []int { return nil },
	})
	assert.ErrorIs(t, err, seq.ErrDispatch)
}

func TestMustSequencePanicsWithDispatchError(t *testing.T) {
	err := recoverErr(t, func() { seq.MustSequence(seq.Def[int, int]{}) })
	assert.ErrorIs(t, err, seq.ErrDispatch)
}

// sliceSeq supplies only Unpack, Make, Prepend and Empty; the iterable
// triple is derived.
func sliceSeq() *seq.Sequence[[]int, int] {
	return seq.MustSequence(seq.Def[[]int, int]{
		Name:    "slice",
		Unpack:  func(xs []int) []int { return xs },
		Make:    func(xs []int) []int { return xs },
		Prepend: func(x int, xs []int) []int { return append([]int{x}, xs...) },
		Empty:   func() []int { return nil },
		Elem:    seq.OrderedElem[int](),
	})
}

func TestNewSequenceDerivesIterableFromUnpack(t *testing.T) {
	s := sliceSeq()
	tag := s.Tag()
	assert.Equal(t, "slice", tag.Name())
	assert.Equal(t, seq.Derived, tag.Source(seq.OpHead))
	assert.Equal(t, seq.Derived, tag.Source(seq.OpTail))
	assert.Equal(t, seq.Derived, tag.Source(seq.OpIsEmpty))
	assert.Equal(t, seq.Explicit, tag.Source(seq.OpUnpack))
	assert.Equal(t, seq.Explicit, tag.Source(seq.OpMake))

	xs := []int{3, 1, 2}
	assert.Equal(t, 3, s.Head(xs))
	assert.Equal(t, []int{1, 2}, s.Tail(xs))
	assert.Equal(t, []int{1, 2, 3}, s.Sort(xs))
	assert.Equal(t, []int{3, 1, 2}, xs)
}

func TestTagSources(t *testing.T) {
	list := intList.Tag()
	assert.Equal(t, "List", list.Name())
	assert.Equal(t, seq.Explicit, list.Source(seq.OpHead))
	assert.Equal(t, seq.Explicit, list.Source(seq.OpPrepend))
	for _, op := range []seq.Op{seq.OpUnpack, seq.OpFoldl, seq.OpFoldr, seq.OpLength, seq.OpAt, seq.OpDrop, seq.OpAppend, seq.OpConcat, seq.OpMake} {
		assert.Equal(t, seq.Derived, list.Source(op), "List %s", op)
	}

	tup := ints.Tag()
	for _, op := range []seq.Op{seq.OpUnpack, seq.OpLength, seq.OpAt, seq.OpDrop, seq.OpAppend, seq.OpConcat, seq.OpMake} {
		assert.Equal(t, seq.Explicit, tup.Source(op), "Tuple %s", op)
	}
	assert.True(t, tup.Has(seq.OpLess))

	rng := ranges.Tag()
	assert.False(t, rng.Has(seq.OpPrepend))
	assert.Equal(t, seq.Missing, rng.Source(seq.OpMake))
	assert.Equal(t, seq.Missing, rng.Source(seq.Op(200)))
}

func TestTagString(t *testing.T) {
	s := seq.MustFoldable(seq.Def[[]int, int]{
		Name:   "ints",
		Unpack: func(xs []int) []int { return xs },
	}).Tag().String()
	assert.Equal(t, "ints{unpack:explicit foldl:derived foldr:derived length:derived is_empty:derived}", s)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "is_empty", seq.OpIsEmpty.String())
	assert.Equal(t, "Op(99)", seq.Op(99).String())
	assert.Equal(t, "derived", seq.Derived.String())
}

func TestMissingElemInstancePanicsOnUse(t *testing.T) {
	bare := seq.ListOf(seq.Elem[int]{})
	xs := bare.Make(2, 1)

	// Order-free operations still work.
	assert.Equal(t, 2, bare.Length(xs))

	err := recoverErr(t, func() { bare.Sort(xs) })
	var de *seq.DispatchError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, seq.OpLess, de.Op)

	err = recoverErr(t, func() { bare.Contains(xs, 1) })
	require.True(t, errors.As(err, &de))
	assert.Equal(t, seq.OpEqual, de.Op)
}
