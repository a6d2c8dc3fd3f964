// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/seq"
)

func TestBuildAndGrow(t *testing.T) {
	assert.Equal(t, tuple(0, 1, 2), ints.Prepend(0, tuple(1, 2)))
	assert.Equal(t, tuple(1, 2, 3), ints.Append(tuple(1, 2), 3))
	assert.Equal(t, intList.Make(1, 2, 3), intList.Append(intList.Make(1, 2), 3))
	assert.Equal(t, "héllo", runes.Prepend('h', "éllo"))
	assert.Equal(t, tuple(7), ints.Lift(7))
	assert.True(t, ints.IsEmpty(ints.Empty()))
	assert.Equal(t, tuple(1, 2, 3, 4), ints.Concat(tuple(1), tuple(), tuple(2, 3), tuple(4)))
	assert.Equal(t, intList.Make(1, 2, 3), intList.Concat(intList.Make(1), intList.Make(2, 3)))
	assert.Equal(t, ints.Empty(), ints.Concat())
}

func TestMakeCopiesArguments(t *testing.T) {
	elems := []int{1, 2, 3}
	xs := ints.Make(elems...)
	elems[0] = 99
	assert.Equal(t, 1, ints.Head(xs))
}

func TestTupleGrowthNeverAliases(t *testing.T) {
	base := ints.Tail(tuple(0, 1, 2, 3))
	a := ints.Append(ints.Init(base), 10)
	b := ints.Append(ints.Init(base), 20)
	assert.Equal(t, tuple(1, 2, 10), a)
	assert.Equal(t, tuple(1, 2, 20), b)
	assert.Equal(t, tuple(1, 2, 3), base)

	elems := base.Elems()
	elems[0] = 42
	assert.Equal(t, 1, ints.Head(base))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, tuple(3, 2, 1), ints.Reverse(tuple(1, 2, 3)))
	assert.Equal(t, intList.Make(3, 2, 1), intList.Reverse(intList.Make(1, 2, 3)))
	assert.Equal(t, "語本日", runes.Reverse("日本語"))
	assert.Equal(t, ints.Empty(), ints.Reverse(ints.Empty()))
}

func TestFilterRemoveIf(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	assert.Equal(t, tuple(2, 4), ints.Filter(tuple(1, 2, 3, 4), even))
	assert.Equal(t, intList.Make(1, 3), intList.RemoveIf(intList.Make(1, 2, 3, 4), even))
	assert.Equal(t, "", runes.Filter("abc", func(rune) bool { return false }))
}

func TestInitDropBack(t *testing.T) {
	assert.Equal(t, tuple(1, 2), ints.Init(tuple(1, 2, 3)))
	assert.Equal(t, intList.Make(1), intList.DropBack(intList.Make(1, 2, 3), 2))
	assert.Equal(t, intList.Empty(), intList.DropBack(intList.Make(1, 2, 3), 9))
	assert.Equal(t, tuple(1, 2, 3), ints.DropBack(tuple(1, 2, 3), -2))
}

func TestSliceAndRemove(t *testing.T) {
	xs := tuple(0, 1, 2, 3, 4)
	assert.Equal(t, tuple(1, 2, 3), ints.Slice(xs, 1, 4))
	assert.Equal(t, tuple(), ints.Slice(xs, 5, 5))
	assert.Equal(t, intList.Make(2, 3), intList.Slice(intList.Make(0, 1, 2, 3), 2, 4))
	assert.Equal(t, tuple(0, 1, 3, 4), ints.RemoveAt(xs, 2))
	assert.Equal(t, tuple(0, 4), ints.RemoveRange(xs, 1, 4))
	assert.Equal(t, tuple(0, 1, 2, 3, 4), xs)
}

func TestInsert(t *testing.T) {
	assert.Equal(t, tuple(1, 9, 2), ints.Insert(tuple(1, 2), 1, 9))
	assert.Equal(t, tuple(1, 2, 9), ints.Insert(tuple(1, 2), 2, 9))
	assert.Equal(t, intList.Make(7, 8, 1, 2), intList.InsertRange(intList.Make(1, 2), 0, intList.Make(7, 8)))
}

func TestIntersperse(t *testing.T) {
	assert.Equal(t, tuple(1, 0, 2, 0, 3), ints.Intersperse(tuple(1, 2, 3), 0))
	assert.Equal(t, tuple(1), ints.Intersperse(tuple(1), 0))
	assert.Equal(t, "a-b-c", runes.Intersperse("abc", '-'))
	assert.Equal(t, "", runes.Intersperse("", '-'))
	assert.Equal(t, intList.Make(1, 0, 2), intList.Intersperse(intList.Make(1, 2), 0))
}

func TestPrefixSuffix(t *testing.T) {
	assert.Equal(t, tuple(0, 1, 0, 2, 0, 3), ints.Prefix(tuple(1, 2, 3), 0))
	assert.Equal(t, tuple(1, 0, 2, 0, 3, 0), ints.Suffix(tuple(1, 2, 3), 0))
	assert.Equal(t, tuple(), ints.Prefix(tuple(), 0))
	assert.Equal(t, tuple(), ints.Suffix(tuple(), 0))
	assert.Equal(t, intList.Make(9, 4), intList.Prefix(intList.Make(4), 9))
	assert.Equal(t, "a,b,", runes.Suffix("ab", ','))
}

func TestSubsequence(t *testing.T) {
	assert.Equal(t, tuple(30, 10, 30), ints.Subsequence(tuple(10, 20, 30), 2, 0, 2))
	assert.Equal(t, tuple(), ints.Subsequence(tuple(10, 20, 30)))
}

func TestAdjustReplaceFill(t *testing.T) {
	xs := intList.Make(1, 2, 3, 2)
	isTwo := func(x int) bool { return x == 2 }
	assert.Equal(t, intList.Make(1, 20, 3, 20), intList.AdjustIf(xs, isTwo, func(x int) int { return x * 10 }))
	assert.Equal(t, intList.Make(1, 0, 3, 0), intList.ReplaceIf(xs, isTwo, 0))
	assert.Equal(t, intList.Make(1, 5, 3, 5), intList.Replace(xs, 2, 5))
	assert.Equal(t, intList.Make(7, 7, 7, 7), intList.Fill(xs, 7))
	assert.Equal(t, tuple(4, 4, 4), ints.Replicate(4, 3))
	assert.Equal(t, tuple(), ints.Replicate(4, -1))
	assert.Equal(t, "ababab", runes.Cycle("ab", 3))
	assert.Equal(t, "", runes.Cycle("ab", 0))
}

func TestSpanBreak(t *testing.T) {
	small := func(x int) bool { return x < 3 }
	span := intList.Span(intList.Make(1, 2, 3, 1), small)
	assert.Equal(t, intList.Make(1, 2), span.Fst)
	assert.Equal(t, intList.Make(3, 1), span.Snd)

	brk := ints.Break(tuple(1, 2, 3, 1), func(x int) bool { return x == 3 })
	assert.Equal(t, tuple(1, 2), brk.First())
	assert.Equal(t, tuple(3, 1), brk.Second())

	all := ints.Span(tuple(1, 2), small)
	assert.Equal(t, tuple(1, 2), all.Fst)
	assert.True(t, ints.IsEmpty(all.Snd))
}

func TestTake(t *testing.T) {
	xs := intList.Make(1, 2, 3, 4)
	small := func(x int) bool { return x < 3 }
	assert.Equal(t, intList.Make(1, 2), intList.TakeWhile(xs, small))
	assert.Equal(t, intList.Empty(), intList.TakeUntil(xs, small))
	assert.Equal(t, intList.Make(1, 2, 3), intList.TakeExactly(xs, 3))
	assert.Equal(t, intList.Make(1, 2, 3, 4), intList.TakeAtMost(xs, 10))
	assert.Equal(t, intList.Empty(), intList.Take(xs, 0))
	assert.Equal(t, "日本", runes.Take("日本語", 2))
}

func TestPartition(t *testing.T) {
	parts := ints.Partition(tuple(1, 2, 3, 4, 5), func(x int) bool { return x%2 == 1 })
	assert.Equal(t, tuple(1, 3, 5), parts.Fst)
	assert.Equal(t, tuple(2, 4), parts.Snd)
}

type labeled struct {
	n     int
	label string
}

func TestSortStable(t *testing.T) {
	cls := seq.TupleOf(seq.Elem[labeled]{Less: func(x, y labeled) bool { return x.n < y.n }})
	xs := seq.MakeTuple(labeled{2, "x"}, labeled{1, "a"}, labeled{1, "b"}, labeled{0, "z"}, labeled{1, "c"})
	sorted := cls.Sort(xs)
	require.Equal(t, 5, cls.Length(sorted))
	assert.Equal(t, []labeled{{0, "z"}, {1, "a"}, {1, "b"}, {1, "c"}, {2, "x"}}, cls.Linearize(sorted))

	pair := seq.MakeTuple(labeled{1, "a"}, labeled{1, "b"})
	assert.Equal(t, pair, cls.Sort(pair))
}

func TestSortBy(t *testing.T) {
	desc := func(x, y int) bool { return x > y }
	assert.Equal(t, intList.Make(3, 2, 2, 1), intList.SortBy(intList.Make(2, 1, 3, 2), desc))
	assert.Equal(t, "abc", runes.Sort("cab"))
}

func TestScan(t *testing.T) {
	plus := func(x, y int) int { return x + y }
	assert.Equal(t, tuple(0, 1, 3, 6), seq.ScanLeft(ints.Foldable, ints, tuple(1, 2, 3), 0, plus))
	assert.Equal(t, tuple(6, 5, 3, 0), seq.ScanRight(ints.Foldable, ints, tuple(1, 2, 3), 0, plus))
	assert.Equal(t, tuple(5), seq.ScanLeft(ints.Foldable, ints, tuple(), 5, plus))
	assert.Equal(t, tuple(1, 3, 6), ints.ScanLeft1(tuple(1, 2, 3), plus))
	assert.Equal(t, tuple(6, 5, 3), ints.ScanRight1(tuple(1, 2, 3), plus))
	assert.Equal(t, tuple(), ints.ScanLeft1(tuple(), plus))
	assert.Equal(t, tuple(), ints.ScanRight1(tuple(), plus))

	lengths := seq.ScanLeft(runes.Foldable, ints, "abc", 0, func(n int, _ rune) int { return n + 1 })
	assert.Equal(t, tuple(0, 1, 2, 3), lengths)
}

func TestUnfold(t *testing.T) {
	countdown := func(n int) seq.Maybe[seq.Pair[int, int]] {
		if n == 0 {
			return seq.Nothing[seq.Pair[int, int]]()
		}
		return seq.Just(seq.MakePair(n, n-1))
	}
	assert.Equal(t, tuple(3, 2, 1), seq.UnfoldRight(ints, 3, countdown))
	assert.Equal(t, tuple(), seq.UnfoldRight(ints, 0, countdown))

	swapped := func(n int) seq.Maybe[seq.Pair[int, int]] {
		return seq.MapMaybe(countdown(n), seq.Swap[int, int])
	}
	assert.Equal(t, intList.Make(1, 2, 3), seq.UnfoldLeft(intList, 3, swapped))
}
