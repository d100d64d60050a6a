package seqs_test

import (
	"iter"
	"slices"
	"strconv"
	"testing"

	"gotest.tools/v3/assert"

	"lazyseq/seqs"
)

func TestMap(t *testing.T) {
	got := slices.Collect(seqs.Map(seqs.Of(1, 2, 3), strconv.Itoa))
	assert.DeepEqual(t, got, []string{"1", "2", "3"})

	pulled := 0
	mapped := seqs.Map(counting(seqs.Repeat(1), &pulled), func(x int) int { return x + 1 })
	assert.DeepEqual(t, slices.Collect(seqs.Take(mapped, 2)), []int{2, 2})
	assert.Equal(t, pulled, 2)
}

func TestMconcat(t *testing.T) {
	t.Run("SubRanges", func(t *testing.T) {
		nested := seqs.Map(seqs.Upto(1), func(x int) iter.Seq[int] { return seqs.Upto(x) })
		assert.DeepEqual(t, slices.Collect(seqs.Mconcat(nested)), []int{0, 0, 1})
	})

	t.Run("InfiniteOuter", func(t *testing.T) {
		nested := seqs.Map(seqs.Iterate(1, func(x int) int { return x + 1 }), func(x int) iter.Seq[int] {
			return seqs.Replicate(x, x)
		})
		assert.DeepEqual(t, slices.Collect(seqs.Take(seqs.Mconcat(nested), 6)), []int{1, 2, 2, 3, 3, 3})
	})

	t.Run("InfiniteInner", func(t *testing.T) {
		nested := seqs.Of(seqs.Repeat(9), seqs.Of(1))
		assert.DeepEqual(t, slices.Collect(seqs.Take(seqs.Mconcat(nested), 3)), []int{9, 9, 9})
	})

	t.Run("InnerNotConsumed", func(t *testing.T) {
		inner := seqs.Of(1, 2)
		flat := seqs.Mconcat(seqs.Of(inner, inner))
		assert.DeepEqual(t, slices.Collect(flat), []int{1, 2, 1, 2})
		assert.DeepEqual(t, slices.Collect(inner), []int{1, 2})
	})
}

func TestFlatMap(t *testing.T) {
	got := slices.Collect(seqs.FlatMap(seqs.Of("ab", "c"), func(s string) iter.Seq[rune] {
		return slices.Values([]rune(s))
	}))
	assert.DeepEqual(t, got, []rune{'a', 'b', 'c'})
}

func TestConcatAppend(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(seqs.Concat(seqs.Of(1), seqs.Nil[int](), seqs.Of(2, 3))), []int{1, 2, 3})
	assert.DeepEqual(t, slices.Collect(seqs.Append(seqs.Upto(1), seqs.Of(5))), []int{0, 1, 5})
	assert.Assert(t, seqs.IsEmpty(seqs.Concat[int]()))
}

func TestConsSnoc(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(seqs.Cons(0, seqs.Of(1, 2))), []int{0, 1, 2})
	assert.DeepEqual(t, slices.Collect(seqs.Cons(0, seqs.Nil[int]())), []int{0})
	assert.DeepEqual(t, slices.Collect(seqs.Snoc(seqs.Of(1, 2), 3)), []int{1, 2, 3})
	assert.DeepEqual(t, slices.Collect(seqs.Snoc(seqs.Nil[int](), 3)), []int{3})

	// the prefix of an infinite Snoc is still usable
	assert.DeepEqual(t, slices.Collect(seqs.Take(seqs.Snoc(seqs.Repeat(1), 2), 2)), []int{1, 1})
}

func TestCycle(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(seqs.Take(seqs.Cycle(seqs.Of(1, 2)), 5)), []int{1, 2, 1, 2, 1})
	assert.Assert(t, seqs.IsEmpty(seqs.Cycle(seqs.Nil[int]())))

	pulled := 0
	cycled := seqs.Cycle(counting(seqs.Of(1, 2, 3), &pulled))
	assert.DeepEqual(t, slices.Collect(seqs.Take(cycled, 4)), []int{1, 2, 3, 1})
	assert.Equal(t, pulled, 4)
}

func TestReverse(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(seqs.Reverse(seqs.Upto(3))), []int{3, 2, 1, 0})
	assert.Assert(t, seqs.IsEmpty(seqs.Reverse(seqs.Nil[int]())))

	pulled := 0
	reversed := seqs.Reverse(counting(seqs.Upto(3), &pulled))
	assert.Equal(t, pulled, 0)
	assert.DeepEqual(t, slices.Collect(reversed), []int{3, 2, 1, 0})
	assert.DeepEqual(t, slices.Collect(reversed), []int{3, 2, 1, 0})
}

func TestZipWith(t *testing.T) {
	pair := func(a, b int) [2]int { return [2]int{a, b} }

	got := slices.Collect(seqs.ZipWith(seqs.Of(0, 1, 2), seqs.Range(2, 4), pair))
	assert.DeepEqual(t, got, [][2]int{{0, 2}, {1, 3}, {2, 4}})

	got = slices.Collect(seqs.ZipWith(seqs.Repeat(7), seqs.Of(1, 2), pair))
	assert.DeepEqual(t, got, [][2]int{{7, 1}, {7, 2}})

	assert.Assert(t, seqs.IsEmpty(seqs.ZipWith(seqs.Of(1), seqs.Nil[int](), pair)))
}

func TestZip(t *testing.T) {
	got := slices.Collect(seqs.Zip(seqs.Of(1, 2, 3), seqs.Of("a", "b")))
	want := []seqs.Pair[int, string]{{V1: 1, V2: "a"}, {V1: 2, V2: "b"}}
	assert.DeepEqual(t, got, want)
}
