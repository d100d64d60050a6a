package seqs_test

import (
	"slices"
	"strconv"
	"testing"

	"gotest.tools/v3/assert"

	"lazyseq/option"
	"lazyseq/seqs"
)

func TestHead(t *testing.T) {
	v, ok := seqs.Head(seqs.Range(3, 9))
	assert.Assert(t, ok)
	assert.Equal(t, v, 3)

	v, ok = seqs.Head(seqs.Nil[int]())
	assert.Assert(t, !ok)
	assert.Equal(t, v, 0)

	assert.Equal(t, seqs.HeadOption(seqs.Repeat("r")), option.Some("r"))
	assert.Equal(t, seqs.HeadOption(seqs.Nil[string]()), option.None[string]())
}

func TestIsEmpty(t *testing.T) {
	assert.Assert(t, seqs.IsEmpty(seqs.Nil[int]()))
	assert.Assert(t, !seqs.IsEmpty(seqs.Repeat(1)))

	pulled := 0
	assert.Assert(t, !seqs.IsEmpty(counting(seqs.Upto(100), &pulled)))
	assert.Equal(t, pulled, 1)
}

func TestLastAnyAllCount(t *testing.T) {
	last, ok := seqs.Last(seqs.Upto(4))
	assert.Assert(t, ok)
	assert.Equal(t, last, 4)
	_, ok = seqs.Last(seqs.Nil[int]())
	assert.Assert(t, !ok)

	assert.Assert(t, seqs.Any(seqs.Repeat(2), isEven))
	assert.Assert(t, !seqs.All(seqs.Upto(3), isEven))
	assert.Assert(t, seqs.All(seqs.Nil[int](), isEven))
	assert.Assert(t, !seqs.Any(seqs.Nil[int](), isEven))
	assert.Assert(t, !seqs.All(seqs.Iterate(0, func(x int) int { return x + 1 }), isEven))
	assert.Equal(t, seqs.Count(seqs.Upto(9)), 10)
}

func TestForEach(t *testing.T) {
	var seen []int
	seqs.ForEach(seqs.Of(3, 2, 1), func(v int) { seen = append(seen, v) })
	assert.DeepEqual(t, seen, []int{3, 2, 1})
}

func TestReduceFoldr(t *testing.T) {
	concat := func(acc string, v int) string { return acc + strconv.Itoa(v) }
	assert.Equal(t, seqs.Reduce(seqs.Of(1, 2, 3), "", concat), "123")
	assert.Equal(t, seqs.Reduce(seqs.Upto(4), 0, func(acc, v int) int { return acc + v }), 10)

	rconcat := func(v int, acc string) string { return acc + strconv.Itoa(v) }
	assert.Equal(t, seqs.Foldr(seqs.Of(1, 2, 3), "", rconcat), "321")

	// right fold builds lists in source order
	cons := func(v int, acc []int) []int { return append([]int{v}, acc...) }
	assert.DeepEqual(t, seqs.Foldr(seqs.Of(1, 2, 3), []int(nil), cons), []int{1, 2, 3})
	assert.Equal(t, seqs.Foldr(seqs.Nil[int](), "start", rconcat), "start")
}

func TestEqual(t *testing.T) {
	assert.Assert(t, seqs.Equal(seqs.Upto(3), seqs.Of(0, 1, 2, 3)))
	assert.Assert(t, seqs.Equal(seqs.Nil[int](), seqs.Of[int]()))
	assert.Assert(t, !seqs.Equal(seqs.Upto(3), seqs.Upto(2)))
	assert.Assert(t, !seqs.Equal(seqs.Upto(2), seqs.Upto(3)))
	assert.Assert(t, !seqs.Equal(seqs.Of(1, 2), seqs.Of(1, 3)))

	// one infinite side still terminates
	assert.Assert(t, !seqs.Equal(seqs.Repeat(1), seqs.Of(1, 1)))
	assert.Assert(t, !seqs.Equal(seqs.Of(1, 1), seqs.Repeat(1)))
}

func TestEqualFunc(t *testing.T) {
	same := seqs.EqualFunc(seqs.Of(1, 2), seqs.Of("1", "2"), func(a int, b string) bool {
		return strconv.Itoa(a) == b
	})
	assert.Assert(t, same)
}

func TestCollect(t *testing.T) {
	assert.DeepEqual(t, seqs.Collect(seqs.Of("a")), slices.Collect(seqs.Of("a")))
}
