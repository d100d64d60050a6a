package deque_test

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"

	"lazyseq/internal/deque"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name            string
		initialCapacity int
	}{
		{"Negative capacity", -1},
		{"Zero capacity", 0},
		{"Capacity 1", 1},
		{"Capacity 3 (round up)", 3},
		{"Capacity 9 (round up)", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := deque.New[int](tt.initialCapacity)
			assert.Assert(t, slices.Collect(d.Values()) == nil)
			d.PushBack(1, 2, 3, 4, 5)
			assert.DeepEqual(t, slices.Collect(d.Values()), []int{1, 2, 3, 4, 5})
		})
	}
}

func TestDeque_PushBackPushFront(t *testing.T) {
	d := deque.New[int](2)
	d.PushBack(3, 4)
	d.PushFront(1, 2)
	d.PushBack(5)
	d.PushFront(0)

	assert.DeepEqual(t, slices.Collect(d.Values()), []int{0, 1, 2, 3, 4, 5})
}

func TestDeque_WrapAroundGrow(t *testing.T) {
	// head wraps to the end of the buffer before the grow happens
	d := deque.New[int](4)
	d.PushBack(2, 3)
	d.PushFront(1)
	d.PushFront(0)
	d.PushBack(4)

	assert.DeepEqual(t, slices.Collect(d.Values()), []int{0, 1, 2, 3, 4})

	d.PushFront(-2, -1)
	assert.DeepEqual(t, slices.Collect(d.Values()), []int{-2, -1, 0, 1, 2, 3, 4})
}

func TestDeque_ValuesRestartable(t *testing.T) {
	d := deque.New[string](0)
	d.PushBack("a", "b")
	values := d.Values()
	assert.DeepEqual(t, slices.Collect(values), []string{"a", "b"})
	assert.DeepEqual(t, slices.Collect(values), []string{"a", "b"})
}

func TestDeque_EarlyStop(t *testing.T) {
	d := deque.New[int](0)
	d.PushBack(1, 2, 3)
	var got []int
	for v := range d.Values() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.DeepEqual(t, got, []int{1, 2})
}
