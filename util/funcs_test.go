package util

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcatIter(t *testing.T) {
	all := ConcatIter(SingleIter(0), slices.Values([]int{1, 2}), slices.Values([]int{}), SingleIter(3))
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(all))

	var firstTwo []int
	for v := range all {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	assert.Equal(t, []int{0, 1}, firstTwo)
}

func TestMapAndFilterIter(t *testing.T) {
	evens := FilterIter(slices.Values([]int{1, 2, 3, 4}), func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []string{"2", "4"}, slices.Collect(MapIter(evens, strconv.Itoa)))
}

func TestSetFromSeq(t *testing.T) {
	s := SetFromSeq(slices.Values([]string{"a", "b", "a"}), 3)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains("b"))
}

func TestStack(t *testing.T) {
	s := Stack[int]{}
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, top)
	assert.Equal(t, 2, s.Len())

	popped, _ := s.Pop()
	assert.Equal(t, 2, popped)
	assert.Equal(t, 1, s.Len())
}
