package leetcode_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"

	"github.com/dan-bear/playground/leetcode"
)

func TestBubbleSortPermutations(t *testing.T) {
	t.Parallel()

	perms := [][]uint64{
		{2, 3, 5},
		{2, 5, 3},
		{3, 2, 5},
		{3, 5, 2},
		{5, 2, 3},
		{5, 3, 2},
	}
	for _, p := range perms {
		leetcode.BubbleSort(p)
		assert.Equal(t, []uint64{2, 3, 5}, p)
	}
}

func TestBubbleSortBoundarySizes(t *testing.T) {
	t.Parallel()

	var empty []int
	assert.NotPanics(t, func() { leetcode.BubbleSort(empty) })
	assert.Empty(t, empty)

	one := []int{7}
	leetcode.BubbleSort(one)
	assert.Equal(t, []int{7}, one)

	two := []int{9, -1}
	leetcode.BubbleSort(two)
	assert.Equal(t, []int{-1, 9}, two)

	same := []int{4, 4}
	leetcode.BubbleSort(same)
	assert.Equal(t, []int{4, 4}, same)
}

func TestBubbleSortStrings(t *testing.T) {
	t.Parallel()

	s := []string{"life", "is", "good"}
	leetcode.BubbleSort(s)
	assert.Equal(t, []string{"good", "is", "life"}, s)
}

// celsius checks that named types satisfy the Ordered constraint.
type celsius float64

func TestBubbleSortNamedType(t *testing.T) {
	t.Parallel()

	s := []celsius{21.5, -3, 0}
	leetcode.BubbleSort(s)
	assert.Equal(t, []celsius{-3, 0, 21.5}, s)
}

func TestBubbleSortMatchesStdlib(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for size := 0; size < 40; size++ {
		got := make([]int, size)
		for i := range got {
			got[i] = rng.Intn(20) - 10
		}
		want := slices.Clone(got)
		sort.Ints(want)

		leetcode.BubbleSort(got)
		assert.True(t, slices.IsSorted(got), "size %d", size)
		assert.Equal(t, want, got, "size %d", size)
	}
}
