package leetcode

import "golang.org/x/exp/constraints"

// BubbleSort sorts s in place in ascending order.
//
// It makes len(s) passes, each one swapping adjacent elements only when the
// left one is strictly greater, so equal elements keep their relative order.
func BubbleSort[T constraints.Ordered](s []T) {
	for range s {
		bubbleStep(s)
	}
}

// bubbleStep runs one left-to-right pass, carrying the largest unsorted
// element to the end.
func bubbleStep[T constraints.Ordered](s []T) {
	for i := 0; i+1 < len(s); i++ {
		if s[i] > s[i+1] {
			s[i], s[i+1] = s[i+1], s[i]
		}
	}
}
