package leetcode

// NoSolution is what TwoSum returns when no pair adds up to the target.
var NoSolution = [2]int32{-1, -1}

// TwoSum returns the indexes of two distinct elements of nums whose sum is
// target, or NoSolution.
//
// The search is the quadratic one: for each i in ascending order, the first
// j != i (also ascending) holding target-nums[i] wins.
func TwoSum(nums []int32, target int32) [2]int32 {
	for i, v := range nums {
		if j, ok := complementIndex(nums, i, int64(target)-int64(v)); ok {
			return [2]int32{int32(i), int32(j)}
		}
	}
	return NoSolution
}

// complementIndex works in int64 so target-nums[i] cannot wrap around.
func complementIndex(nums []int32, skip int, want int64) (int, bool) {
	for j, v := range nums {
		if j != skip && int64(v) == want {
			return j, true
		}
	}
	return 0, false
}
