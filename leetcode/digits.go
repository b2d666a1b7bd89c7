package leetcode

// DigitCount returns the number of decimal digits of n. Zero has one digit.
func DigitCount(n uint64) uint8 {
	if n == 0 {
		return 1
	}
	var count uint8
	for n != 0 {
		n /= 10
		count++
	}
	return count
}

// MaxDigit returns the largest decimal digit of n.
//
// The running maximum starts at 0 and Go's % keeps the sign of the dividend,
// so every digit of a negative n compares as <= 0 and the result is 0.
func MaxDigit(n int64) int64 {
	var best int64
	for n != 0 {
		best = max(best, n%10)
		n /= 10
	}
	return best
}
