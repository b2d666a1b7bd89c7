// Package leetcode holds small textbook exercises: an exchange sort, the
// quadratic two-sum search and a couple of decimal digit helpers.
package leetcode
