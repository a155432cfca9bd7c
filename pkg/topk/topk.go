// Package topk finds the most frequent values in a list.
package topk

import (
	"errors"
	"slices"
)

// ErrNegativeK indicates a negative k.
var ErrNegativeK = errors.New("topk: k must not be negative")

// Frequent returns the k most frequent values in nums, most frequent first.
// Values with equal counts are ordered ascending. Fewer than k values are
// returned when nums holds fewer than k distinct values.
func Frequent(nums []int64, k int) ([]int64, error) {
	if k < 0 {
		return nil, ErrNegativeK
	}
	if k == 0 || len(nums) == 0 {
		return []int64{}, nil
	}

	counts := make(map[int64]int, len(nums))
	maxCount := 0
	for _, n := range nums {
		counts[n]++
		maxCount = max(maxCount, counts[n])
	}

	// buckets[c] holds every value seen exactly c times.
	buckets := make([][]int64, maxCount+1)
	for v, c := range counts {
		buckets[c] = append(buckets[c], v)
	}

	out := make([]int64, 0, min(k, len(counts)))
	for c := maxCount; c > 0 && len(out) < k; c-- {
		slices.Sort(buckets[c])
		for _, v := range buckets[c] {
			if len(out) == k {
				break
			}
			out = append(out, v)
		}
	}
	return out, nil
}
