package domain

import "hash/fnv"

// SeededRatio maps seed to a stable value in [0, 1). The same seed always
// yields the same value, so mock figures derived from it stay reproducible.
func SeededRatio(seed string) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return float64(h.Sum64()%10000) / 10000
}
