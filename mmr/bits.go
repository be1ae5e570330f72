package mmr

import "math/bits"

func BitLength64(num uint64) uint64 { return uint64(BitLength(num)) }
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// AllOnes is true when every bit below the highest set bit of num is also set.
// The one based positions of the left most peaks all have this property.
func AllOnes(num uint64) bool {
	return (1<<bits.OnesCount64(num) - 1) == num
}
