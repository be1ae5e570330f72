package mmr

import (
	"hash"
)

// CalculateRoot computes the bagged root of the mmr of the given size from
// the supplied leaves and the flat multi proof.
//
// leaves must be ascending by mmr index (see SortLeaves) and may be empty, in
// which case proof carries the peak roots themselves. The proof values are
// consumed strictly left to right; each value's meaning is fixed entirely by
// the traversal, so a misplaced entry yields a wrong root, not an error.
//
// Peaks are processed left to right. A peak which commits none of the leaves
// takes its root directly from the proof. If the proof is already exhausted
// when such a peak is reached, processing stops and the root is bagged from
// the peaks collected so far; generated proofs only carry entries up to the
// last peak with proven leaves, so the stop is what makes those proofs land
// exactly.
func CalculateRoot(
	hasher hash.Hash, proof [][]byte, leaves []Leaf, mmrSize uint64,
) ([]byte, error) {

	peaks := Peaks(mmrSize)

	var peakRoots [][]byte
	proofCursor := 0

PeakLoop:
	for _, peak := range peaks {

		var peakLeaves []Leaf
		peakLeaves, leaves = LeavesForPeak(leaves, peak)

		switch {
		case len(peakLeaves) == 0:
			if proofCursor == len(proof) {
				break PeakLoop
			}
			peakRoots = append(peakRoots, proof[proofCursor])
			proofCursor++

		case len(peakLeaves) == 1 && peakLeaves[0].Index == peak:
			// the peak is itself a leaf
			peakRoots = append(peakRoots, peakLeaves[0].Hash)

		default:
			root, cursor, err := CalculatePeakRoot(hasher, peakLeaves, proof, peak, proofCursor)
			if err != nil {
				return nil, err
			}
			proofCursor = cursor
			peakRoots = append(peakRoots, root)
		}
	}

	return bagPeakRoots(hasher, peakRoots), nil
}

// bagPeakRoots accumulates the peak roots into a single root.
//
// The hashes are highest peak first. We pop the last two, hash right then
// left, and push the result, so the fold closes from the low end of the range
// inward rather than forming a balanced tree.
//
// WARNING: MUTATES the input slice by popping items from it
func bagPeakRoots(hasher hash.Hash, peakRoots [][]byte) []byte {

	var right []byte
	var left []byte

	for len(peakRoots) > 1 {

		right, peakRoots = peakRoots[len(peakRoots)-1], peakRoots[:len(peakRoots)-1]
		left, peakRoots = peakRoots[len(peakRoots)-1], peakRoots[:len(peakRoots)-1]

		hasher.Reset()
		hasher.Write(right)
		hasher.Write(left)

		peakRoots = append(peakRoots, hasher.Sum(nil))
	}
	if len(peakRoots) > 0 {
		return peakRoots[0]
	}
	return nil
}

// BagPeakRoots merkleizes the peak roots to obtain a single root.
// This variant copies the list in order to be side effect free.
func BagPeakRoots(hasher hash.Hash, peakRoots [][]byte) []byte {
	return bagPeakRoots(hasher, append([][]byte(nil), peakRoots...))
}
