package mmr

import (
	"bytes"
	"hash"
)

// VerifyProof returns true if the leaves, combined with the proof, reproduce
// the provided root for the mmr of the given size.
//
// leaves must be ascending by mmr index (see SortLeaves). A mismatched root
// is not an error; errors are reserved for proofs whose shape prevents
// reconstruction entirely.
func VerifyProof(
	hasher hash.Hash, root []byte, proof [][]byte, leaves []Leaf, mmrSize uint64,
) (bool, error) {

	calculated, err := CalculateRoot(hasher, proof, leaves, mmrSize)
	if err != nil {
		return false, err
	}
	return bytes.Equal(root, calculated), nil
}
