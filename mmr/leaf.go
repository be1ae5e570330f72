package mmr

import (
	"math/bits"

	"github.com/bolajahmad/solidity-merkle-trees/multiproof"
)

// Leaf identifies one proven element of the mmr.
//
// Index is the leaf's node index in the global mmr numbering, which counts
// interior nodes as well as leaves. KIndex is the leaf's rank amongst the
// leaves of the mountain containing it, counting from zero at the left. It is
// the local index used while the mountain's root is reconstructed, and it is
// assigned by whoever generates the proof.
type Leaf struct {
	KIndex uint64 `cbor:"1,keyasint"`
	Index  uint64 `cbor:"2,keyasint"`
	Hash   []byte `cbor:"3,keyasint"`
}

// Node converts the leaf to its local reconstruction node.
func (l Leaf) Node() multiproof.Node {
	return multiproof.Node{Index: l.KIndex, Hash: l.Hash}
}

// LeavesForPeak splits leaves into those committed by the mountain rooted at
// peak and the remainder. leaves must be ascending by Index; the mountain's
// leaves are then exactly the prefix whose Index does not exceed peak.
func LeavesForPeak(leaves []Leaf, peak uint64) ([]Leaf, []Leaf) {
	i := 0
	for ; i < len(leaves); i++ {
		if leaves[i].Index > peak {
			break
		}
	}
	return leaves[:i], leaves[i:]
}

// MMRIndex returns the node index for the leaf with the given leaf index,
// where the leaves are numbered consecutively ignoring interior nodes.
//
// Each leaf is preceded by one interior node per set bit of its leaf index,
// hence 2*leafIndex - popcount(leafIndex).
func MMRIndex(leafIndex uint64) uint64 {
	return 2*leafIndex - uint64(bits.OnesCount64(leafIndex))
}
