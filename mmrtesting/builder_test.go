package mmrtesting

import (
	"crypto/sha256"
	"hash"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolajahmad/solidity-merkle-trees/mmr"
)

func leafHash(i uint64) []byte {
	h := sha256.Sum256([]byte{byte(i >> 8), byte(i)})
	return h[:]
}

func pair(hasher hash.Hash, a, b []byte) []byte {
	hasher.Reset()
	hasher.Write(a)
	hasher.Write(b)
	return hasher.Sum(nil)
}

// Seven leaves give the canonical 11 node mmr:
//
//	2        6
//	       /   \
//	1     2     5      9
//	     / \   / \    / \
//	0   0   1 3   4  7   8 10
func TestBuilderCanonicalShape(t *testing.T) {

	hasher := sha256.New()
	b := NewBuilder(sha256.New())

	var indices []uint64
	for i := uint64(0); i < 7; i++ {
		indices = append(indices, b.AddHashedLeaf(leafHash(i)))
	}

	assert.Equal(t, []uint64{0, 1, 3, 4, 7, 8, 10}, indices)
	assert.Equal(t, uint64(11), b.Size())
	assert.Equal(t, uint64(7), b.LeafCount())

	n2 := pair(hasher, leafHash(0), leafHash(1))
	n5 := pair(hasher, leafHash(2), leafHash(3))
	n6 := pair(hasher, n2, n5)
	n9 := pair(hasher, leafHash(4), leafHash(5))

	assert.Equal(t, n2, b.Node(2))
	assert.Equal(t, n5, b.Node(5))
	assert.Equal(t, n6, b.Node(6))
	assert.Equal(t, n9, b.Node(9))
	assert.Equal(t, leafHash(6), b.Node(10))

	assert.Equal(t, [][]byte{n6, n9, leafHash(6)}, b.PeakHashes())
	assert.Equal(t, mmr.BagPeakRoots(hasher, b.PeakHashes()), b.Root())
}

func TestBuilderSizeFollowsLeafCount(t *testing.T) {

	b := NewBuilder(sha256.New())
	for leafCount := uint64(1); leafCount <= 256; leafCount++ {
		b.AddHashedLeaf(leafHash(leafCount))

		want := 2*leafCount - uint64(bits.OnesCount64(leafCount))
		require.Equal(t, want, b.Size(), "leafCount=%d", leafCount)
		require.Equal(t, leafCount, b.LeafCount())
	}
}

func TestMultiProofSingleLeaf(t *testing.T) {

	hasher := sha256.New()
	b := NewBuilder(sha256.New())
	for i := uint64(0); i < 7; i++ {
		b.AddHashedLeaf(leafHash(i))
	}

	// leaf rank 1 sits at mmr index 1, k index 1 of the first mountain
	proof, leaves := b.MultiProof([]uint64{1})

	require.Len(t, leaves, 1)
	assert.Equal(t, mmr.Leaf{KIndex: 1, Index: 1, Hash: leafHash(1)}, leaves[0])

	n5 := pair(hasher, leafHash(2), leafHash(3))
	n9 := pair(hasher, leafHash(4), leafHash(5))

	// mountain path first, then the roots of the remaining peaks
	assert.Equal(t, [][]byte{leafHash(0), n5, n9, leafHash(6)}, proof)
}

func TestMultiProofDeduplicatesRanks(t *testing.T) {

	b := NewBuilder(sha256.New())
	b.AddUUIDLeaves(13)

	proof, leaves := b.MultiProof([]uint64{5, 2, 5, 2})
	require.Len(t, leaves, 2)
	assert.Less(t, leaves[0].Index, leaves[1].Index)

	ok, err := mmr.VerifyProof(sha256.New(), b.Root(), proof, leaves, b.Size())
	require.NoError(t, err)
	assert.True(t, ok)
}
