// Package mmrtesting provides an in memory mmr and proof generation for
// exercising verification. Nothing here is intended for production use; real
// logs live in storage systems that only need the verification side of this
// repository.
package mmrtesting

import (
	"hash"

	"github.com/google/uuid"

	"github.com/bolajahmad/solidity-merkle-trees/mmr"
)

// Builder is a canonical mmr held as the flat node array the global
// numbering implies.
type Builder struct {
	hasher hash.Hash
	nodes  [][]byte
}

func NewBuilder(hasher hash.Hash) *Builder {
	return &Builder{hasher: hasher}
}

// AddHashedLeaf appends a single leaf and back fills the interior nodes
// 'above and to the left'. Returns the mmr index of the added leaf.
//
// Because of the MMR structure, whenever the index after the one just
// appended would be higher in the tree, the node we just added completes at
// least one new mountain, and each back filled root is always at the 'next'
// index relative to the node that was just added.
func (b *Builder) AddHashedLeaf(hashedLeaf []byte) uint64 {

	leafIndex := uint64(len(b.nodes))
	b.nodes = append(b.nodes, hashedLeaf)

	height := uint64(0)

	// i is at 'next' every time we call IndexHeight
	i := uint64(len(b.nodes))
	for mmr.IndexHeight(i) > height {

		iLeft := i - (2 << height)
		// iRight is always just i - 1
		iRight := i - 1

		b.hasher.Reset()
		b.hasher.Write(b.nodes[iLeft])
		b.hasher.Write(b.nodes[iRight])
		b.nodes = append(b.nodes, b.hasher.Sum(nil))

		i = uint64(len(b.nodes))
		height += 1
	}
	return leafIndex
}

// AddUUIDLeaves appends count leaves whose content is a freshly generated
// uuid, hashed with the builder's hasher. Returns the mmr index of each added
// leaf.
func (b *Builder) AddUUIDLeaves(count int) []uint64 {
	indices := make([]uint64, count)
	for i := range indices {
		id := uuid.New()
		b.hasher.Reset()
		b.hasher.Write(id[:])
		indices[i] = b.AddHashedLeaf(b.hasher.Sum(nil))
	}
	return indices
}

// Size returns the mmr size, the count of nodes including interior nodes.
func (b *Builder) Size() uint64 {
	return uint64(len(b.nodes))
}

// LeafCount returns the number of leaves added.
func (b *Builder) LeafCount() uint64 {
	count := uint64(0)
	for i := range b.nodes {
		if mmr.IndexHeight(uint64(i)) == 0 {
			count++
		}
	}
	return count
}

// Node returns the hash of the node at mmr index i.
func (b *Builder) Node(i uint64) []byte {
	return b.nodes[i]
}

// PeakHashes returns the hashes of the peaks enumerated for the current size.
func (b *Builder) PeakHashes() [][]byte {
	var hashes [][]byte
	for _, peak := range mmr.Peaks(b.Size()) {
		hashes = append(hashes, b.nodes[peak])
	}
	return hashes
}

// Root returns the bagged root of the current mmr. This is the value a
// consumer of the log would commit to, and the value proofs generated by
// MultiProof reproduce.
func (b *Builder) Root() []byte {
	return mmr.BagPeakRoots(b.hasher, b.PeakHashes())
}
