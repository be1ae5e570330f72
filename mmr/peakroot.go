package mmr

import (
	"hash"

	"github.com/bolajahmad/solidity-merkle-trees/multiproof"
)

// CalculatePeakRoot reconstructs the root of the mountain rooted at peak from
// the leaves it commits and sibling values drawn from proof.
//
// peakLeaves must be non empty and ascending by mmr index, with every index
// at or below peak. The case of a single leaf which is itself the peak is the
// caller's to handle; it needs no reconstruction and no proof values.
//
// Ascending one level at a time, the siblings of the known local indices are
// derived, and any sibling not already known is assigned the next value from
// proof. The cursor into proof starts at proofCursor and its advanced value
// is returned alongside the root. Discovery order is what fixes the layout of
// the flat proof: level by level from the bottom, ascending index within each
// level. A level whose known nodes already pair among themselves contributes
// nothing to the proof but the climb continues, because siblings can still be
// missing further up. Once a level is fully known the climb stops; everything
// above pairs from computed nodes alone.
func CalculatePeakRoot(
	hasher hash.Hash, peakLeaves []Leaf, proof [][]byte, peak uint64, proofCursor int,
) ([]byte, int, error) {

	nodes := make([]multiproof.Node, len(peakLeaves))
	current := make([]uint64, len(peakLeaves))
	for i, leaf := range peakLeaves {
		nodes[i] = leaf.Node()
		current[i] = leaf.KIndex
	}

	height := IndexHeight(peak)
	layers := make([][]multiproof.Node, height)

	for h := uint64(0); h < height; h++ {

		if uint64(len(current)) == uint64(1)<<(height-h) {
			break
		}

		siblings := siblingIndices(current)
		missing := difference(siblings, current)

		layer := make([]multiproof.Node, len(missing))
		for j, idx := range missing {
			layer[j] = multiproof.Node{Index: idx, Hash: proof[proofCursor]}
			proofCursor++
		}
		layers[h] = layer

		current = parentIndices(siblings)
	}

	root, err := multiproof.CalculateRoot(hasher, layers, nodes)
	if err != nil {
		return nil, proofCursor, err
	}
	return root, proofCursor, nil
}

// siblingIndices maps each local index to the index of its sibling. Even
// indices are left children whose sibling is one to the right, odd indices
// are right children whose sibling is one to the left.
func siblingIndices(indices []uint64) []uint64 {
	siblings := make([]uint64, len(indices))
	for i, idx := range indices {
		if idx&1 == 0 {
			siblings[i] = idx + 1
		} else {
			siblings[i] = idx - 1
		}
	}
	return siblings
}

// parentIndices halves each index, dropping duplicates, to produce the known
// index set one level up. Sibling pairs in the input collapse to a single
// parent, so the result stays ascending when the input came from
// siblingIndices of an ascending set.
func parentIndices(indices []uint64) []uint64 {
	parents := make([]uint64, 0, len(indices))
	for _, idx := range indices {
		parent := idx >> 1
		if !contains(parents, parent) {
			parents = append(parents, parent)
		}
	}
	return parents
}

// difference returns the members of a that are not members of b, preserving
// the order of a.
func difference(a, b []uint64) []uint64 {
	var diff []uint64
	for _, v := range a {
		if !contains(b, v) {
			diff = append(diff, v)
		}
	}
	return diff
}

func contains(s []uint64, v uint64) bool {
	for _, member := range s {
		if member == v {
			return true
		}
	}
	return false
}
