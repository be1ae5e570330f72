package mmrtesting

import (
	"slices"

	"github.com/bolajahmad/solidity-merkle-trees/mmr"
)

// MultiProof generates the flat proof and the leaf records for the leaves
// with the given ranks (leaf numbers counting from zero, ignoring interior
// nodes).
//
// The layout mirrors the order verification discovers missing nodes: peaks
// left to right, a single root value for any peak committing none of the
// target leaves, and for the others the missing siblings level by level from
// the bottom, ascending index within each level. Leaves come back ascending
// by mmr index with their peak local k indices assigned, ready to hand to
// CalculateRoot or VerifyProof.
//
// Perfectly filled sizes enumerate as sub peaks (see mmr.LeftPeakHeightPos);
// the sub peaks tile the leaf range left to right before the true root
// appears, so targets still land in the right mountain and the true root is
// emitted as an ordinary peak root value.
func (b *Builder) MultiProof(leafRanks []uint64) ([][]byte, []mmr.Leaf) {

	ranks := slices.Clone(leafRanks)
	slices.Sort(ranks)
	ranks = slices.Compact(ranks)

	var proof [][]byte
	var leaves []mmr.Leaf

	firstRank := uint64(0)
	for _, peak := range mmr.Peaks(b.Size()) {

		height := mmr.IndexHeight(peak)
		leafCount := uint64(1) << height

		// peak local k indices of the target leaves this mountain commits
		var local []uint64
		for _, r := range ranks {
			if r >= firstRank && r < firstRank+leafCount {
				local = append(local, r-firstRank)
			}
		}

		switch {
		case len(local) == 0:
			proof = append(proof, b.nodes[peak])

		case height == 0:
			leaves = append(leaves, mmr.Leaf{KIndex: 0, Index: peak, Hash: b.nodes[peak]})

		default:
			layers := b.mountainLayers(firstRank, height)

			for _, k := range local {
				leaves = append(leaves, mmr.Leaf{
					KIndex: k,
					Index:  mmr.MMRIndex(firstRank + k),
					Hash:   layers[0][k],
				})
			}

			current := local
			for level := uint64(0); level < height; level++ {
				if uint64(len(current)) == uint64(1)<<(height-level) {
					break
				}
				siblings := siblingsOf(current)
				for _, k := range notIn(siblings, current) {
					proof = append(proof, layers[level][k])
				}
				current = parentsOf(siblings)
			}
		}

		firstRank += leafCount
	}

	return proof, leaves
}

// mountainLayers recomputes the per level node values for the mountain whose
// left most leaf has the given rank. layers[0] are the leaf hashes; each
// level above halves by pairwise hashing, the same combination the builder
// used when back filling, so the values match the stored interior nodes.
func (b *Builder) mountainLayers(firstRank uint64, height uint64) [][][]byte {

	layers := make([][][]byte, height+1)

	layers[0] = make([][]byte, 1<<height)
	for j := range layers[0] {
		layers[0][j] = b.nodes[mmr.MMRIndex(firstRank+uint64(j))]
	}

	for level := uint64(1); level <= height; level++ {
		below := layers[level-1]
		layers[level] = make([][]byte, len(below)/2)
		for j := range layers[level] {
			b.hasher.Reset()
			b.hasher.Write(below[2*j])
			b.hasher.Write(below[2*j+1])
			layers[level][j] = b.hasher.Sum(nil)
		}
	}
	return layers
}

func siblingsOf(indices []uint64) []uint64 {
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

func parentsOf(indices []uint64) []uint64 {
	var parents []uint64
	for _, idx := range indices {
		parent := idx >> 1
		if len(parents) == 0 || parents[len(parents)-1] != parent {
			parents = append(parents, parent)
		}
	}
	return parents
}

func notIn(candidates, members []uint64) []uint64 {
	var out []uint64
	for _, v := range candidates {
		if !slices.Contains(members, v) {
			out = append(out, v)
		}
	}
	return out
}
