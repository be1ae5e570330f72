// Package multiproof reconstructs the root of a perfect binary merkle tree
// from a subset of its leaves and a per height layer of supplementary nodes.
//
// Nodes are identified by their index within their own layer, counting from
// zero at the left. A node with an even index is a left child and its sibling
// is immediately to the right; a node with an odd index is a right child and
// its sibling is immediately to the left. Parents are always formed as
//
//	H(left || right)
//
// and the parent of the pair (i, i+1) has index i/2 in the layer above.
//
// The supplementary layers carry exactly the sibling nodes the caller could
// not derive from the leaves. Layers above the last supplied one are paired
// purely from nodes computed so far. This is how callers which know a
// complete, sibling closed, set of descendants hand over reconstruction part
// way up the tree.
package multiproof

import (
	"errors"
	"hash"
)

var ErrSiblingAbsent = errors.New("no sibling available to pair a node")

// Node is a tree node identified by its index within a single layer.
type Node struct {
	Index uint64
	Hash  []byte
}

// CalculateRoot reduces the supplied leaves and per height proof layers to the
// single root of the subtree containing them.
//
// leaves must be non empty and sorted ascending by index. Each proof layer
// must likewise be ascending, and proof[h] supplies the nodes missing from
// layer h. Both conditions hold for proofs produced in node discovery order,
// they are not re-checked here.
func CalculateRoot(hasher hash.Hash, proof [][]Node, leaves []Node) ([]byte, error) {

	if len(leaves) == 0 {
		return nil, errors.New("no leaves to reconstruct from")
	}

	layer := leaves

	for height := 0; len(layer) > 1 || height < len(proof); height++ {

		if height < len(proof) && len(proof[height]) > 0 {
			layer = mergeByIndex(layer, proof[height])
		}

		next := make([]Node, 0, (len(layer)+1)/2)
		for i := 0; i < len(layer); i += 2 {

			node := layer[i]

			// Every node must pair with its right sibling. An odd index here,
			// or a neighbour that is not index+1, means the caller failed to
			// supply a sibling this reconstruction needs.
			if node.Index&1 == 1 || i+1 == len(layer) || layer[i+1].Index != node.Index+1 {
				return nil, ErrSiblingAbsent
			}

			hasher.Reset()
			hasher.Write(node.Hash)
			hasher.Write(layer[i+1].Hash)

			next = append(next, Node{Index: node.Index >> 1, Hash: hasher.Sum(nil)})
		}
		layer = next
	}

	return layer[0].Hash, nil
}

// mergeByIndex combines two ascending node lists into one ascending list.
func mergeByIndex(a, b []Node) []Node {

	merged := make([]Node, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Index < b[j].Index {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}
