package mmr

import (
	"bytes"

	"github.com/bolajahmad/solidity-merkle-trees/multiproof"
)

// Ascending order of leaves, nodes and proof hashes is a precondition for
// partitioning and for deterministic proof consumption, so the orderings are
// exposed for callers preparing inputs. The sorts are in place and not
// stable; equal keys land in arbitrary relative order.

// SortLeaves orders leaves ascending by mmr index.
func SortLeaves(leaves []Leaf) {
	quicksort(leaves, func(a, b Leaf) bool { return a.Index < b.Index })
}

// SortNodes orders reconstruction nodes ascending by their layer index.
func SortNodes(nodes []multiproof.Node) {
	quicksort(nodes, func(a, b multiproof.Node) bool { return a.Index < b.Index })
}

// SortHashes orders raw hash values ascending bytewise.
func SortHashes(hashes [][]byte) {
	quicksort(hashes, func(a, b []byte) bool { return bytes.Compare(a, b) < 0 })
}

// quicksort is a Hoare partition quicksort with the middle element as pivot.
// Partitioning is driven from an explicit stack so that adversarially ordered
// input cannot grow the call stack.
func quicksort[E any](s []E, less func(a, b E) bool) {

	if len(s) < 2 {
		return
	}

	type span struct{ lo, hi int }

	stack := []span{{0, len(s) - 1}}

	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sp.lo >= sp.hi {
			continue
		}
		p := hoarePartition(s, sp.lo, sp.hi, less)
		stack = append(stack, span{sp.lo, p}, span{p + 1, sp.hi})
	}
}

func hoarePartition[E any](s []E, lo, hi int, less func(a, b E) bool) int {

	pivot := s[lo+(hi-lo)/2]

	i, j := lo-1, hi+1
	for {
		for {
			i++
			if !less(s[i], pivot) {
				break
			}
		}
		for {
			j--
			if !less(pivot, s[j]) {
				break
			}
		}
		if i >= j {
			return j
		}
		s[i], s[j] = s[j], s[i]
	}
}
