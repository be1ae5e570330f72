// Package mmr verifies multi proofs of inclusion against the bagged root of a
// Merkle Mountain Range.
//
// An MMR is a left to right series of perfect binary trees. Leaves and
// interior nodes share a single zero based numbering in which the post order
// traversal of the range is identical to the order nodes were appended. This
// means that, independent of the size of the range, we can navigate from any
// index to its height, its siblings and the peaks using only binary
// arithmetic; none of the tree ever needs to be materialized here. See
// IndexHeight for where that arithmetic bottoms out.
//
// A multi proof for a set of leaves is a flat list of hashes. Which node each
// value stands for is never encoded; it is implied entirely by a fixed
// traversal: peaks left to right, then for each peak the missing siblings
// level by level from the bottom, ascending index within a level. Peaks
// committing none of the proven leaves contribute their root as a single
// value. Reconstruction of an individual peak from its known leaves and the
// recovered siblings is delegated to the multiproof package, and the peak
// roots are finally bagged pairwise from the right to form the root that
// callers commit to.
//
// Everything in this package is a pure function of its arguments. Inputs are
// trusted to satisfy the documented orderings; the cost of checking them
// would be paid on every call, and a proof assembled out of order produces a
// mismatched root in exactly the way a forged one does.
package mmr
