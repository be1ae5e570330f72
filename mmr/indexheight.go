package mmr

// References:
// * https://github.com/proofchains/python-proofmarshal/blob/master/proofmarshal/mmr.py#L18
// * https://github.com/mimblewimble/grin/blob/0ff6763ee64e5a14e70ddd4642b99789a1648a32/core/src/core/pmmr.rs#L606

// JumpLeftPerfect is used to iteratively discover the left most node at the
// same height as the node identified by pos. It 'jumps left' by the size of
// the largest perfect tree which would precede pos.
//
// So given,
//
//	3            15
//	           /    \
//	          /      \
//	         /        \
//	2       7          14
//	      /   \       /   \
//	1    3     6    10     13      18
//	    / \  /  \   / \   /  \    /  \
//	0  1   2 4   5 8   9 11   12 16   17
//
// JumpLeftPerfect(13) returns 6 because the size of the largest perfect tree
// preceding 13 is 7. The next jump, JumpLeftPerfect(6) returns 3, and the
// 'all ones' node is found. The count of 1's - 1 is the height.
//
// ** Note ** that pos is the *one based* position not the zero based index.
func JumpLeftPerfect(pos uint64) uint64 {
	mostSignificantBit := uint64(1) << (BitLength64(pos) - 1)
	return pos - (mostSignificantBit - 1)
}

// IndexHeight obtains the tree height of an MMR index, taking advantage of the
// binary encoding resulting from the tree construction to do so. Proof
// traversal and peak enumeration both build on this function.
func IndexHeight(i uint64) uint64 {
	// convert from zero based index to 1 based position, else the encoding doesn't work out
	return PosHeight(i + 1)
}

// PosHeight is used when position is a 1 based count
func PosHeight(pos uint64) uint64 {
	for !AllOnes(pos) {
		pos = JumpLeftPerfect(pos)
	}
	return BitLength64(pos) - 1
}
