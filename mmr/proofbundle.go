package mmr

import (
	"github.com/fxamacker/cbor/v2"
)

// ProofBundle is the wire form for relaying a multi proof between systems. A
// relayer packages the proof values and leaves alongside the mmr size they
// were generated against; the receiver needs nothing else except the
// committed root it already holds.
type ProofBundle struct {
	MMRSize uint64   `cbor:"1,keyasint"`
	Proof   [][]byte `cbor:"2,keyasint,omitempty"`
	Leaves  []Leaf   `cbor:"3,keyasint,omitempty"`
}

// EncodeProofBundle encodes the bundle deterministically so that equal
// bundles always produce equal bytes.
func EncodeProofBundle(bundle *ProofBundle) ([]byte, error) {
	opts := cbor.CTAP2EncOptions()
	em, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(bundle)
}

// DecodeProofBundle decodes a bundle previously produced by
// EncodeProofBundle. The leaves are returned in the order they were encoded;
// callers must apply SortLeaves before verification if the producer did not.
func DecodeProofBundle(data []byte) (*ProofBundle, error) {
	bundle := &ProofBundle{}
	if err := cbor.Unmarshal(data, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}
