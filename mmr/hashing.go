package mmr

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// NewKeccak256 returns the hasher used by the solidity side of this scheme.
// Every function in this package takes a hash.Hash so any fixed width hash can
// be substituted, but roots compared against on chain values must use this
// one.
func NewKeccak256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}
