package mmr

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// debug utilities

func proofStringer(proof [][]byte, sep string) string {
	var sproof []string

	for _, it := range proof {
		sproof = append(sproof, hex.EncodeToString(it))
	}
	return strings.Join(sproof, sep)
}

func leavesStringer(leaves []Leaf, sep string) string {

	sleaves := make([]string, 0, len(leaves))

	for _, l := range leaves {
		sleaves = append(sleaves, fmt.Sprintf("{%d %d %s}", l.KIndex, l.Index, hex.EncodeToString(l.Hash)))
	}
	return strings.Join(sleaves, sep)
}
