package quadtree

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/quadtile/quadtile/core/listlit"
)

// Fingerprint computes the BLAKE3 hash of the tree's canonical literal
// encoding and returns it as a hex string. Structurally identical trees
// share a fingerprint, so it serves as a round-trip identity check.
func Fingerprint(n *Node) string {
	sum := blake3.Sum256([]byte(listlit.Encode(n.Value())))
	return hex.EncodeToString(sum[:])
}
