package nodestore

import (
	"fmt"

	"github.com/katalvlaran/gumdiff/labelstore"
)

// ID addresses a node in an external compressed node store. It is opaque
// to the matcher beyond equality and cheap copying — the core never
// interprets it, it only threads it through Resolve calls and stores it
// as Tree.Original.
type ID uint64

// String renders ID for diagnostics and error messages.
func (id ID) String() string {
	return fmt.Sprintf("node#%d", uint64(id))
}

// NodeView is the per-node surface the matcher needs: its syntactic type
// (for same-type candidate filtering and Zhang-Shasha rename cost),
// whether it has children (leaf test), its ordered children (for
// decompression), and a structural hash (useful to upstream exact-subtree
// seeding, unused by the core itself beyond pass-through).
type NodeView interface {
	// Type returns the node's syntactic/grammar type, e.g. "MethodDecl".
	Type() string

	// HasChildren reports whether this node has at least one child.
	HasChildren() bool

	// Children returns this node's children in source order.
	Children() []ID

	// Hash returns a structural hash of the subtree rooted at this node.
	Hash() uint64

	// Label returns the id of this node's label in the external label
	// store, used by the Zhang-Shasha matcher to derive rename cost.
	// Spec.md §6 does not name this accessor explicitly but requires
	// rename cost be "derived from the external label store" — this is
	// the missing link between a resolved node and its label bytes.
	Label() labelstore.ID
}

// Store resolves node identifiers to their views. Implementations must be
// safe for concurrent read-only use across independent matcher
// invocations; the matcher itself never mutates a Store.
type Store interface {
	Resolve(id ID) (NodeView, error)
}
