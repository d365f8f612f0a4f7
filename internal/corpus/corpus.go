package corpus

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gumdiff/labelstore"
	"github.com/katalvlaran/gumdiff/nodestore"
)

// ErrNodeNotFound is returned by Store.Resolve for an id absent from the
// fixture, simulating an external lookup miss (spec.md §7).
var ErrNodeNotFound = errors.New("corpus: node not found")

// Node is a synthetic syntax-tree node used to build fixture trees. Build
// Node trees with Leaf and Branch, then hand the root to Build to obtain
// a ready-to-use nodestore.Store/labelstore.Store pair.
type Node struct {
	ID      nodestore.ID
	Type    string
	Label   string
	kids    []*Node
	hash    uint64
	labelID labelstore.ID
}

// Leaf returns a childless Node of the given syntactic type and label.
func Leaf(typ, label string) *Node {
	return &Node{Type: typ, Label: label}
}

// Branch returns a Node of the given syntactic type with the given
// children, in order.
func Branch(typ string, children ...*Node) *Node {
	return &Node{Type: typ, kids: children}
}

// HasChildren reports whether n has at least one child.
func (n *Node) HasChildren() bool { return len(n.kids) > 0 }

// Children returns n's children's assigned ids, in order. Only valid
// after the owning Tree has been built.
func (n *Node) Children() []nodestore.ID {
	ids := make([]nodestore.ID, len(n.kids))
	for i, c := range n.kids {
		ids[i] = c.ID
	}
	return ids
}

// typeName returns n's syntactic type; view.Type exposes it to satisfy
// nodestore.NodeView.
func (n *Node) typeName() string { return n.Type }

// Hash returns a structural hash: a leaf hashes its (type, label); a
// branch folds in each child's hash. Deterministic across runs.
func (n *Node) Hash() uint64 { return n.hash }

// Tree indexes a Node graph into the nodestore/labelstore contracts the
// matcher consumes.
type Tree struct {
	Root   *Node
	nodes  map[nodestore.ID]*Node
	labels map[labelstore.ID][]byte
	bylbl  map[string]labelstore.ID
}

// Build assigns ids and labels to every node reachable from root (post-
// order, so ids grow the same way a real matcher's post-order indices
// would) and returns a Tree ready to hand to treeview.Build.
func Build(root *Node) *Tree {
	t := newTree()
	t.assign(root)
	t.Root = root
	return t
}

// BuildPair assigns ids and labels to every node reachable from srcRoot
// and dstRoot into one shared Tree, so both sides resolve through the
// same nodestore.Store/labelstore.Store pair without colliding ids —
// the shape spec.md §6's single-nodeStore Match signature assumes.
func BuildPair(srcRoot, dstRoot *Node) (t *Tree, srcID, dstID nodestore.ID) {
	t = newTree()
	t.assign(srcRoot)
	t.assign(dstRoot)
	t.Root = srcRoot
	return t, srcRoot.ID, dstRoot.ID
}

func newTree() *Tree {
	return &Tree{
		nodes:  make(map[nodestore.ID]*Node),
		labels: make(map[labelstore.ID][]byte),
		bylbl:  make(map[string]labelstore.ID),
	}
}

// assign walks root's subtree post-order, appending to t's existing id
// space — safe to call more than once on the same Tree to pack several
// independent roots into one shared store.
func (t *Tree) assign(root *Node) {
	next := nodestore.ID(len(t.nodes))
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.kids {
			walk(c)
		}
		n.ID = next
		next++
		n.hash = fnvHash(n)
		t.nodes[n.ID] = n
		n.labelID = t.internLabel(n)
	}
	walk(root)
}

func fnvHash(n *Node) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, b := range []byte(n.Type + "\x00" + n.Label) {
		h ^= uint64(b)
		h *= prime64
	}
	for _, c := range n.kids {
		h ^= c.hash
		h *= prime64
	}
	return h
}

// internLabel returns the labelstore.ID for n's label text, assigning a
// fresh one the first time a given label string is seen.
func (t *Tree) internLabel(n *Node) labelstore.ID {
	if id, ok := t.bylbl[n.Label]; ok {
		return id
	}
	id := labelstore.ID(len(t.bylbl))
	t.bylbl[n.Label] = id
	t.labels[id] = []byte(n.Label)
	return id
}

// LabelOf returns the labelstore.ID carrying n's label text.
func (t *Tree) LabelOf(n *Node) labelstore.ID {
	return t.bylbl[n.Label]
}

// Store returns a nodestore.Store resolving every node in this fixture.
func (t *Tree) Store() nodestore.Store { return (*nodeStore)(t) }

// Labels returns a labelstore.Store resolving every label in this fixture.
func (t *Tree) Labels() labelstore.Store { return (*labelStore)(t) }

type nodeStore Tree

func (s *nodeStore) Resolve(id nodestore.ID) (nodestore.NodeView, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return view{n}, nil
}

// view adapts *Node to nodestore.NodeView without exposing Node's builder
// surface (kids, Label) on the interface.
type view struct{ n *Node }

func (v view) Type() string             { return v.n.typeName() }
func (v view) HasChildren() bool        { return v.n.HasChildren() }
func (v view) Children() []nodestore.ID { return v.n.Children() }
func (v view) Hash() uint64             { return v.n.Hash() }
func (v view) Label() labelstore.ID     { return v.n.labelID }

type labelStore Tree

func (s *labelStore) Resolve(id labelstore.ID) ([]byte, error) {
	b, ok := s.labels[id]
	if !ok {
		return nil, fmt.Errorf("corpus: label not found: %d", id)
	}
	return b, nil
}
