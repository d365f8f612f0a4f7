package treeview

import (
	"iter"
	"sort"

	"github.com/katalvlaran/gumdiff/nodestore"
)

// Tree is a post-order, index-oriented decompressed view of a compressed
// syntax tree. The zero value is not usable; construct with Build or by
// slicing an existing Tree with SlicePo.
//
// A Tree built by Build owns its arrays. A Tree returned by SlicePo
// borrows its base's arrays via an offset instead of copying — the two
// forms share every accessor below so callers never need to know which
// kind they hold.
type Tree struct {
	// Owned arrays, populated only when base == nil (built via Build).
	original []nodestore.ID
	parent   []int // parent[i] = post-order index of i's parent, -1 if i is the root
	lld      []int // lld[i] = post-order index of i's leftmost-leaf descendant

	// keyRoots holds this tree's own key-root indices, ascending —
	// always local to this view, whether owned or sliced.
	keyRoots []int

	// Borrowed-slice state. base == nil means this Tree owns its arrays.
	base   *Tree
	offset int // this view's local index 0 corresponds to base index `offset`
	size   int // number of nodes in this view
}

// Build decompresses the subtree rooted at root into a fresh, owned Tree
// via a single post-order traversal of ns. Returns a *ResolveError if any
// node along the way fails to resolve.
func Build(ns nodestore.Store, root nodestore.ID) (*Tree, error) {
	t := &Tree{}
	if _, _, err := t.visit(ns, root); err != nil {
		return nil, err
	}
	t.computeKeyRoots()
	return t, nil
}

// visit recursively decompresses id and its descendants, appending them
// to t's owned arrays in post-order. It returns id's assigned post-order
// index and its lld. Parent links are patched in by the caller after the
// child's own index is known, since a node's index is only assigned once
// all of its children have already been appended.
func (t *Tree) visit(ns nodestore.Store, id nodestore.ID) (idx, lld int, err error) {
	view, err := ns.Resolve(id)
	if err != nil {
		return 0, 0, &ResolveError{ID: id, Err: err}
	}

	children := view.Children()
	if len(children) == 0 {
		idx = len(t.original)
		t.original = append(t.original, id)
		t.parent = append(t.parent, -1)
		t.lld = append(t.lld, idx)
		return idx, idx, nil
	}

	childIdx := make([]int, 0, len(children))
	firstLld := -1
	for i, c := range children {
		cIdx, cLld, err := t.visit(ns, c)
		if err != nil {
			return 0, 0, err
		}
		childIdx = append(childIdx, cIdx)
		if i == 0 {
			firstLld = cLld
		}
	}

	idx = len(t.original)
	t.original = append(t.original, id)
	t.parent = append(t.parent, -1)
	t.lld = append(t.lld, firstLld)
	for _, ci := range childIdx {
		t.parent[ci] = idx
	}
	return idx, firstLld, nil
}

// computeKeyRoots fills t.keyRoots with the Zhang-Shasha key roots: for
// each distinct lld value, only the node with the largest post-order
// index sharing it survives — that is always either the tree's root or a
// node whose left sibling's subtree is non-empty, since any other node
// sharing an lld value is a strict descendant reached by following the
// leftmost-child spine.
func (t *Tree) computeKeyRoots() {
	n := len(t.original)
	latestForLld := make(map[int]int, n)
	for i := 0; i < n; i++ {
		latestForLld[t.lld[i]] = i
	}
	kr := make([]int, 0, len(latestForLld))
	for _, v := range latestForLld {
		kr = append(kr, v)
	}
	sort.Ints(kr)
	t.keyRoots = kr
}

// Validate reports ErrEmptyTree if the tree has no nodes.
func (t *Tree) Validate() error {
	if t.Len() == 0 {
		return ErrEmptyTree
	}
	return nil
}

// Len returns the number of nodes in this view.
func (t *Tree) Len() int {
	if t.base != nil {
		return t.size
	}
	return len(t.original)
}

// Root returns the post-order index of this view's root, Len()-1.
func (t *Tree) Root() int {
	return t.Len() - 1
}

// Original returns the external node id at post-order index i.
func (t *Tree) Original(i int) nodestore.ID {
	if t.base != nil {
		return t.base.original[t.offset+i]
	}
	return t.original[i]
}

// Parent returns i's parent index and true, or (0, false) if i is this
// view's root.
func (t *Tree) Parent(i int) (int, bool) {
	if i == t.Root() {
		return 0, false
	}
	if t.base != nil {
		return t.base.parent[t.offset+i] - t.offset, true
	}
	p := t.parent[i]
	if p < 0 {
		return 0, false
	}
	return p, true
}

// FirstDescendant returns lld(i), the post-order index of i's leftmost
// leaf descendant. FirstDescendant(i) == i iff i is a leaf.
func (t *Tree) FirstDescendant(i int) int {
	if t.base != nil {
		return t.base.lld[t.offset+i] - t.offset
	}
	return t.lld[i]
}

// IsLeaf reports whether i has no children.
func (t *Tree) IsLeaf(i int) bool {
	return t.FirstDescendant(i) == i
}

// DescendantsRange returns the closed range [lld(i), i] of i's
// descendants, inclusive on both ends.
func (t *Tree) DescendantsRange(i int) (lo, hi int) {
	return t.FirstDescendant(i), i
}

// DescendantsCount returns i - lld(i) + 1, the size of i's subtree.
func (t *Tree) DescendantsCount(i int) int {
	lo, hi := t.DescendantsRange(i)
	return hi - lo + 1
}

// IterDfPost iterates every index in this view in post-order, 0..Len()-1.
func (t *Tree) IterDfPost() iter.Seq[int] {
	n := t.Len()
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// IterKr iterates this view's key-root indices in ascending order.
func (t *Tree) IterKr() iter.Seq[int] {
	kr := t.keyRoots
	return func(yield func(int) bool) {
		for _, v := range kr {
			if !yield(v) {
				return
			}
		}
	}
}

// SlicePo returns a borrowed sub-view exposing v's descendants, re-indexed
// to [0, DescendantsCount(v)-1] preserving post-order. No data is copied:
// the returned Tree reads through to the same base arrays as t (or t's
// own base, if t is itself a slice), just with a different offset.
//
// The slice reproduces the same (original, parent, lld, keyRoots)
// sequence as independently decompressing Original(v) would — see
// tree_test.go's TestSlicePo_EquivalentToIndependentDecompression.
func (t *Tree) SlicePo(v int) *Tree {
	base := t
	baseOffset := 0
	if t.base != nil {
		base = t.base
		baseOffset = t.offset
	}
	lo := t.FirstDescendant(v)
	size := v - lo + 1
	newOffset := baseOffset + lo

	return &Tree{
		base:     base,
		offset:   newOffset,
		size:     size,
		keyRoots: filterKeyRoots(base.keyRoots, newOffset, newOffset+size-1),
	}
}

// filterKeyRoots restricts base's ascending key-root list to the closed
// range [lo, hi] and re-indexes each survivor relative to lo. Any key
// root inside the range belongs to a node fully nested in [lo, hi] (a
// node's lld can only fall inside a contiguous post-order range if its
// entire subtree does), so this reproduces exactly what decomposing the
// subtree independently would compute.
//
// hi is always the slice's own root, which is unconditionally a key root
// of the slice by definition even when it lost its global key-root slot
// to a larger ancestor sharing its lld (the common case for any first
// child) — so it is force-included if the range scan didn't already find
// it, keeping the result ascending since hi-lo is its largest member.
func filterKeyRoots(base []int, lo, hi int) []int {
	out := make([]int, 0, len(base)+1)
	for _, v := range base {
		if v < lo {
			continue
		}
		if v > hi {
			break
		}
		out = append(out, v-lo)
	}
	if len(out) == 0 || out[len(out)-1] != hi-lo {
		out = append(out, hi-lo)
	}
	return out
}
