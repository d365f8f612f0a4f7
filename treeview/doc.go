// Package treeview provides a post-order, index-oriented decompressed
// view of a compressed syntax tree: the arena representation the matcher
// operates over instead of a pointer graph.
//
// A Tree is built once per (root, side) pair by a single linear traversal
// of nodestore.Store. Indices are post-order ranks in [0, n): the root is
// always n-1, and every internal node's descendants occupy the
// contiguous range [FirstDescendant(v), v]. Two Trees — one per side of a
// diff — use disjoint integer domains that must never be mixed. Both are
// plain ints, so nothing in the type system keeps src and dst indices
// apart; callers keep track of which side an index belongs to.
package treeview
