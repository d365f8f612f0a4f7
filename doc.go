// Package gumdiff implements a GumTree-style structural tree-diff
// matcher: given a pair of decompressed source-code-shaped trees, it
// produces a mapping from source-side to destination-side nodes that a
// caller can turn into an edit script (insert/delete/update/move).
//
// The module is split along the pipeline the matcher runs:
//
//	nodestore/   — read-only external contract the matcher resolves
//	               compressed-tree nodes through
//	labelstore/  — read-only external contract for node label bytes
//	treeview/    — decompresses a nodestore.Store subtree into a
//	               post-order arena (the Tree the matcher walks)
//	mapping/     — injective (Mono) and multi-valued (Multi) node
//	               mapping stores shared by every matching phase
//	zhangshasha/ — optimal tree-edit-distance matcher used for small
//	               subtree pairs (the "last-chance match")
//	bottomup/    — greedy bottom-up matcher, ranking destination
//	               candidates by Dice similarity and refining each
//	               commit with zhangshasha
//	gumtree/     — the exposed entry point: Match(nodeStore, labelStore,
//	               srcRoot, dstRoot, seedMapping, config) -> mapping
//
// A caller owns the node and label stores (typically backed by a parser
// or a persisted AST) and supplies a seed mapping, usually produced by
// an upstream exact-subtree pass; gumdiff never constructs either store
// itself, it only queries them during decompression.
package gumdiff
