// Package bottomup implements the greedy bottom-up matcher: it walks a
// source tree in post-order, finds destination candidates for each
// unmapped internal node by looking at where that node's already-
// mapped descendants landed, ranks candidates by Dice similarity, and
// commits the best pair — optionally refining it with a Zhang-Shasha
// last-chance match when both subtrees are small enough.
package bottomup
