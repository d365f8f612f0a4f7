// Package gumtree is the exposed entry point of the structural tree
// matcher: it decompresses a source and destination tree from a shared
// node store, carries over a caller-supplied seed mapping (e.g. from an
// upstream exact-subtree pass), and refines it with the greedy
// bottom-up matcher.
package gumtree
