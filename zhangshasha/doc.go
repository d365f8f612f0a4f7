// Package zhangshasha computes an optimal node-to-node mapping between
// two small decompressed trees via classic Zhang-Shasha tree-edit-
// distance dynamic programming: unit insert/delete cost, a rename cost
// derived from an external label store, and an outer loop driven by key
// roots to avoid recomputing shared forest distances.
//
// The matcher is invoked by the bottomup package's last-chance match on
// subtree pairs bounded by a size threshold; it is never applied to
// whole trees of unbounded size, so the DP's O(n^2 m^2)-in-the-worst-
// case cost stays bounded by the caller.
package zhangshasha
