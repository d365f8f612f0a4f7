package treeview

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gumdiff/nodestore"
)

// ErrEmptyTree indicates a Tree has zero nodes. Build never produces one
// (resolving any root yields at least one node); Tree.Validate reports it
// for manually assembled or malformed trees. The matchers do not call
// Validate: they check for empty trees with their own errors.
var ErrEmptyTree = errors.New("treeview: tree has no nodes")

// ResolveError wraps a nodestore.Store lookup failure encountered while
// decompressing a tree, naming the node id that could not be resolved.
// It is surfaced to the caller, never swallowed (spec.md §7).
type ResolveError struct {
	ID  nodestore.ID
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("treeview: resolve %s: %v", e.ID, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }
