package zhangshasha

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gumdiff/labelstore"
)

// ErrEmptySubtree is returned by Match when either side has zero nodes;
// the DP's boundary conditions assume at least one node per side.
var ErrEmptySubtree = errors.New("zhangshasha: subtree has no nodes")

// LabelResolveError wraps a labelstore.Store lookup failure encountered
// while computing rename cost. Surfaced to the caller, never swallowed
// (spec.md §7's "external lookup miss" taxonomy entry).
type LabelResolveError struct {
	ID  labelstore.ID
	Err error
}

func (e *LabelResolveError) Error() string {
	return fmt.Sprintf("zhangshasha: resolve label %d: %v", uint64(e.ID), e.Err)
}

func (e *LabelResolveError) Unwrap() error { return e.Err }
