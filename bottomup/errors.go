package bottomup

import "errors"

var (
	// ErrEmptySource is returned by New when the source tree has no
	// nodes — the post-order loop has nothing to iterate and the
	// unconditional root link has no root to link.
	ErrEmptySource = errors.New("bottomup: source tree has no nodes")

	// ErrNotPostOrder guards against a malformed treeview.Tree whose
	// root index is not len-1. treeview.Tree.Root() always returns
	// Len()-1 by construction, so this only fires against a Tree built
	// outside that contract.
	ErrNotPostOrder = errors.New("bottomup: tree is not in post-order form")
)
