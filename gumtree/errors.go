package gumtree

import "errors"

// ErrRootMismatch is returned when srcRoot and dstRoot name the same
// node id — never a valid diff input, since the caller would otherwise
// silently receive a trivial identity mapping.
var ErrRootMismatch = errors.New("gumtree: srcRoot and dstRoot are identical")
