// Package invariant holds small precondition helpers. No package of this
// module calls them. A violated invariant here is always a
// programmer error (empty tree, mis-sized store, index out of range) —
// spec.md §7 classifies these as non-recoverable, so Must panics rather
// than returning an error.
package invariant

// Must panics with msg if cond is false. Use only for conditions that
// indicate a caller broke a documented precondition, never for data
// that can legitimately vary at runtime (missing candidates, below
// similarity threshold, etc. are not invariant violations).
func Must(cond bool, msg string) {
	if !cond {
		panic("invariant violated: " + msg)
	}
}
