// Package labelstore defines the read-only external contract the
// Zhang-Shasha matcher resolves node labels through, used to compute
// rename cost (identical label bytes => 0, otherwise => 1).
package labelstore
