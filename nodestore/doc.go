// Package nodestore defines the read-only external contract the matcher
// resolves compressed-tree nodes through. It is a collaborator interface
// only: the matcher never constructs or mutates a Store, it is handed one
// by the caller (the parser / persistence layer, out of scope for this
// module) and queries it during tree decompression.
package nodestore
