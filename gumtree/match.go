package gumtree

import (
	"github.com/katalvlaran/gumdiff/bottomup"
	"github.com/katalvlaran/gumdiff/labelstore"
	"github.com/katalvlaran/gumdiff/mapping"
	"github.com/katalvlaran/gumdiff/nodestore"
	"github.com/katalvlaran/gumdiff/treeview"
)

// Match decompresses the trees rooted at srcRoot and dstRoot from ns,
// carries seed forward as the starting mapping, and refines it with the
// greedy bottom-up matcher tuned by cfg. seed may be nil, in which case
// a fresh DenseMono is used.
//
// This is the sole exposed entry point (spec.md §6): match(nodeStore,
// labelStore, srcRoot, dstRoot, seedMapping, config) -> finalMapping.
func Match(ns nodestore.Store, ls labelstore.Store, srcRoot, dstRoot nodestore.ID, seed mapping.Mono, cfg bottomup.Config) (mapping.Mono, error) {
	if srcRoot == dstRoot {
		return nil, ErrRootMismatch
	}

	srcTree, err := treeview.Build(ns, srcRoot)
	if err != nil {
		return nil, err
	}
	dstTree, err := treeview.Build(ns, dstRoot)
	if err != nil {
		return nil, err
	}

	if seed == nil {
		seed = mapping.NewDenseMono()
	}

	m, err := bottomup.New(ns, ls, srcTree, dstTree, seed, bottomup.WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	if err := m.Execute(); err != nil {
		return nil, err
	}
	return m.Mapping(), nil
}
