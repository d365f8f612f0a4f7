// Package corpus provides small, deterministic synthetic-tree fixtures
// shared by the treeview, zhangshasha, bottomup and gumtree test
// suites — the ambient "fixtures" layer this corpus otherwise keeps local
// to one package's _test.go files, pulled out here because four packages
// need the same tree shapes.
package corpus
