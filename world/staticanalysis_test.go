package world

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// packagesToScan lists every module package whose source must never
// seed its own randomness; rng is the sole exception (see its package
// doc comment) and is deliberately excluded.
var packagesToScan = []string{
	"behavior", "catalog", "components", "config", "ecosystem", "events",
	"genome", "poker", "pokerstrategy", "spatial", "spawners", "systems",
	"tankerr", "world",
}

// TestNoPackageSeedsItsOwnRand walks every non-rng package's
// non-test source looking for a call expression that invokes
// rand.New, rand.Seed, or any top-level math/rand convenience
// function, and fails if it finds one. Every other package's
// production code must receive random state as an explicit
// *rand.Rand parameter; tests are exempt since seeding a local
// deterministic stream for a table-driven test is not simulation
// state.
func TestNoPackageSeedsItsOwnRand(t *testing.T) {
	root, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolving module root: %v", err)
	}

	for _, pkg := range packagesToScan {
		dir := filepath.Join(root, pkg)
		fset := token.NewFileSet()
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatalf("globbing %s: %v", dir, err)
		}
		for _, path := range files {
			if strings.HasSuffix(path, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fset, path, nil, 0)
			if err != nil {
				t.Fatalf("parsing %s: %v", path, err)
			}
			ast.Inspect(f, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				pkgIdent, ok := sel.X.(*ast.Ident)
				if !ok || pkgIdent.Name != "rand" {
					return true
				}
				t.Errorf("%s: call to rand.%s outside package rng; pass a *rand.Rand explicitly instead", fset.Position(call.Pos()), sel.Sel.Name)
				return true
			})
		}
	}
}
