package mir_test

import (
	"testing"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/lexer"
	"ember/internal/mir"
	"ember/internal/parser"
	"ember/internal/sema"
	"ember/internal/source"
)

// lowerSource runs the full front-end (lex, parse, hir lower, typecheck,
// mir lower) over src and fails the test if any error-level diagnostic was
// produced, returning the resulting MIR Context for assertions.
func lowerSource(t *testing.T, src string) (*mir.Context, *hir.Store) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ember", []byte(src))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}

	toks := lexer.New(file, reporter).Tokenize()

	interner := source.NewInterner()
	b := ast.NewBuilder(ast.Hints{}, interner)
	astFile := parser.New(fileID, toks, b, reporter).ParseFile()

	store := hir.Lower([]ast.File{astFile}, b, reporter)
	sema.Check(store, reporter)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics lowering %q: %v", src, bag.Items())
	}

	ctx := mir.Lower(store, reporter)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics in mir lowering %q: %v", src, bag.Items())
	}
	return ctx, store
}

func mustFindFunc(t *testing.T, ctx *mir.Context, name string) mir.Function {
	t.Helper()
	for _, f := range ctx.Funcs {
		if hasSuffix(f.MangledName, name) {
			return f
		}
	}
	t.Fatalf("no function mangled with suffix %q among %d funcs", name, len(ctx.Funcs))
	return mir.Function{}
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func TestLower_Arithmetic(t *testing.T) {
	ctx, _ := lowerSource(t, `func main() -> int { return 1 + 2 * 3 }`)
	if errs := ctx.Validate(); len(errs) != 0 {
		t.Fatalf("validate: %v", errs)
	}
	fn := mustFindFunc(t, ctx, "main")
	if len(fn.Blocks) == 0 {
		t.Fatal("expected at least one block")
	}
	entry := ctx.Block(fn.Blocks[0])
	if entry.Term.Kind != mir.TermReturn {
		t.Fatalf("expected entry block to return, got %v", entry.Term.Kind)
	}
	if entry.Term.Value.Kind != mir.ImmCall {
		t.Fatalf("expected return value to be a builtin call chain, got %v", entry.Term.Value.Kind)
	}
}

func TestLower_IfElseArmsGetOwnBlocks(t *testing.T) {
	src := `func abs(x: int) -> int {
		if lt_int(x, 0) {
			return negate(x)
		} else {
			return x
		}
	}`
	ctx, _ := lowerSource(t, src)
	if errs := ctx.Validate(); len(errs) != 0 {
		t.Fatalf("validate: %v", errs)
	}
	fn := mustFindFunc(t, ctx, "abs")
	// entry ends in a branch_if to the then and else blocks, which each
	// return directly, so neither gets the branch to the trailing after
	// block; Validate already confirms every block terminates exactly once.
	if len(fn.Blocks) < 3 {
		t.Fatalf("expected at least 3 blocks (entry, then, else), got %d", len(fn.Blocks))
	}
}

func TestLower_WhileWithLabeledBreak(t *testing.T) {
	src := `func f() -> int {
		var n: int = 0
		outer: while true {
			n = add(n, 1)
			if eq_int(n, 3) {
				break outer
			}
		}
		return n
	}`
	ctx, _ := lowerSource(t, src)
	if errs := ctx.Validate(); len(errs) != 0 {
		t.Fatalf("validate: %v", errs)
	}
	fn := mustFindFunc(t, ctx, "f")
	var sawBranchIf, sawBranch bool
	for _, bid := range fn.Blocks {
		b := ctx.Block(bid)
		switch b.Term.Kind {
		case mir.TermBranchIf:
			sawBranchIf = true
		case mir.TermBranch:
			sawBranch = true
		}
	}
	if !sawBranchIf || !sawBranch {
		t.Fatalf("expected both a loop condition branch and an unconditional branch, got branchIf=%v branch=%v", sawBranchIf, sawBranch)
	}
}

func TestLower_StructInit(t *testing.T) {
	src := `struct Point { x: int, y: int }
	func origin() -> Point { return Point(0, 0) }`
	ctx, _ := lowerSource(t, src)
	if errs := ctx.Validate(); len(errs) != 0 {
		t.Fatalf("validate: %v", errs)
	}
	if len(ctx.Structs) != 1 {
		t.Fatalf("expected one struct shell, got %d", len(ctx.Structs))
	}
	if len(ctx.Structs[0].FieldTypes) != 2 {
		t.Fatalf("expected 2 field types, got %d", len(ctx.Structs[0].FieldTypes))
	}
	fn := mustFindFunc(t, ctx, "origin")
	entry := ctx.Block(fn.Blocks[0])
	if entry.Term.Kind != mir.TermReturn || entry.Term.Value.Kind != mir.ImmStructInit {
		t.Fatalf("expected return of a struct-init immediate, got %v / %v", entry.Term.Kind, entry.Term.Value.Kind)
	}
}

func TestLower_MissingArgsIsReported(t *testing.T) {
	src := `func add2(a: int, b: int) -> int { return add(a, b) }
	func bad() -> int { return add2(1) }`
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ember", []byte(src))
	file := fs.Get(fileID)
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.New(file, reporter).Tokenize()
	interner := source.NewInterner()
	b := ast.NewBuilder(ast.Hints{}, interner)
	astFile := parser.New(fileID, toks, b, reporter).ParseFile()
	store := hir.Lower([]ast.File{astFile}, b, reporter)
	sema.Check(store, reporter)
	if !bag.HasErrors() {
		t.Fatal("expected E0508 missing-argument diagnostic")
	}
}
