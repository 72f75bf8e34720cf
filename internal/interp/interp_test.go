package interp_test

import (
	"bytes"
	"testing"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/interp"
	"ember/internal/lexer"
	"ember/internal/mir"
	"ember/internal/parser"
	"ember/internal/sema"
	"ember/internal/source"
)

func run(t *testing.T, src, entry string, args []interp.Value) interp.Value {
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
	if errs := ctx.Validate(); len(errs) != 0 {
		t.Fatalf("validate: %v", errs)
	}

	in, err := interp.New(ctx)
	if err != nil {
		t.Fatalf("interpreter init: %v", err)
	}
	var mangled string
	for _, f := range ctx.Funcs {
		if len(f.MangledName) >= len(entry) && f.MangledName[len(f.MangledName)-len(entry):] == entry {
			mangled = f.MangledName
			break
		}
	}
	if mangled == "" {
		t.Fatalf("no function mangled with suffix %q", entry)
	}
	v, err := in.RunFunc(mangled, args)
	if err != nil {
		t.Fatalf("running %s: %v", entry, err)
	}
	return v
}

func TestArithmetic(t *testing.T) {
	v := run(t, `func main() -> int { return 1 + 2 * 3 }`, "main", nil)
	if v.Kind != interp.ValueInteger || v.Int != 7 {
		t.Fatalf("expected 7, got %v", v)
	}
}

func TestMaxBothBranches(t *testing.T) {
	// int is unsigned (u64), so this exercises the same if/else shape as the
	// spec's own abs walkthrough without relying on a negative literal.
	src := `func maxOf(x: int, y: int) -> int {
		if gt_int(x, y) {
			return x
		} else {
			return y
		}
	}`
	if v := run(t, src, "maxOf", []interp.Value{interp.IntValue(9), interp.IntValue(3)}); v.Int != 9 {
		t.Fatalf("maxOf(9, 3): expected 9, got %v", v)
	}
	if v := run(t, src, "maxOf", []interp.Value{interp.IntValue(2), interp.IntValue(7)}); v.Int != 7 {
		t.Fatalf("maxOf(2, 7): expected 7, got %v", v)
	}
}

func TestWhileWithLabeledBreak(t *testing.T) {
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
	v := run(t, src, "f", nil)
	if v.Kind != interp.ValueInteger || v.Int != 3 {
		t.Fatalf("expected 3, got %v", v)
	}
}

func TestStructFieldAccess(t *testing.T) {
	src := `struct Point { x: int, y: int }
	func sumPoint(p: Point) -> int { return add(p.x, p.y) }
	func make() -> Point { return Point(2, 5) }`
	pt := run(t, src, "make", nil)
	if pt.Kind != interp.ValueStruct || len(pt.Fields) != 2 {
		t.Fatalf("expected a 2-field struct, got %v", pt)
	}
	sum := run(t, src, "sumPoint", []interp.Value{pt})
	if sum.Int != 7 {
		t.Fatalf("expected 7, got %v", sum)
	}
}

func TestPrintWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := interp.SetOutput(&buf)
	defer interp.SetOutput(prev)

	run(t, `func main() -> int { print("hi"); return 0 }`, "main", nil)
	if buf.String() != "hi\n" {
		t.Fatalf("expected %q, got %q", "hi\n", buf.String())
	}
}

func TestDivisionByZeroFaults(t *testing.T) {
	fs := source.NewFileSet()
	src := `func main() -> int { return div(1, 0) }`
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
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	ctx := mir.Lower(store, reporter)
	in, err := interp.New(ctx)
	if err != nil {
		t.Fatalf("interpreter init: %v", err)
	}
	var mangled string
	for _, f := range ctx.Funcs {
		if len(f.MangledName) >= 4 && f.MangledName[len(f.MangledName)-4:] == "main" {
			mangled = f.MangledName
		}
	}
	if mangled == "" {
		t.Fatal("no function mangled with suffix \"main\"")
	}
	if _, err := in.RunFunc(mangled, nil); err == nil {
		t.Fatal("expected a division-by-zero fault")
	}
}
