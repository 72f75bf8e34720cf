// Package pipeline wires the out-of-scope collaborators (lexer, parser) and
// the core stages (§2: link -> resolve-defs -> lower-defs -> lower-code ->
// typecheck -> lower -> interpret) into the single ordered run the CLI and
// the test harness both need, the Go stand-in for the teacher's
// internal/buildpipeline.Compile.
package pipeline

import (
	"fmt"

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

// Request names the inputs to one compilation run: a FileSet already
// carrying every source file to compile (the CLI loads these, possibly
// concurrently via errgroup; tests add a single virtual file) plus a
// diagnostic sink and a cap on how many diagnostics to accumulate before the
// Bag starts dropping them (§7: "emits all diagnostics it can before
// halting").
type Request struct {
	Files          *source.FileSet
	FileIDs        []source.FileID
	MaxDiagnostics int
}

// Result carries every artifact a caller might want after a run: the Bag of
// diagnostics, the AST builder backing every Item/Expr/Type id referenced by
// HIR (kept alive for the lifetime of the result since HIR entities don't
// copy AST data, they reference it), the HIR store, and -- only if lowering
// reached it -- the MIR context.
type Result struct {
	Bag     *diag.Bag
	Builder *ast.Builder
	Store   *hir.Store
	MIR     *mir.Context
}

// HasErrors reports whether any Level::Error diagnostic was emitted at any
// stage, the condition the CLI's exit code and the driver's stage-boundary
// halt (§5 "Cancellation") both key off.
func (r Result) HasErrors() bool { return r.Bag != nil && r.Bag.HasErrors() }

// Compile runs every stage in order over the files named by req, halting
// lowering (but not parsing) as soon as the Bag has recorded an error,
// mirroring the driver's one-shot "diagnostics triggered" flag (§5): a
// syntax error in one file still lets every other file parse and report its
// own errors, but nothing proceeds to sema/MIR once any file failed to
// parse cleanly enough to lower.
func Compile(req Request) (Result, error) {
	if req.Files == nil {
		return Result{}, fmt.Errorf("pipeline: missing FileSet")
	}
	maxDiag := req.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 100
	}
	bag := diag.NewBag(maxDiag)
	reporter := diag.BagReporter{Bag: bag}

	interner := source.NewInterner()
	b := ast.NewBuilder(ast.Hints{}, interner)

	astFiles := make([]ast.File, 0, len(req.FileIDs))
	for _, fid := range req.FileIDs {
		f := req.Files.Get(fid)
		toks := lexer.New(f, reporter).Tokenize()
		astFiles = append(astFiles, parser.New(fid, toks, b, reporter).ParseFile())
	}

	result := Result{Bag: bag, Builder: b}
	if bag.HasErrors() {
		return result, nil
	}

	store := hir.Lower(astFiles, b, reporter)
	result.Store = store
	sema.Check(store, reporter)
	if bag.HasErrors() {
		return result, nil
	}

	ctx := mir.Lower(store, reporter)
	result.MIR = ctx
	if bag.HasErrors() {
		return result, nil
	}
	if errs := ctx.Validate(); len(errs) != 0 {
		return result, fmt.Errorf("pipeline: internal error: %w", errs[0])
	}
	return result, nil
}

// Run compiles req and, if it produced a valid MIR context, interprets the
// mangled entry function with no arguments -- the shape `emberc run` needs
// (§6.1 lists only --print-hir as a named flag; running the lowered program
// is this spec's supplement to give the CLI an actual end-to-end act, since
// a front-end with no way to execute its own output would be an unusual
// thing to ship per-§1's explicit inclusion of "a basic-block interpreter").
func Run(req Request, entryMangled string) (Result, interp.Value, error) {
	res, err := Compile(req)
	if err != nil {
		return res, interp.Value{}, err
	}
	if res.HasErrors() || res.MIR == nil {
		return res, interp.Value{}, fmt.Errorf("pipeline: compilation failed")
	}
	in, err := interp.New(res.MIR)
	if err != nil {
		return res, interp.Value{}, err
	}
	v, err := in.RunFunc(entryMangled, nil)
	return res, v, err
}
