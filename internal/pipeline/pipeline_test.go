package pipeline_test

import (
	"testing"

	"ember/internal/interp"
	"ember/internal/mangle"
	"ember/internal/pipeline"
	"ember/internal/source"
)

func compileVirtual(t *testing.T, src string) pipeline.Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ember", []byte(src))
	res, err := pipeline.Compile(pipeline.Request{Files: fs, FileIDs: []source.FileID{id}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return res
}

func TestCompileArithmeticProducesMIR(t *testing.T) {
	res := compileVirtual(t, `func main() -> int { return 1 + 2 * 3 }`)
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if res.MIR == nil {
		t.Fatal("expected a MIR context")
	}
	if len(res.MIR.Funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(res.MIR.Funcs))
	}
}

func TestCompileStopsLoweringOnError(t *testing.T) {
	// A call to an undefined name is a resolution error; MIR lowering must
	// never run over a store with unresolved names.
	res := compileVirtual(t, `func main() -> int { return undefined_thing() }`)
	if !res.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if res.MIR != nil {
		t.Fatal("MIR should not be produced when HIR lowering/sema reported an error")
	}
}

func TestRunInterpretsEntryFunction(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ember", []byte(`func main() -> int { return 21 * 2 }`))
	mangled := mangle.Name(mangle.Func, []string{"main"})
	_, v, err := pipeline.Run(pipeline.Request{Files: fs, FileIDs: []source.FileID{id}}, mangled)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.Kind != interp.ValueInteger || v.Int != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
}

func TestRunFailsWhenCompilationHasErrors(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ember", []byte(`func main() -> int { return nope() }`))
	mangled := mangle.Name(mangle.Func, []string{"main"})
	_, _, err := pipeline.Run(pipeline.Request{Files: fs, FileIDs: []source.FileID{id}}, mangled)
	if err == nil {
		t.Fatal("expected an error")
	}
}
