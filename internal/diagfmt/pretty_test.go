package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
)

func TestPrettyUnderlinesPrimarySpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.ember", []byte("func main() -> int { return nope }\n"))
	f := fs.Get(id)

	bag := diag.NewBag(8)
	bag.Add(&diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ENotFound,
		Message:  "cannot find `nope` in this scope",
		Primary:  source.Span{Lo: f.Base + 28, Hi: f.Base + 32},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, Context: 1, PathMode: PathModeBasename})

	out := buf.String()
	if !strings.Contains(out, "main.ember:1:29: ERROR E0101: cannot find `nope` in this scope") {
		t.Fatalf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing underline caret, got:\n%s", out)
	}
}
