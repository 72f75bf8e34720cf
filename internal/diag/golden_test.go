package diag

import (
	"testing"

	"ember/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userID := fs.Add("/workspace/testdata/golden/sample.ember", []byte("a\nb\n"), 0)
	internalID := fs.Add("/workspace/internal/helper.ember", []byte("x\n"), 0)
	userFile := fs.Get(userID)
	internalFile := fs.Get(internalID)

	diags := []*Diagnostic{
		{
			Severity: SevError,
			Code:     ENotFound,
			Message:  "first line\nsecond",
			Primary:  source.Span{Lo: userFile.Base, Hi: userFile.Base + 1},
			Notes: []Note{
				{Span: source.Span{Lo: internalFile.Base, Hi: internalFile.Base}, Msg: "skip me"},
				{Span: source.Span{Lo: userFile.Base + 2, Hi: userFile.Base + 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     EAssignMismatch,
			Message:  "another",
			Primary:  source.Span{Lo: userFile.Base + 2, Hi: userFile.Base + 3},
		},
	}

	expected := "error E0101 testdata/golden/sample.ember:1:1 first line second\n" +
		"note E0101 testdata/golden/sample.ember:2:1 note line\n" +
		"warning E0505 testdata/golden/sample.ember:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
