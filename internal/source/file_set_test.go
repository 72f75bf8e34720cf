package source

import "testing"

func TestFileSetGlobalPositionsAreDisjoint(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.ember", []byte("hello"))
	b := fs.AddVirtual("b.ember", []byte("world!!"))

	fa, fb := fs.Get(a), fs.Get(b)
	if fa.end() > fb.Base {
		t.Fatalf("files overlap: a ends at %d, b starts at %d", fa.end(), fb.Base)
	}
}

func TestFileSetFileAt(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.ember", []byte("func main() {}"))
	b := fs.AddVirtual("b.ember", []byte("func other() {}"))

	fa := fs.Get(a)
	f, ok := fs.FileAt(fa.Base + 2)
	if !ok || f.ID != a {
		t.Fatalf("FileAt(a.Base+2) = %v, %v; want file a", f, ok)
	}

	fb := fs.Get(b)
	f, ok = fs.FileAt(fb.Base + 1)
	if !ok || f.ID != b {
		t.Fatalf("FileAt(b.Base+1) = %v, %v; want file b", f, ok)
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.ember", []byte("line1\nline2\nline3"))
	f := fs.Get(id)

	start, _ := fs.Resolve(Span{Lo: f.Base + 6, Hi: f.Base + 11})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("Resolve() start = %+v, want line 2 col 1", start)
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.ember", []byte("one\ntwo\nthree"))
	f := fs.Get(id)
	if got := f.GetLine(2); got != "two" {
		t.Fatalf("GetLine(2) = %q, want %q", got, "two")
	}
	if got := f.GetLine(99); got != "" {
		t.Fatalf("GetLine(99) = %q, want empty", got)
	}
}
