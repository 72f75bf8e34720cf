package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{Lo: 10, Hi: 20}
	b := Span{Lo: 5, Hi: 15}
	got := a.Cover(b)
	want := Span{Lo: 5, Hi: 20}
	if got != want {
		t.Fatalf("Cover() = %+v, want %+v", got, want)
	}
}

func TestSpanEmpty(t *testing.T) {
	if !(Span{Lo: 3, Hi: 3}).Empty() {
		t.Fatal("expected zero-length span to be empty")
	}
	if (Span{Lo: 3, Hi: 4}).Empty() {
		t.Fatal("expected non-zero span to be non-empty")
	}
}

func TestSpanZero(t *testing.T) {
	s := Span{Lo: 10, Hi: 20}
	if got := s.ZeroToStart(); got != (Span{Lo: 10, Hi: 10}) {
		t.Fatalf("ZeroToStart() = %+v", got)
	}
	if got := s.ZeroToEnd(); got != (Span{Lo: 20, Hi: 20}) {
		t.Fatalf("ZeroToEnd() = %+v", got)
	}
}
