package app

import (
	"strings"
	"testing"
)

func TestUIFaceIsCached(t *testing.T) {
	a := &App{fonts: newFontBank()}
	f1 := a.uiFace(12, false)
	if f1 == nil {
		t.Fatalf("expected a usable face")
	}
	f2 := a.uiFace(12, false)
	if f1 != f2 {
		t.Fatalf("expected the cached face to be reused")
	}
	if bold := a.uiFace(12, true); bold == f1 {
		t.Fatalf("bold face should differ from regular")
	}
}

func TestMeasureString(t *testing.T) {
	a := &App{fonts: newFontBank()}
	face := a.uiFace(12, false)
	if got := a.measureString(face, ""); got != 0 {
		t.Fatalf("empty string should measure zero, got %d", got)
	}
	one := a.measureString(face, "M")
	two := a.measureString(face, "MM")
	if one <= 0 || two <= one {
		t.Fatalf("unexpected widths: %d, %d", one, two)
	}
}

func TestStatusSummaryIncludesCardValues(t *testing.T) {
	a := &App{status: "All systems nominal"}
	got := a.statusSummary()
	for _, want := range []string{"98.2 kW", "37.4°C", "ARMED", "All systems nominal"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary %q missing %q", got, want)
		}
	}
}
