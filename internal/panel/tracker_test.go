package panel

import "testing"

func tileCenter(t Tile) (float64, float64) {
	return t.X + t.W/2, t.Y + t.H/2
}

func TestDownInsideTileSelectsIt(t *testing.T) {
	tiles := BuildGrid()
	tr := NewTracker(tiles)

	cx, cy := tileCenter(tiles[3])
	tr.Down(cx, cy, 1.0)

	if got := tr.ActiveTile(); got != 3 {
		t.Fatalf("expected active tile 3, got %d", got)
	}
	sample, held := tr.Sample()
	if !held {
		t.Fatalf("expected a sample after pointer down")
	}
	if sample.X != cx || sample.Y != cy {
		t.Fatalf("unexpected sample position: (%v, %v)", sample.X, sample.Y)
	}
}

func TestMoveOutsideTilesKeepsSampleClearsActive(t *testing.T) {
	tiles := BuildGrid()
	tr := NewTracker(tiles)

	cx, cy := tileCenter(tiles[3])
	tr.Down(cx, cy, 1.0)
	tr.Move(10, 10, 1.0)

	if got := tr.ActiveTile(); got != -1 {
		t.Fatalf("expected no active tile, got %d", got)
	}
	sample, held := tr.Sample()
	if !held {
		t.Fatalf("sample should survive moving off the grid")
	}
	if sample.X != 10 || sample.Y != 10 {
		t.Fatalf("unexpected sample position: (%v, %v)", sample.X, sample.Y)
	}
}

func TestUpAlwaysResetsToIdle(t *testing.T) {
	tiles := BuildGrid()
	tr := NewTracker(tiles)

	cx, cy := tileCenter(tiles[0])
	tr.Down(cx, cy, 1.0)
	tr.Up()

	if _, held := tr.Sample(); held {
		t.Fatalf("expected no sample after pointer up")
	}
	if got := tr.ActiveTile(); got != -1 {
		t.Fatalf("expected no active tile after pointer up, got %d", got)
	}

	// Up while already idle stays idle.
	tr.Up()
	if _, held := tr.Sample(); held {
		t.Fatalf("idle tracker should stay idle on pointer up")
	}
}

func TestMoveWhileIdleIsIgnored(t *testing.T) {
	tiles := BuildGrid()
	tr := NewTracker(tiles)

	cx, cy := tileCenter(tiles[5])
	tr.Move(cx, cy, 1.0)

	if _, held := tr.Sample(); held {
		t.Fatalf("move without a held pointer should not create a sample")
	}
	if got := tr.ActiveTile(); got != -1 {
		t.Fatalf("move without a held pointer should not select a tile, got %d", got)
	}
}

func TestHitTestInclusiveEdges(t *testing.T) {
	tiles := BuildGrid()
	tr := NewTracker(tiles)

	first := tiles[0]
	if got := tr.HitTest(first.X, first.Y); got != 0 {
		t.Fatalf("top-left corner should hit tile 0, got %d", got)
	}
	if got := tr.HitTest(first.X+first.W, first.Y+first.H); got != 0 {
		t.Fatalf("bottom-right corner should hit tile 0, got %d", got)
	}
	// One unit into the gap misses both neighbours.
	if got := tr.HitTest(first.X+first.W+1, first.Y); got != -1 {
		t.Fatalf("gap between columns should hit nothing, got %d", got)
	}
}

func TestHitTestOutOfCanvasMatchesNothing(t *testing.T) {
	tr := NewTracker(BuildGrid())
	for _, p := range [][2]float64{{-50, -50}, {5000, 300}, {300, -1}, {300, 5000}} {
		if got := tr.HitTest(p[0], p[1]); got != -1 {
			t.Fatalf("point (%v, %v) should hit nothing, got %d", p[0], p[1], got)
		}
	}
}

func TestPressureRecorded(t *testing.T) {
	tr := NewTracker(BuildGrid())
	tr.Down(100, 100, 0.4)
	sample, held := tr.Sample()
	if !held || sample.Pressure != 0.4 {
		t.Fatalf("expected pressure 0.4, got %v (held=%v)", sample.Pressure, held)
	}
}

func TestFirstMatchWinsOnOverlap(t *testing.T) {
	tiles := []Tile{
		{X: 0, Y: 0, W: 10, H: 10, Label: "a"},
		{X: 5, Y: 5, W: 10, H: 10, Label: "b"},
	}
	tr := NewTracker(tiles)
	if got := tr.HitTest(7, 7); got != 0 {
		t.Fatalf("expected first tile in creation order, got %d", got)
	}
}
