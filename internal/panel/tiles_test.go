package panel

import (
	"math"
	"testing"
)

func TestGridHas21Tiles(t *testing.T) {
	tiles := BuildGrid()
	if len(tiles) != GridCols*GridRows {
		t.Fatalf("expected %d tiles, got %d", GridCols*GridRows, len(tiles))
	}
}

func TestGridOriginAndSpacing(t *testing.T) {
	tiles := BuildGrid()
	w := TileWidth()

	if want := float64(CanvasSize-2*GridLeft-(GridCols-1)*TileGap) / GridCols; math.Abs(w-want) > 1e-9 {
		t.Fatalf("unexpected tile width: got %v want %v", w, want)
	}
	if tiles[0].X != GridLeft || tiles[0].Y != GridTop {
		t.Fatalf("unexpected first tile origin: (%v, %v)", tiles[0].X, tiles[0].Y)
	}
	if tiles[0].H != TileHeight {
		t.Fatalf("unexpected tile height: %v", tiles[0].H)
	}

	// Last column of row 0.
	if tiles[6].Y != GridTop {
		t.Fatalf("tile 6 should be in row 0, got Y=%v", tiles[6].Y)
	}
	if want := GridLeft + 6*(w+TileGap); math.Abs(tiles[6].X-want) > 1e-9 {
		t.Fatalf("unexpected tile 6 X: got %v want %v", tiles[6].X, want)
	}

	// Last tile overall.
	last := tiles[20]
	if math.Abs(last.X-tiles[6].X) > 1e-9 {
		t.Fatalf("tile 20 should share the last column: got X=%v want %v", last.X, tiles[6].X)
	}
	if want := float64(GridTop + 2*(TileHeight+TileGap)); last.Y != want {
		t.Fatalf("unexpected tile 20 Y: got %v want %v", last.Y, want)
	}
}

func TestTilesContainedInCanvas(t *testing.T) {
	for i, tile := range BuildGrid() {
		if tile.X < 0 || tile.Y < 0 {
			t.Fatalf("tile %d starts outside the canvas: (%v, %v)", i, tile.X, tile.Y)
		}
		if tile.X+tile.W > CanvasSize+1e-9 || tile.Y+tile.H > CanvasSize+1e-9 {
			t.Fatalf("tile %d extends past the canvas: (%v, %v)", i, tile.X+tile.W, tile.Y+tile.H)
		}
	}
}

func TestTilesDoNotOverlap(t *testing.T) {
	tiles := BuildGrid()
	for i := 0; i < len(tiles); i++ {
		for j := i + 1; j < len(tiles); j++ {
			a, b := tiles[i], tiles[j]
			if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
				t.Fatalf("tiles %d and %d overlap", i, j)
			}
		}
	}
}

func TestBadgeOnEveryFifthTile(t *testing.T) {
	tiles := BuildGrid()
	for i, tile := range tiles {
		want := ""
		if (i+1)%5 == 0 {
			want = "NEW"
		}
		if tile.Badge != want {
			t.Fatalf("tile %d badge: got %q want %q", i, tile.Badge, want)
		}
	}
	if tiles[19].Badge != "NEW" {
		t.Fatalf("20th tile should carry the NEW badge")
	}
	if tiles[20].Badge != "" {
		t.Fatalf("21st tile should carry no badge, got %q", tiles[20].Badge)
	}
}
