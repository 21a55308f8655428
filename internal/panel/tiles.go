package panel

import "fmt"

// Canvas and grid geometry. The canvas is a fixed logical size; the host
// window scales into it.
const (
	CanvasSize = 1024

	GridCols   = 7
	GridRows   = 3
	GridLeft   = 64
	GridTop    = 280
	TileGap    = 16
	TileHeight = 110
)

// Tile is one application slot in the grid. Tiles are built once at startup
// and never mutated.
type Tile struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Label string
	Badge string
}

// Contains reports whether (x, y) lies inside the tile. All four edges are
// inclusive; the grid gaps keep tiles from sharing a boundary.
func (t Tile) Contains(x, y float64) bool {
	return x >= t.X && x <= t.X+t.W && y >= t.Y && y <= t.Y+t.H
}

// TileWidth returns the column width that fits GridCols tiles plus gaps
// between the side paddings.
func TileWidth() float64 {
	return float64(CanvasSize-2*GridLeft-(GridCols-1)*TileGap) / GridCols
}

// BuildGrid creates the 21 launcher tiles in row-major order. Every fifth
// tile by 1-based numbering carries a "NEW" badge.
func BuildGrid() []Tile {
	w := TileWidth()
	tiles := make([]Tile, 0, GridCols*GridRows)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			n := row*GridCols + col + 1
			tile := Tile{
				X:     GridLeft + float64(col)*(w+TileGap),
				Y:     GridTop + float64(row)*(TileHeight+TileGap),
				W:     w,
				H:     TileHeight,
				Label: fmt.Sprintf("App %d", n),
			}
			if n%5 == 0 {
				tile.Badge = "NEW"
			}
			tiles = append(tiles, tile)
		}
	}
	return tiles
}
