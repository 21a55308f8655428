package panel

// PointerSample is the last known pointer position and pressure while a
// touch or mouse button is held.
type PointerSample struct {
	X        float64
	Y        float64
	Pressure float64
}

// Tracker records the current pointer sample and the tile under it.
// It owns no drawing; the renderer reads it each frame.
type Tracker struct {
	tiles  []Tile
	sample PointerSample
	held   bool
	active int
}

func NewTracker(tiles []Tile) *Tracker {
	return &Tracker{tiles: tiles, active: -1}
}

// Down stores the sample and recomputes the active tile.
func (tr *Tracker) Down(x, y, pressure float64) {
	tr.sample = PointerSample{X: x, Y: y, Pressure: pressure}
	tr.held = true
	tr.active = tr.HitTest(x, y)
}

// Move refreshes the sample and active tile. A move without a held pointer
// carries no usable point and leaves state unchanged; only Up clears it.
func (tr *Tracker) Move(x, y, pressure float64) {
	if !tr.held {
		return
	}
	tr.sample = PointerSample{X: x, Y: y, Pressure: pressure}
	tr.active = tr.HitTest(x, y)
}

// Up clears the sample and active tile unconditionally.
func (tr *Tracker) Up() {
	tr.sample = PointerSample{}
	tr.held = false
	tr.active = -1
}

// Sample returns the current sample and whether one exists.
func (tr *Tracker) Sample() (PointerSample, bool) {
	return tr.sample, tr.held
}

// ActiveTile returns the index of the tile under the tracked pointer, or -1.
func (tr *Tracker) ActiveTile() int {
	return tr.active
}

// HitTest returns the index of the first tile in creation order whose bounds
// contain (x, y), or -1 if none does. Out-of-canvas points match nothing.
func (tr *Tracker) HitTest(x, y float64) int {
	for i, tile := range tr.tiles {
		if tile.Contains(x, y) {
			return i
		}
	}
	return -1
}
