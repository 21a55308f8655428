package ui

import "controldeck/internal/panel"

// Fixed-canvas layout. Everything is positioned in the 1024x1024 logical
// space; the host window scales into it.
const (
	EdgePad  = 64
	GridStep = 64

	HeaderH  = 96
	CapsuleW = 128
	CapsuleH = 36

	CardTop = 128
	CardH   = 124
	CardGap = 16

	KeyboardTop = 700
	KeyH        = 72
	KeyGap      = 12
	KeyRowGap   = 14

	StatusBaseline = 1002
)

// KeyboardRows holds the hardcoded key labels, top row first.
var KeyboardRows = [...]string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// CardRect returns the bounds of status card i (0..2). The three cards share
// the content width between the side paddings.
func CardRect(i int) (x, y, w, h int) {
	w = (panel.CanvasSize - 2*EdgePad - 2*CardGap) / 3
	x = EdgePad + i*(w+CardGap)
	return x, CardTop, w, CardH
}

// CapsuleRect returns the bounds of the header status capsule.
func CapsuleRect() (x, y, w, h int) {
	return panel.CanvasSize - EdgePad - CapsuleW, (HeaderH - CapsuleH) / 2, CapsuleW, CapsuleH
}

// KeyRect returns the bounds of key col in keyboard row. Keys stretch so
// each row fills the available width exactly.
func KeyRect(row, col int) (x, y, w, h float64) {
	n := len(KeyboardRows[row])
	kw := (float64(panel.CanvasSize) - 2*EdgePad - float64(n-1)*KeyGap) / float64(n)
	x = EdgePad + float64(col)*(kw+KeyGap)
	y = float64(KeyboardTop + row*(KeyH+KeyRowGap))
	return x, y, kw, KeyH
}
