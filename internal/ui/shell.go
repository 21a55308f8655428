package ui

import (
	"controldeck/internal/render"
)

// DrawBackdrop paints the two bottom layers of every frame: the background
// gradient with its alignment grid, then the header bar with accent line and
// status capsule. Text goes on top later, directly on the screen.
func DrawBackdrop(fb *render.FrameBuffer, theme Theme) {
	fb.FillVerticalGradient(0, 0, fb.W, fb.H, theme.BackdropTop, theme.BackdropBottom)

	for x := GridStep; x < fb.W; x += GridStep {
		fb.FillRect(x, 0, 1, fb.H, theme.GridLine)
	}
	for y := GridStep; y < fb.H; y += GridStep {
		fb.FillRect(0, y, fb.W, 1, theme.GridLine)
	}

	fb.FillRect(0, 0, fb.W, HeaderH, theme.HeaderBar)
	fb.FillRect(0, HeaderH-3, fb.W, 3, theme.Accent)

	cx, cy, cw, ch := CapsuleRect()
	fb.FillRoundRect(cx, cy, cw, ch, ch/2, theme.CapsuleBorder)
	fb.FillRoundRect(cx+1, cy+1, cw-2, ch-2, (ch-2)/2, theme.Capsule)
	// Status lamp inside the capsule.
	fb.BlendGlow(float64(cx+22), float64(cy+ch/2), 9, theme.TextAccent)
}
