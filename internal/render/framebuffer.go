package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA
}

// NewFrameBuffer allocates the drawing surface. Failing to get a usable
// surface is the one fatal condition in the system.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cannot allocate %dx%d drawing surface: dimensions must be positive", w, h)
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}, nil
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > fb.W {
		w = fb.W - x
	}
	if y+h > fb.H {
		h = fb.H - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		off := ((y+row)*fb.W + x) * 4
		for col := 0; col < w; col++ {
			idx := off + col*4
			fb.Pixels[idx+0] = c.R
			fb.Pixels[idx+1] = c.G
			fb.Pixels[idx+2] = c.B
			fb.Pixels[idx+3] = c.A
		}
	}
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

// FillRoundRect fills a rectangle with quarter-circle corners of radius r.
func (fb *FrameBuffer) FillRoundRect(x, y, w, h, r int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	if r <= 0 {
		fb.FillRect(x, y, w, h, c)
		return
	}
	for i := 0; i < r; i++ {
		dy := float64(r-i) - 0.5
		dx := int(math.Sqrt(float64(r)*float64(r) - dy*dy))
		fb.FillRect(x+r-dx, y+i, w-2*r+2*dx, 1, c)
		fb.FillRect(x+r-dx, y+h-1-i, w-2*r+2*dx, 1, c)
	}
	fb.FillRect(x, y+r, w, h-2*r, c)
}

// FillVerticalGradient fills a rectangle with a linear blend from top to
// bottom.
func (fb *FrameBuffer) FillVerticalGradient(x, y, w, h int, top, bottom color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		t := 0.0
		if h > 1 {
			t = float64(row) / float64(h-1)
		}
		c := color.RGBA{
			R: lerpChannel(top.R, bottom.R, t),
			G: lerpChannel(top.G, bottom.G, t),
			B: lerpChannel(top.B, bottom.B, t),
			A: lerpChannel(top.A, bottom.A, t),
		}
		fb.FillRect(x, y+row, w, 1, c)
	}
}

// BlendGlow blends a soft radial spot centered at (cx, cy). Opacity falls
// off quadratically from c.A at the center to zero at radius.
func (fb *FrameBuffer) BlendGlow(cx, cy, radius float64, c color.RGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}
	minX := int(cx - radius)
	maxX := int(cx + radius + 1)
	minY := int(cy - radius)
	maxY := int(cy + radius + 1)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.W {
		maxX = fb.W
	}
	if maxY > fb.H {
		maxY = fb.H
	}
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			if d >= radius {
				continue
			}
			t := 1 - d/radius
			fb.blendPixel(px, py, c, t*t*float64(c.A)/255)
		}
	}
}

// Snapshot copies the surface into an image for readback (export, clipboard).
func (fb *FrameBuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	copy(img.Pix, fb.Pixels)
	return img
}

func (fb *FrameBuffer) blendPixel(x, y int, c color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	idx := (y*fb.W + x) * 4
	fb.Pixels[idx+0] = mixChannel(fb.Pixels[idx+0], c.R, alpha)
	fb.Pixels[idx+1] = mixChannel(fb.Pixels[idx+1], c.G, alpha)
	fb.Pixels[idx+2] = mixChannel(fb.Pixels[idx+2], c.B, alpha)
	fb.Pixels[idx+3] = 255
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func mixChannel(dst, src uint8, alpha float64) uint8 {
	return uint8(float64(dst)*(1-alpha) + float64(src)*alpha + 0.5)
}
