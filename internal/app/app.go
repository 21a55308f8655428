package app

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"controldeck/internal/panel"
	"controldeck/internal/render"
	"controldeck/internal/sound"
	"controldeck/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sqweek/dialog"
	xclipboard "golang.design/x/clipboard"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Ebiten reports no pressure for mouse or touch, so every sample carries
// full intensity.
const pointerPressure = 1.0

type captureKind int

const (
	captureNone captureKind = iota
	captureExport
	captureCopy
)

type statusCard struct {
	title string
	value string
	note  string
	level float64
}

var statusCards = [3]statusCard{
	{title: "POWER", value: "98.2 kW", note: "Load nominal", level: 0.78},
	{title: "COOLING", value: "37.4°C", note: "Loop stable", level: 0.52},
	{title: "SECURITY", value: "ARMED", note: "12 sensors online", level: 1.0},
}

type fontKey struct {
	size int
	bold bool
}

type fontBank struct {
	regular *opentype.Font
	bold    *opentype.Font
	cache   map[fontKey]font.Face
}

func newFontBank() fontBank {
	bank := fontBank{cache: map[fontKey]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return bank
	}
	bol, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return bank
	}
	bank.regular = reg
	bank.bold = bol
	return bank
}

type App struct {
	theme   ui.Theme
	tiles   []panel.Tile
	tracker *panel.Tracker

	frameBuffer *render.FrameBuffer
	canvas      *ebiten.Image

	fonts  fontBank
	sounds *sound.Manager

	status    string
	frameTick uint64

	touchIDs       []ebiten.TouchID
	touchHeld      bool
	clipboardReady bool

	capture  captureKind
	captured *image.RGBA
}

func New() (*App, error) {
	fb, err := render.NewFrameBuffer(panel.CanvasSize, panel.CanvasSize)
	if err != nil {
		return nil, fmt.Errorf("init drawing surface: %w", err)
	}
	tiles := panel.BuildGrid()
	a := &App{
		theme:       ui.DefaultTheme(),
		tiles:       tiles,
		tracker:     panel.NewTracker(tiles),
		frameBuffer: fb,
		fonts:       newFontBank(),
		sounds:      sound.NewManager(),
		status:      "All systems nominal",
	}
	if err := xclipboard.Init(); err == nil {
		a.clipboardReady = true
	}
	if err := a.sounds.Initialize(); err != nil {
		a.status = "Audio unavailable: " + err.Error()
	}
	return a, nil
}

func (a *App) Run() error {
	ebiten.SetWindowTitle("Aurora Control Deck")
	ebiten.SetWindowSize(panel.CanvasSize, panel.CanvasSize)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	a.frameTick++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.finishCapture()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) && a.capture == captureNone {
		a.capture = captureExport
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if shift {
			a.copyStatusText()
		} else if a.capture == captureNone {
			a.capture = captureCopy
		}
	}

	a.pollPointer()
	return nil
}

// pollPointer feeds the tracker from the host input. Touch wins over the
// mouse while any finger is down; releasing one finger of several keeps the
// tracker on the first remaining touch, and only the all-up poll clears it.
func (a *App) pollPointer() {
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	if len(a.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(a.touchIDs[0])
		if a.touchHeld {
			a.tracker.Move(float64(tx), float64(ty), pointerPressure)
		} else {
			a.pointerDown(float64(tx), float64(ty))
		}
		a.touchHeld = true
		return
	}
	if a.touchHeld {
		a.touchHeld = false
		a.tracker.Up()
		return
	}

	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.pointerDown(float64(mx), float64(my))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		a.tracker.Move(float64(mx), float64(my), pointerPressure)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.tracker.Up()
	}
}

func (a *App) pointerDown(x, y float64) {
	a.tracker.Down(x, y, pointerPressure)
	if idx := a.tracker.ActiveTile(); idx >= 0 {
		a.sounds.PlayTap()
		a.status = "Selected " + a.tiles[idx].Label
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.canvas == nil {
		a.canvas = ebiten.NewImage(a.frameBuffer.W, a.frameBuffer.H)
	}

	a.renderFrame()
	a.canvas.WritePixels(a.frameBuffer.Pixels)
	screen.DrawImage(a.canvas, nil)

	a.drawHeaderLabels(screen)
	a.drawCardLabels(screen)
	a.drawTileLabels(screen)
	a.drawKeyLabels(screen)
	a.drawStatusLine(screen)

	if a.capture != captureNone && a.captured == nil {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		buf := make([]byte, 4*w*h)
		screen.ReadPixels(buf)
		a.captured = &image.RGBA{Pix: buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	}
}

// renderFrame redraws every layer from scratch in fixed order. Rendering is
// a total function of the tile set and the tracker state.
func (a *App) renderFrame() {
	ui.DrawBackdrop(a.frameBuffer, a.theme)
	a.drawStatusCards()
	a.drawTileGrid()
	a.drawKeyboard()
	a.drawPointerGlow()
}

func (a *App) drawStatusCards() {
	for i := range statusCards {
		x, y, w, h := ui.CardRect(i)
		a.frameBuffer.FillRoundRect(x, y, w, h, 14, a.theme.CardBorder)
		a.frameBuffer.FillRoundRect(x+1, y+1, w-2, h-2, 13, a.theme.Card)
		a.frameBuffer.FillRect(x+1, y+14, 4, h-28, a.theme.Accent)

		// Gauge along the bottom edge.
		gx, gy, gw := x+20, y+h-22, w-40
		a.frameBuffer.FillRoundRect(gx, gy, gw, 6, 3, a.theme.GridLine)
		fill := int(float64(gw) * statusCards[i].level)
		if fill > 0 {
			a.frameBuffer.FillRoundRect(gx, gy, fill, 6, 3, a.theme.Accent)
		}
	}
}

func (a *App) drawTileGrid() {
	active := a.tracker.ActiveTile()
	for i, t := range a.tiles {
		x := int(t.X + 0.5)
		y := int(t.Y + 0.5)
		w := int(t.W + 0.5)
		h := int(t.H + 0.5)

		fill := a.theme.Tile
		border := a.theme.TileBorder
		if i == active {
			fill = a.theme.TileActive
			border = a.theme.TileActiveBorder
			a.frameBuffer.BlendGlow(t.X+t.W/2, t.Y+t.H/2, t.W*0.85, a.theme.TileGlow)
		}

		a.frameBuffer.FillRoundRect(x, y, w, h, 12, border)
		a.frameBuffer.FillRoundRect(x+1, y+1, w-2, h-2, 11, fill)

		icon := 34
		a.frameBuffer.FillRoundRect(x+(w-icon)/2, y+16, icon, icon, 8, a.theme.TileIcon)

		if t.Badge != "" {
			bx, by, bw, bh := badgeBounds(x, y, w)
			a.frameBuffer.FillRoundRect(bx, by, bw, bh, bh/2, a.theme.Badge)
		}
	}
}

func badgeBounds(tileX, tileY, tileW int) (x, y, w, h int) {
	w, h = 38, 18
	return tileX + tileW - w - 8, tileY + 8, w, h
}

func (a *App) drawKeyboard() {
	for row := range ui.KeyboardRows {
		for col := range ui.KeyboardRows[row] {
			kx, ky, kw, kh := ui.KeyRect(row, col)
			x := int(kx + 0.5)
			y := int(ky + 0.5)
			w := int(kw + 0.5)
			a.frameBuffer.FillRoundRect(x, y, w, int(kh), 10, a.theme.KeyBorder)
			a.frameBuffer.FillRoundRect(x+1, y+1, w-2, int(kh)-2, 9, a.theme.Key)
		}
	}
}

func (a *App) drawPointerGlow() {
	sample, held := a.tracker.Sample()
	if !held {
		return
	}
	radius := 48 + 36*sample.Pressure
	a.frameBuffer.BlendGlow(sample.X, sample.Y, radius, a.theme.PointerGlow)
	a.frameBuffer.BlendGlow(sample.X, sample.Y, 14, a.theme.PointerCore)
}

func (a *App) drawHeaderLabels(screen *ebiten.Image) {
	titleFace := a.uiFace(24, true)
	subFace := a.uiFace(12, false)
	text.Draw(screen, "AURORA CONTROL DECK", titleFace, ui.EdgePad, 50, a.theme.TextPrimary)
	text.Draw(screen, "Facility overview", subFace, ui.EdgePad, 76, a.theme.TextDim)

	cx, cy, cw, ch := ui.CapsuleRect()
	capFace := a.uiFace(12, true)
	a.drawCenteredText(screen, "ONLINE", capFace, cx+18, cy, cw-18, ch, a.theme.TextAccent)
}

func (a *App) drawCardLabels(screen *ebiten.Image) {
	titleFace := a.uiFace(11, true)
	valueFace := a.uiFace(26, true)
	noteFace := a.uiFace(10, false)
	for i, card := range statusCards {
		x, y, _, _ := ui.CardRect(i)
		text.Draw(screen, card.title, titleFace, x+20, y+28, a.theme.TextDim)
		text.Draw(screen, card.value, valueFace, x+20, y+64, a.theme.TextPrimary)
		text.Draw(screen, card.note, noteFace, x+20, y+86, a.theme.TextDim)
	}
}

func (a *App) drawTileLabels(screen *ebiten.Image) {
	labelFace := a.uiFace(11, false)
	activeFace := a.uiFace(11, true)
	badgeFace := a.uiFace(9, true)
	active := a.tracker.ActiveTile()
	for i, t := range a.tiles {
		x := int(t.X + 0.5)
		y := int(t.Y + 0.5)
		w := int(t.W + 0.5)
		h := int(t.H + 0.5)

		face := labelFace
		col := a.theme.TextDim
		if i == active {
			face = activeFace
			col = a.theme.TextPrimary
		}
		a.drawCenteredText(screen, t.Label, face, x, y+h-34, w, 24, col)

		if t.Badge != "" {
			bx, by, bw, bh := badgeBounds(x, y, w)
			a.drawCenteredText(screen, t.Badge, badgeFace, bx, by, bw, bh, a.theme.BadgeText)
		}
	}
}

func (a *App) drawKeyLabels(screen *ebiten.Image) {
	keyFace := a.uiFace(14, false)
	for row, labels := range ui.KeyboardRows {
		for col, r := range labels {
			kx, ky, kw, kh := ui.KeyRect(row, col)
			a.drawCenteredText(screen, string(r), keyFace, int(kx+0.5), int(ky+0.5), int(kw+0.5), int(kh), a.theme.TextDim)
		}
	}
}

func (a *App) drawStatusLine(screen *ebiten.Image) {
	statusFace := a.uiFace(10, false)
	selection := "No selection"
	if idx := a.tracker.ActiveTile(); idx >= 0 {
		selection = a.tiles[idx].Label
	}
	left := fmt.Sprintf("[ %s ]", selection)
	right := fmt.Sprintf("[ %s ]", a.status)
	text.Draw(screen, left, statusFace, ui.EdgePad, ui.StatusBaseline, a.theme.TextDim)
	text.Draw(screen, right, statusFace, panel.CanvasSize/2, ui.StatusBaseline, a.theme.TextDim)
}

func (a *App) drawCenteredText(screen *ebiten.Image, s string, face font.Face, x, y, w, h int, col color.RGBA) {
	tw := a.measureString(face, s)
	ascent := face.Metrics().Ascent.Round()
	descent := face.Metrics().Descent.Round()
	baseline := y + (h+ascent+descent)/2 - descent
	text.Draw(screen, s, face, x+(w-tw)/2, baseline, col)
}

// measureString returns approximate pixel width of a string for given face.
func (a *App) measureString(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	adv := font.MeasureString(face, s)
	px := (int(adv) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}

// uiFace returns a cached face at the requested size.
func (a *App) uiFace(size int, bold bool) font.Face {
	key := fontKey{size: size, bold: bold}
	if f, ok := a.fonts.cache[key]; ok {
		return f
	}
	base := a.fonts.regular
	if bold {
		base = a.fonts.bold
	}
	if base == nil {
		return basicfont.Face7x13
	}
	opts := &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull}
	face, err := opentype.NewFace(base, opts)
	if err != nil {
		return basicfont.Face7x13
	}
	a.fonts.cache[key] = face
	return face
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// Fixed logical canvas; Ebiten maps host display coordinates into it.
	return panel.CanvasSize, panel.CanvasSize
}

// finishCapture completes a snapshot requested on a previous frame.
func (a *App) finishCapture() {
	if a.captured == nil {
		return
	}
	img := a.captured
	kind := a.capture
	a.captured = nil
	a.capture = captureNone

	switch kind {
	case captureExport:
		if err := a.exportSnapshot(img); err != nil {
			a.status = "Export failed: " + err.Error()
		}
	case captureCopy:
		if err := a.copySnapshot(img); err != nil {
			a.status = "Copy failed: " + err.Error()
		}
	}
}

func (a *App) exportSnapshot(img image.Image) error {
	path, err := dialog.File().Filter("PNG images", "png").Save()
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New("no file selected")
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	a.status = "Saved " + filepath.Base(path)
	return nil
}

func (a *App) copySnapshot(img image.Image) error {
	if !a.clipboardReady {
		return errors.New("image clipboard unavailable")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	xclipboard.Write(xclipboard.FmtImage, buf.Bytes())
	a.status = "Snapshot copied to clipboard"
	return nil
}

func (a *App) copyStatusText() {
	if err := clipboard.WriteAll(a.statusSummary()); err != nil {
		a.status = "Copy failed: " + err.Error()
		return
	}
	a.status = "Status copied to clipboard"
}

func (a *App) statusSummary() string {
	return fmt.Sprintf("Power %s | Cooling %s | Security %s | %s",
		statusCards[0].value, statusCards[1].value, statusCards[2].value, a.status)
}
