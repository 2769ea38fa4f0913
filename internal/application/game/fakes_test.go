package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/strata/internal/domain/sprite"
)

// mockCanvas counts calls made on a layer's canvas
type mockCanvas struct {
	clears       int
	smoothingOff int
	smoothing    bool
}

func (c *mockCanvas) ClearRect(sprite.Rect)                 { c.clears++ }
func (c *mockCanvas) FillRect(sprite.Rect, color.Color)     {}
func (c *mockCanvas) SetCompositeMode(sprite.CompositeMode) {}
func (c *mockCanvas) DrawFrame(sprite.Frame, sprite.Rect)   {}

func (c *mockCanvas) SetSmoothing(enabled bool) {
	c.smoothing = enabled
	if !enabled {
		c.smoothingOff++
	}
}

// mockLayer is a test double for Layer without a real image
type mockLayer struct {
	w, h    int
	cw, ch  int
	resizes int
	canvas  *mockCanvas
}

func newMockLayer(cw, ch int) *mockLayer {
	return &mockLayer{cw: cw, ch: ch, canvas: &mockCanvas{smoothing: true}}
}

func (l *mockLayer) Width() int             { return l.w }
func (l *mockLayer) Height() int            { return l.h }
func (l *mockLayer) ClientWidth() int       { return l.cw }
func (l *mockLayer) ClientHeight() int      { return l.ch }
func (l *mockLayer) Canvas() sprite.Canvas  { return l.canvas }
func (l *mockLayer) Image() *ebiten.Image   { return nil }
func (l *mockLayer) SetClientSize(w, h int) { l.cw, l.ch = w, h }

func (l *mockLayer) Resize(w, h int) {
	l.w, l.h = w, h
	l.resizes++
}

// manualClock only moves when advanced
type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Unix(1000, 0)}
}

func (c *manualClock) Now() time.Time { return c.t }

func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
