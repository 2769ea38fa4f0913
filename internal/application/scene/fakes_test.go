package scene

import (
	"image/color"

	"github.com/younwookim/strata/internal/domain/sprite"
)

type fakeFrame struct {
	id string
}

func (f *fakeFrame) Ready() bool { return f != nil }

type drawCall struct {
	frame *fakeFrame
	rect  sprite.Rect
	mode  sprite.CompositeMode
}

// fakeCanvas records everything painted on it
type fakeCanvas struct {
	mode     sprite.CompositeMode
	clears   []sprite.Rect
	fills    []color.Color
	draws    []drawCall
	smoothed bool
}

func (c *fakeCanvas) ClearRect(r sprite.Rect)                 { c.clears = append(c.clears, r) }
func (c *fakeCanvas) FillRect(_ sprite.Rect, col color.Color) { c.fills = append(c.fills, col) }
func (c *fakeCanvas) SetCompositeMode(m sprite.CompositeMode) { c.mode = m }
func (c *fakeCanvas) SetSmoothing(enabled bool)               { c.smoothed = enabled }

func (c *fakeCanvas) DrawFrame(f sprite.Frame, r sprite.Rect) {
	c.draws = append(c.draws, drawCall{frame: f.(*fakeFrame), rect: r, mode: c.mode})
}

type fakeSurface struct {
	w, h   int
	cw, ch int
	canvas *fakeCanvas
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, cw: w, ch: h, canvas: &fakeCanvas{}}
}

func (s *fakeSurface) Width() int            { return s.w }
func (s *fakeSurface) Height() int           { return s.h }
func (s *fakeSurface) ClientWidth() int      { return s.cw }
func (s *fakeSurface) ClientHeight() int     { return s.ch }
func (s *fakeSurface) Resize(w, h int)       { s.w, s.h = w, h }
func (s *fakeSurface) Canvas() sprite.Canvas { return s.canvas }

type fakeTarget struct {
	surfaces []*fakeSurface
}

func newFakeTarget(n, w, h int) *fakeTarget {
	t := &fakeTarget{}
	for i := 0; i < n; i++ {
		t.surfaces = append(t.surfaces, newFakeSurface(w, h))
	}
	return t
}

func (t *fakeTarget) LayerCount() int                 { return len(t.surfaces) }
func (t *fakeTarget) Context(layer int) sprite.Canvas { return t.surfaces[layer].canvas }
func (t *fakeTarget) Surface(layer int) Surface       { return t.surfaces[layer] }

func (t *fakeTarget) draws(layer int) []drawCall {
	return t.surfaces[layer].canvas.draws
}

// withSet registers a set directly, bypassing the loader
func withSet(s *Scene, name string, frames int, hooks sprite.Hooks) []*fakeFrame {
	ff := make([]*fakeFrame, frames)
	fs := make([]sprite.Frame, frames)
	for i := range ff {
		ff[i] = &fakeFrame{id: name}
		fs[i] = ff[i]
	}
	s.setOrder = append(s.setOrder, name)
	s.sets[name] = sprite.NewSpriteSet(name, fs, hooks)
	return ff
}
