package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/strata/internal/domain/sprite"
)

func TestDraw_PreparesEveryLayer(t *testing.T) {
	purple := color.RGBA{0x35, 0x2a, 0x40, 0xff}
	s := New(Options{
		Backgrounds: []color.Color{purple},
		Composites:  []sprite.CompositeMode{sprite.CompositeUnset, sprite.CompositeLighter},
	})
	target := newFakeTarget(2, 320, 240)

	s.Draw(target)

	for i, want := range []color.Color{purple, color.Black} {
		c := target.surfaces[i].canvas
		require.Len(t, c.clears, 1)
		assert.Equal(t, sprite.Rect{W: 320, H: 240}, c.clears[0])
		assert.Equal(t, []color.Color{want}, c.fills)
	}
	assert.Equal(t, sprite.CompositeNormal, target.surfaces[0].canvas.mode)
	assert.Equal(t, sprite.CompositeLighter, target.surfaces[1].canvas.mode)
}

func TestDraw_UnregisteredSetIsSkipped(t *testing.T) {
	s := New(Options{})
	frames := withSet(s, "dirt", 1, sprite.Hooks{})
	target := newFakeTarget(1, 100, 100)

	s.AddElement("ghost", 0, 0, 10, 10)
	s.AddElement("dirt", 20, 20, 10, 10)
	s.AddElement("ghost", 40, 40, 10, 10)

	assert.NotPanics(t, func() { s.Draw(target) })
	draws := target.draws(0)
	require.Len(t, draws, 1)
	assert.Same(t, frames[0], draws[0].frame)
	assert.Equal(t, sprite.Rect{X: 20, Y: 20, W: 10, H: 10}, draws[0].rect)
}

func TestDraw_OutOfRangeFrameAndLayerAreSkipped(t *testing.T) {
	s := New(Options{})
	withSet(s, "star", 2, sprite.Hooks{})
	target := newFakeTarget(1, 100, 100)

	s.AddElement("star", 0, 0, 10, 10, WithFrame(2))
	s.AddElement("star", 0, 0, 10, 10, OnLayer(3))

	assert.NotPanics(t, func() { s.Draw(target) })
	assert.Empty(t, target.draws(0))
}

func TestDraw_FixedIgnoresCamera(t *testing.T) {
	s := New(Options{})
	withSet(s, "hud", 1, sprite.Hooks{})
	target := newFakeTarget(1, 200, 100)
	e := s.AddElement("hud", 5, 6, 7, 8, Fixed())

	before, ok := s.Placement(e, target.surfaces[0])
	require.True(t, ok)

	s.SetCamera(300, -40)
	s.SetScale(4)
	after, ok := s.Placement(e, target.surfaces[0])
	require.True(t, ok)

	assert.Equal(t, before, after)
	assert.Equal(t, sprite.Rect{X: 5, Y: 6, W: 7, H: 8}, after)
}

func TestDraw_FixedSizeRelative(t *testing.T) {
	s := New(Options{})
	surf := newFakeSurface(200, 100)
	surf.cw, surf.ch = 640, 480
	e := s.AddElement("bg", 0, 0, 1, 0.5, Fixed(), SizeRelative())

	r, ok := s.Placement(e, surf)
	require.True(t, ok)
	assert.Equal(t, sprite.Rect{X: 0, Y: 0, W: 640, H: 240}, r)
}

func TestDraw_SizeRelativeIgnoredForScrolling(t *testing.T) {
	s := New(Options{Scale: 2})
	surf := newFakeSurface(200, 100)
	e := s.AddElement("bg", 0, 0, 1, 1, SizeRelative())

	r, ok := s.Placement(e, surf)
	require.True(t, ok)
	assert.Equal(t, sprite.Rect{W: 2, H: 2}, r)
}

func TestDraw_ScrollingAffineTransform(t *testing.T) {
	tests := []struct {
		name          string
		camX, camY, k float64
		want          sprite.Rect
	}{
		{"identity", 0, 0, 1, sprite.Rect{X: 40, Y: 30, W: 32, H: 16}},
		{"offset", 10, 5, 1, sprite.Rect{X: 30, Y: 25, W: 32, H: 16}},
		{"scaled", 0, 0, 4, sprite.Rect{X: 160, Y: 120, W: 128, H: 64}},
		{"offset and scaled", 20, 10, 2, sprite.Rect{X: 40, Y: 40, W: 64, H: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{Scale: tt.k, CameraX: tt.camX, CameraY: tt.camY})
			e := s.AddElement("dirt", 40, 30, 32, 16)

			r, ok := s.Placement(e, newFakeSurface(1000, 1000))
			require.True(t, ok)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestDraw_Culling(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		drawn bool
	}{
		{"inside", 10, 10, true},
		{"partially left", -5, 10, true},
		{"partially below", 10, 95, true},
		{"fully left", -10, 10, false},
		{"fully right", 100, 10, false},
		{"fully above", 10, -10, false},
		{"fully below", 10, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{})
			withSet(s, "dirt", 1, sprite.Hooks{})
			target := newFakeTarget(1, 100, 100)
			s.AddElement("dirt", tt.x, tt.y, 10, 10)

			s.Draw(target)
			if tt.drawn {
				assert.Len(t, target.draws(0), 1)
			} else {
				assert.Empty(t, target.draws(0))
			}
		})
	}
}

func TestDraw_CulledElementStillTicks(t *testing.T) {
	s := New(Options{})
	ticks := 0
	withSet(s, "dirt", 1, sprite.Hooks{ElementTick: func(*sprite.Element, uint64) { ticks++ }})
	target := newFakeTarget(1, 100, 100)
	s.AddElement("dirt", 500, 500, 10, 10)

	s.Draw(target)
	s.Tick(1)

	assert.Empty(t, target.draws(0))
	assert.Equal(t, 1, ticks)
}

func TestDraw_HiddenElementsAreNotDrawn(t *testing.T) {
	s := New(Options{})
	withSet(s, "lamp", 1, sprite.Hooks{})
	target := newFakeTarget(1, 100, 100)
	e := s.AddElement("lamp", 0, 0, 10, 10, Hidden())

	s.Draw(target)
	assert.Empty(t, target.draws(0))

	e.Visible = true
	s.Draw(target)
	assert.Len(t, target.draws(0), 1)
}

func TestDraw_BeforeDrawRunsFirst(t *testing.T) {
	s := New(Options{})
	frames := withSet(s, "lamp", 4, sprite.Hooks{
		OnBeforeDraw: func(_ *sprite.SpriteSet, e *sprite.Element) {
			e.X = 50
			e.Frame = 2
		},
	})
	target := newFakeTarget(1, 100, 100)
	s.AddElement("lamp", 0, 0, 10, 10)

	s.Draw(target)

	draws := target.draws(0)
	require.Len(t, draws, 1)
	assert.Same(t, frames[2], draws[0].frame)
	assert.Equal(t, 50.0, draws[0].rect.X)
}

func TestDraw_BeforeDrawRunsForHiddenElements(t *testing.T) {
	s := New(Options{})
	withSet(s, "lamp", 1, sprite.Hooks{
		OnBeforeDraw: func(_ *sprite.SpriteSet, e *sprite.Element) { e.Visible = true },
	})
	target := newFakeTarget(1, 100, 100)
	s.AddElement("lamp", 0, 0, 10, 10, Hidden())

	s.Draw(target)
	assert.Len(t, target.draws(0), 1)
}

func TestDraw_CompositePriority(t *testing.T) {
	layerModes := []sprite.CompositeMode{sprite.CompositeUnset, sprite.CompositeLighter}

	tests := []struct {
		name    string
		layer   int
		setMode sprite.CompositeMode
		elMode  sprite.CompositeMode
		fixed   bool
		want    sprite.CompositeMode
	}{
		{"default normal", 0, "", "", true, sprite.CompositeNormal},
		{"layer default", 1, "", "", true, sprite.CompositeLighter},
		{"set over layer", 1, sprite.CompositeXor, "", true, sprite.CompositeXor},
		{"element over set", 1, sprite.CompositeXor, sprite.CompositeCopy, true, sprite.CompositeCopy},
		{"scrolling uses the same order", 1, sprite.CompositeXor, "", false, sprite.CompositeXor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{Composites: layerModes})
			withSet(s, "x", 1, sprite.Hooks{Composite: tt.setMode})
			target := newFakeTarget(2, 100, 100)

			opts := []ElementOption{OnLayer(tt.layer), WithComposite(tt.elMode)}
			if tt.fixed {
				opts = append(opts, Fixed())
			}
			s.AddElement("x", 0, 0, 10, 10, opts...)

			s.Draw(target)
			draws := target.draws(tt.layer)
			require.Len(t, draws, 1)
			assert.Equal(t, tt.want, draws[0].mode)
		})
	}
}

func TestDraw_CompositeDoesNotLeakBetweenElements(t *testing.T) {
	s := New(Options{})
	withSet(s, "glow", 1, sprite.Hooks{Composite: sprite.CompositeLighter})
	withSet(s, "dirt", 1, sprite.Hooks{})
	target := newFakeTarget(1, 100, 100)
	s.AddElement("glow", 0, 0, 10, 10, Fixed())
	s.AddElement("dirt", 0, 0, 10, 10)

	s.Draw(target)
	draws := target.draws(0)
	require.Len(t, draws, 2)
	assert.Equal(t, sprite.CompositeLighter, draws[0].mode)
	assert.Equal(t, sprite.CompositeNormal, draws[1].mode)
}

func TestDraw_StarOnTwoLayers(t *testing.T) {
	s := New(Options{Scale: 4})
	frames := withSet(s, "star", 2, sprite.Hooks{})
	target := newFakeTarget(2, 320, 240)

	s.AddElement("star", 12, 7, 32, 32, OnLayer(0), WithFrame(0))
	s.AddElement("star", 12, 7, 32, 32, OnLayer(1), WithFrame(1))

	s.Draw(target)

	want := sprite.Rect{X: 48, Y: 28, W: 128, H: 128}
	for layer := 0; layer < 2; layer++ {
		draws := target.draws(layer)
		require.Len(t, draws, 1, "layer %d", layer)
		assert.Same(t, frames[layer], draws[0].frame)
		assert.Equal(t, want, draws[0].rect)
	}
}

func TestDraw_IsolatedBeforeDrawPanic(t *testing.T) {
	s := New(Options{IsolateHooks: true})
	withSet(s, "broken", 1, sprite.Hooks{
		OnBeforeDraw: func(*sprite.SpriteSet, *sprite.Element) { panic("boom") },
	})
	withSet(s, "dirt", 1, sprite.Hooks{})
	target := newFakeTarget(1, 100, 100)
	s.AddElement("broken", 0, 0, 10, 10)
	s.AddElement("dirt", 0, 0, 10, 10)

	assert.NotPanics(t, func() { s.Draw(target) })
	assert.Len(t, target.draws(0), 2)
}
