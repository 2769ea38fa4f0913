package scene

import (
	"log"
	"time"

	"github.com/younwookim/strata/internal/domain/sprite"
)

// Draw renders the scene onto every layer of target.
//
// Each layer is cleared and filled with its background first. Elements are
// then painted in list order; later elements paint over earlier ones on the
// same layer. Elements with an unregistered set or a layer the target does
// not have are skipped.
func (s *Scene) Draw(target Target) {
	layers := target.LayerCount()
	for i := 0; i < layers; i++ {
		s.prepareLayer(target.Context(i), target.Surface(i), i)
	}

	for _, e := range s.elements {
		set, ok := s.sets[e.Name]
		if !ok || e.Layer < 0 || e.Layer >= layers {
			continue
		}
		s.drawElement(target, set, e)
	}
}

func (s *Scene) prepareLayer(c sprite.Canvas, surf Surface, layer int) {
	full := sprite.Rect{W: float64(surf.Width()), H: float64(surf.Height())}
	c.SetCompositeMode(sprite.CompositeNormal)
	c.ClearRect(full)
	c.FillRect(full, s.Background(layer))
	if mode := s.Composite(layer); mode != sprite.CompositeUnset {
		c.SetCompositeMode(mode)
	}
}

func (s *Scene) drawElement(target Target, set *sprite.SpriteSet, e *sprite.Element) {
	if before := set.Hooks().OnBeforeDraw; before != nil {
		s.guard("before-draw "+set.Name(), func() { before(set, e) })
		// the hook may have moved the element to another layer
		if e.Layer < 0 || e.Layer >= target.LayerCount() {
			return
		}
	}
	if !e.Visible {
		return
	}

	surf := target.Surface(e.Layer)
	r, ok := s.Placement(e, surf)
	if !ok {
		return
	}

	c := target.Context(e.Layer)
	c.SetCompositeMode(s.compositeFor(set, e))

	if s.slowDraw <= 0 {
		set.Draw(c, r, e.Frame)
		return
	}
	start := time.Now()
	set.Draw(c, r, e.Frame)
	if d := time.Since(start); d > s.slowDraw {
		log.Printf("scene: slow draw of %q frame %d: %v (%.0f,%.0f %.0fx%.0f)",
			set.Name(), e.Frame, d, r.X, r.Y, r.W, r.H)
	}
}

// Placement computes the on-surface rectangle of e. It reports false when a
// scrolling element falls entirely outside the surface.
func (s *Scene) Placement(e *sprite.Element, surf Surface) (sprite.Rect, bool) {
	if e.Fixed {
		w, h := e.Width, e.Height
		if e.SizeRelative {
			w *= float64(surf.ClientWidth())
			h *= float64(surf.ClientHeight())
		}
		return sprite.Rect{X: e.X, Y: e.Y, W: w, H: h}, true
	}

	cam := s.camera
	r := sprite.Rect{
		X: (e.X - cam.X) * cam.Scale,
		Y: (e.Y - cam.Y) * cam.Scale,
		W: e.Width * cam.Scale,
		H: e.Height * cam.Scale,
	}
	return r, r.Intersects(float64(surf.Width()), float64(surf.Height()))
}

func (s *Scene) compositeFor(set *sprite.SpriteSet, e *sprite.Element) sprite.CompositeMode {
	if e.Composite != sprite.CompositeUnset {
		return e.Composite
	}
	if mode := set.Hooks().Composite; mode != sprite.CompositeUnset {
		return mode
	}
	if mode := s.Composite(e.Layer); mode != sprite.CompositeUnset {
		return mode
	}
	return sprite.CompositeNormal
}
