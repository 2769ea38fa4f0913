// Package sprite holds the drawable building blocks of a scene: named sprite
// sets of ordered frames and the placed elements that reference them.
package sprite

import "image/color"

// CompositeMode names how source pixels combine with a surface.
// Values follow canvas globalCompositeOperation names.
type CompositeMode string

const (
	CompositeUnset           CompositeMode = ""
	CompositeNormal          CompositeMode = "normal"
	CompositeSourceOver      CompositeMode = "source-over"
	CompositeLighter         CompositeMode = "lighter"
	CompositeCopy            CompositeMode = "copy"
	CompositeXor             CompositeMode = "xor"
	CompositeSourceIn        CompositeMode = "source-in"
	CompositeSourceOut       CompositeMode = "source-out"
	CompositeSourceAtop      CompositeMode = "source-atop"
	CompositeDestinationOver CompositeMode = "destination-over"
	CompositeDestinationIn   CompositeMode = "destination-in"
	CompositeDestinationOut  CompositeMode = "destination-out"
	CompositeDestinationAtop CompositeMode = "destination-atop"
	CompositeClear           CompositeMode = "clear"
)

// Rect is a destination rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r overlaps the area [0,0,w,h].
// Touching edges do not count as overlap.
func (r Rect) Intersects(w, h float64) bool {
	return r.X < w && r.Y < h && r.X+r.W > 0 && r.Y+r.H > 0
}

// Frame is one image of a sprite set. A frame that is still loading (or
// failed) reports false from Ready and is never drawn.
type Frame interface {
	Ready() bool
}

// Canvas is the 2D paintable context of one drawing surface.
type Canvas interface {
	ClearRect(r Rect)
	FillRect(r Rect, c color.Color)
	SetCompositeMode(mode CompositeMode)
	// DrawFrame blits the whole frame into r.
	DrawFrame(f Frame, r Rect)
	SetSmoothing(enabled bool)
}
