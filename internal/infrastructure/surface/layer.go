// Package surface implements drawing surfaces on top of ebiten images.
package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/strata/internal/domain/sprite"
)

// Source is a frame that can hand out its ebiten image.
type Source interface {
	sprite.Frame
	Image() *ebiten.Image
}

// Layer is an offscreen ebiten image used as one stacked surface.
//
// The backing size (Width/Height) only changes through Resize; the client
// size is whatever the window reports.
type Layer struct {
	img     *ebiten.Image
	w, h    int
	clientW int
	clientH int
	canvas  *Canvas
}

// NewLayer creates a layer whose backing and client sizes are width x height.
func NewLayer(width, height int) *Layer {
	l := &Layer{clientW: width, clientH: height}
	l.canvas = &Canvas{layer: l, blend: ebiten.BlendSourceOver, filter: ebiten.FilterNearest}
	l.Resize(width, height)
	return l
}

func (l *Layer) Width() int        { return l.w }
func (l *Layer) Height() int       { return l.h }
func (l *Layer) ClientWidth() int  { return l.clientW }
func (l *Layer) ClientHeight() int { return l.clientH }

// SetClientSize records the displayed size.
func (l *Layer) SetClientSize(width, height int) {
	l.clientW = width
	l.clientH = height
}

// Resize reallocates the backing image. The content is discarded.
func (l *Layer) Resize(width, height int) {
	if l.img != nil && width == l.w && height == l.h {
		return
	}
	if l.img != nil {
		l.img.Deallocate()
	}
	l.w, l.h = width, height
	// ebiten images cannot be empty
	l.img = ebiten.NewImage(max(width, 1), max(height, 1))
}

// Image returns the backing image.
func (l *Layer) Image() *ebiten.Image {
	return l.img
}

// Canvas returns the layer's 2D context.
func (l *Layer) Canvas() sprite.Canvas {
	return l.canvas
}

// Canvas paints on a Layer. The composite mode and filter are sticky and
// apply to every following DrawFrame.
type Canvas struct {
	layer  *Layer
	blend  ebiten.Blend
	filter ebiten.Filter
}

// region returns the part of the backing image covered by r, or nil.
func (c *Canvas) region(r sprite.Rect) *ebiten.Image {
	img := c.layer.img
	rect := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	).Intersect(img.Bounds())
	if rect.Empty() {
		return nil
	}
	if rect == img.Bounds() {
		return img
	}
	return img.SubImage(rect).(*ebiten.Image)
}

func (c *Canvas) ClearRect(r sprite.Rect) {
	if img := c.region(r); img != nil {
		img.Clear()
	}
}

// FillRect replaces the pixels of r with col regardless of composite mode.
func (c *Canvas) FillRect(r sprite.Rect, col color.Color) {
	if img := c.region(r); img != nil {
		img.Fill(col)
	}
}

func (c *Canvas) SetCompositeMode(mode sprite.CompositeMode) {
	c.blend = BlendFor(mode)
}

func (c *Canvas) SetSmoothing(enabled bool) {
	if enabled {
		c.filter = ebiten.FilterLinear
	} else {
		c.filter = ebiten.FilterNearest
	}
}

// DrawFrame scales the whole frame into r. Frames that are not a Source or
// have no image are ignored.
func (c *Canvas) DrawFrame(f sprite.Frame, r sprite.Rect) {
	src, ok := f.(Source)
	if !ok {
		return
	}
	img := src.Image()
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Blend = c.blend
	op.Filter = c.filter
	c.layer.img.DrawImage(img, op)
}
