// Package scene implements the layered scene: the sprite set registry, the
// ordered element list, the camera, and the draw and tick passes.
//
// A Scene never owns its drawing surfaces. Draw is handed a Target (normally
// the game manager) that resolves layer indices to surfaces and canvases.
package scene

import (
	"image/color"
	"log"
	"time"

	"github.com/younwookim/strata/internal/domain/sprite"
)

// Surface is one drawing destination. Width/Height are the backing pixel
// size; ClientWidth/ClientHeight are the displayed size.
type Surface interface {
	Width() int
	Height() int
	ClientWidth() int
	ClientHeight() int
	// Resize sets the backing pixel size.
	Resize(width, height int)
	Canvas() sprite.Canvas
}

// Target resolves layer indices during Draw.
type Target interface {
	LayerCount() int
	Context(layer int) sprite.Canvas
	Surface(layer int) Surface
}

// Options configures a new Scene.
type Options struct {
	// Backgrounds is the fill colour per layer. Missing entries are black.
	Backgrounds []color.Color
	// Composites is the default composite mode per layer.
	Composites []sprite.CompositeMode
	// Scale is the uniform camera scale. Zero means 1.
	Scale   float64
	CameraX float64
	CameraY float64

	// IsolateHooks recovers and logs panics raised by content hooks instead
	// of propagating them.
	IsolateHooks bool
	// SlowDraw logs any single sprite draw taking longer. Zero disables it.
	SlowDraw time.Duration
}

// Scene holds sprite sets, elements and camera state.
type Scene struct {
	sets     map[string]*sprite.SpriteSet
	setOrder []string
	elements []*sprite.Element

	camera   Camera
	pan      *pan
	tickHook func(s *Scene, tick uint64)

	backgrounds []color.Color
	composites  []sprite.CompositeMode

	isolateHooks bool
	slowDraw     time.Duration
	loadLimit    int
}

// New creates an empty scene.
func New(opts Options) *Scene {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	return &Scene{
		sets:         make(map[string]*sprite.SpriteSet),
		camera:       Camera{X: opts.CameraX, Y: opts.CameraY, Scale: scale},
		backgrounds:  append([]color.Color(nil), opts.Backgrounds...),
		composites:   append([]sprite.CompositeMode(nil), opts.Composites...),
		isolateHooks: opts.IsolateHooks,
		slowDraw:     opts.SlowDraw,
	}
}

// SpriteSet looks up a registered set by name.
func (s *Scene) SpriteSet(name string) (*sprite.SpriteSet, bool) {
	set, ok := s.sets[name]
	return set, ok
}

// SpriteSetNames returns registered names in registration order.
func (s *Scene) SpriteSetNames() []string {
	return append([]string(nil), s.setOrder...)
}

// Elements returns the element list in paint order. The elements are the
// live ones; the slice itself is a copy.
func (s *Scene) Elements() []*sprite.Element {
	return append([]*sprite.Element(nil), s.elements...)
}

// Background returns the fill colour of a layer.
func (s *Scene) Background(layer int) color.Color {
	if layer >= 0 && layer < len(s.backgrounds) && s.backgrounds[layer] != nil {
		return s.backgrounds[layer]
	}
	return color.Black
}

// Composite returns the default composite mode of a layer, or
// CompositeUnset.
func (s *Scene) Composite(layer int) sprite.CompositeMode {
	if layer >= 0 && layer < len(s.composites) {
		return s.composites[layer]
	}
	return sprite.CompositeUnset
}

// SetLoadLimit bounds the number of concurrent frame loads issued by
// RegisterAssets. n <= 0 removes the bound.
func (s *Scene) SetLoadLimit(n int) {
	s.loadLimit = n
}

// guard runs fn, recovering a panic when hook isolation is on.
func (s *Scene) guard(hook string, fn func()) {
	if !s.isolateHooks {
		fn()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scene: %s hook panicked: %v", hook, r)
		}
	}()
	fn()
}
