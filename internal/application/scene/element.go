package scene

import "github.com/younwookim/strata/internal/domain/sprite"

type elementConfig struct {
	index int
	apply []func(e *sprite.Element)
}

// ElementOption customizes AddElement.
type ElementOption func(*elementConfig)

func setter(fn func(e *sprite.Element)) ElementOption {
	return func(c *elementConfig) { c.apply = append(c.apply, fn) }
}

// OnLayer places the element on the given surface layer.
func OnLayer(layer int) ElementOption {
	return setter(func(e *sprite.Element) { e.Layer = layer })
}

// WithFrame sets the initial frame.
func WithFrame(frame int) ElementOption {
	return setter(func(e *sprite.Element) { e.Frame = frame })
}

// Fixed pins the element to surface coordinates.
func Fixed() ElementOption {
	return setter(func(e *sprite.Element) { e.Fixed = true })
}

// SizeRelative makes width and height fractions of the surface client size.
func SizeRelative() ElementOption {
	return setter(func(e *sprite.Element) { e.SizeRelative = true })
}

// Hidden adds the element invisible.
func Hidden() ElementOption {
	return setter(func(e *sprite.Element) { e.Visible = false })
}

// WithComposite sets the element's own composite mode.
func WithComposite(mode sprite.CompositeMode) ElementOption {
	return setter(func(e *sprite.Element) { e.Composite = mode })
}

// WithTick sets the element's own tick hook.
func WithTick(fn func(e *sprite.Element, tick uint64)) ElementOption {
	return setter(func(e *sprite.Element) { e.OnTick = fn })
}

// AtIndex inserts the element at position i in paint order. Values outside
// [0, len) append.
func AtIndex(i int) ElementOption {
	return func(c *elementConfig) { c.index = i }
}

// AddElement places a new element referencing the sprite set name and
// returns it. The returned element is the one the scene draws, so callers
// may keep it and mutate it between frames.
//
// No check is made that name is registered; an unknown name makes the
// element inert until a set with that name appears.
func (s *Scene) AddElement(name string, x, y, width, height float64, opts ...ElementOption) *sprite.Element {
	cfg := elementConfig{index: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := sprite.NewElement(name, x, y, width, height)
	for _, fn := range cfg.apply {
		fn(e)
	}

	if cfg.index < 0 || cfg.index >= len(s.elements) {
		s.elements = append(s.elements, e)
		return e
	}

	s.elements = append(s.elements, nil)
	copy(s.elements[cfg.index+1:], s.elements[cfg.index:])
	s.elements[cfg.index] = e
	return e
}
