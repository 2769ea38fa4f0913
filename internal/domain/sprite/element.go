package sprite

// Element is one placed instance of a sprite set. The set is referenced by
// name only and resolved by the owning scene on every draw and tick.
type Element struct {
	Name   string
	X, Y   float64
	Width  float64
	Height float64
	Layer  int
	Frame  int

	// Fixed elements are placed in surface coordinates and ignore the camera.
	Fixed bool
	// Visible=false keeps the element ticking but stops it from drawing.
	Visible bool
	// SizeRelative multiplies Width/Height by the surface's client size.
	// Only fixed elements honour it.
	SizeRelative bool

	// Composite overrides the set and layer composite mode.
	Composite CompositeMode

	// OnTick is the element's own tick hook, independent of the set's
	// ElementTick.
	OnTick func(e *Element, tick uint64)
}

// NewElement creates a visible, scrolling element.
func NewElement(name string, x, y, width, height float64) *Element {
	return &Element{
		Name:    name,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Visible: true,
	}
}
