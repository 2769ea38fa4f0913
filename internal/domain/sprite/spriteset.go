package sprite

// Hooks are the optional per-set callbacks. Any of them may be nil.
type Hooks struct {
	// OnTick runs once per scene tick for the set itself.
	OnTick func(set *SpriteSet, tick uint64)

	// OnBeforeDraw runs before the geometry of every referencing element is
	// computed and may mutate that element.
	OnBeforeDraw func(set *SpriteSet, e *Element)

	// ElementTick runs once per tick for every element referencing the set.
	ElementTick func(e *Element, tick uint64)

	// Composite overrides the layer composite mode for the set's elements.
	Composite CompositeMode
}

// SpriteSet is a named, immutable sequence of frames shared by elements.
type SpriteSet struct {
	name   string
	frames []Frame
	hooks  Hooks
}

// NewSpriteSet creates a sprite set. frames may be empty.
func NewSpriteSet(name string, frames []Frame, hooks Hooks) *SpriteSet {
	fs := make([]Frame, len(frames))
	copy(fs, frames)
	return &SpriteSet{
		name:   name,
		frames: fs,
		hooks:  hooks,
	}
}

// Name returns the registry key of the set.
func (s *SpriteSet) Name() string {
	return s.name
}

// FrameCount returns the number of frames.
func (s *SpriteSet) FrameCount() int {
	return len(s.frames)
}

// Frames returns a copy of the frame list.
func (s *SpriteSet) Frames() []Frame {
	fs := make([]Frame, len(s.frames))
	copy(fs, s.frames)
	return fs
}

// Hooks returns the set's callbacks.
func (s *SpriteSet) Hooks() Hooks {
	return s.hooks
}

// Frame returns the frame at index, or nil if out of range.
func (s *SpriteSet) Frame(index int) Frame {
	if index < 0 || index >= len(s.frames) {
		return nil
	}
	return s.frames[index]
}

// Draw blits frame index into r on c. Out-of-range and not-ready frames are
// skipped; Draw reports whether anything was drawn.
func (s *SpriteSet) Draw(c Canvas, r Rect, index int) bool {
	f := s.Frame(index)
	if f == nil || !f.Ready() {
		return false
	}
	c.DrawFrame(f, r)
	return true
}
