package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera is the world-to-surface transform of scrolling elements:
// screen = (world - offset) * Scale.
type Camera struct {
	X, Y  float64
	Scale float64
}

// pan holds an active camera scroll. Durations are measured in ticks.
type pan struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
}

// Camera returns the current camera.
func (s *Scene) Camera() Camera {
	return s.camera
}

// SetCamera moves the camera offset and cancels any pan in progress.
func (s *Scene) SetCamera(x, y float64) {
	s.camera.X = x
	s.camera.Y = y
	s.pan = nil
}

// SetScale sets the uniform camera scale.
func (s *Scene) SetScale(scale float64) {
	s.camera.Scale = scale
}

// ScrollTo pans the camera offset to (x, y) over the given number of ticks.
// A non-positive tick count moves the camera immediately. A nil easing is
// linear.
func (s *Scene) ScrollTo(x, y float64, ticks int, fn ease.TweenFunc) {
	if ticks <= 0 {
		s.SetCamera(x, y)
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	s.pan = &pan{
		tweenX: gween.New(float32(s.camera.X), float32(x), float32(ticks), fn),
		tweenY: gween.New(float32(s.camera.Y), float32(y), float32(ticks), fn),
	}
}

// Panning reports whether a ScrollTo is still in progress.
func (s *Scene) Panning() bool {
	return s.pan != nil
}

func (s *Scene) advancePan() {
	if s.pan == nil {
		return
	}
	x, doneX := s.pan.tweenX.Update(1)
	y, doneY := s.pan.tweenY.Update(1)
	s.camera.X = float64(x)
	s.camera.Y = float64(y)
	if doneX && doneY {
		s.pan = nil
	}
}
