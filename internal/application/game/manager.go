// Package game owns the scenes and surfaces of a running program and drives
// them with two independent clocks: a render clock (RenderFrame) and a fixed
// rate tick clock (Tick).
package game

import (
	"time"

	"github.com/younwookim/strata/internal/application/scene"
	"github.com/younwookim/strata/internal/domain/sprite"
)

const (
	DefaultTickRate = 100 * time.Millisecond

	fpsGain  = 10.0
	fpsDecay = 1.01
)

// Option overrides a Manager setting.
type Option func(*Manager)

// WithTickRate sets the period between ticks.
func WithTickRate(d time.Duration) Option {
	return func(m *Manager) { m.tickRate = d }
}

// WithLooping enables or disables ticking.
func WithLooping(looping bool) Option {
	return func(m *Manager) { m.looping = looping }
}

// WithActiveScene selects the active scene index.
func WithActiveScene(id int) Option {
	return func(m *Manager) { m.active = id }
}

// WithClock replaces time.Now for the FPS estimate.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// Manager is the scene manager: ordered scenes, the layer surfaces with
// their canvases, the active scene and the tick counter.
type Manager struct {
	scenes   []*scene.Scene
	surfaces []scene.Surface
	contexts []sprite.Canvas

	active    int
	tickRate  time.Duration
	tickCount uint64
	looping   bool

	now       func() time.Time
	lastFrame time.Time
	fps       float64
}

// NewManager creates a manager with no surfaces.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		tickRate: DefaultTickRate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastFrame = m.now()
	return m
}

// Init binds surfaces (index = layer) and applies opts. Passing nil
// surfaces keeps the bound ones, so Init can be called again after a resize.
// Registered scenes are kept either way.
func (m *Manager) Init(surfaces []scene.Surface, opts ...Option) {
	if surfaces != nil {
		m.surfaces = append([]scene.Surface(nil), surfaces...)
		m.contexts = make([]sprite.Canvas, len(surfaces))
		for i, s := range m.surfaces {
			m.contexts[i] = s.Canvas()
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	m.syncSurfaces()
}

// syncSurfaces matches backing size to client size and turns smoothing off.
func (m *Manager) syncSurfaces() {
	for i, s := range m.surfaces {
		s.Resize(s.ClientWidth(), s.ClientHeight())
		m.contexts[i] = s.Canvas()
	}
	for _, c := range m.contexts {
		c.SetSmoothing(false)
	}
}

func (m *Manager) drifted() bool {
	for _, s := range m.surfaces {
		if s.Width() != s.ClientWidth() || s.Height() != s.ClientHeight() {
			return true
		}
	}
	return false
}

// RegisterScene appends a scene and returns its index.
func (m *Manager) RegisterScene(s *scene.Scene) int {
	m.scenes = append(m.scenes, s)
	return len(m.scenes) - 1
}

// Scene returns the scene at id.
func (m *Manager) Scene(id int) *scene.Scene {
	return m.scenes[id]
}

// SceneCount returns the number of registered scenes.
func (m *Manager) SceneCount() int {
	return len(m.scenes)
}

// ActiveScene returns the active scene, or nil if it is not registered yet.
func (m *Manager) ActiveScene() *scene.Scene {
	if m.active < 0 || m.active >= len(m.scenes) {
		return nil
	}
	return m.scenes[m.active]
}

// SetActiveScene selects the scene that receives draws and ticks.
func (m *Manager) SetActiveScene(id int) {
	m.active = id
}

// LayerCount returns the number of bound surfaces.
func (m *Manager) LayerCount() int {
	return len(m.surfaces)
}

// Context returns the canvas of a layer.
func (m *Manager) Context(layer int) sprite.Canvas {
	return m.contexts[layer]
}

// Surface returns the surface of a layer.
func (m *Manager) Surface(layer int) scene.Surface {
	return m.surfaces[layer]
}

// RenderFrame resynchronizes drifted surfaces and draws the active scene.
func (m *Manager) RenderFrame() {
	if m.drifted() {
		m.syncSurfaces()
	}
	if s := m.ActiveScene(); s != nil {
		s.Draw(m)
	}

	now := m.now()
	if elapsed := float64(now.Sub(m.lastFrame)) / float64(time.Millisecond); elapsed > 0 {
		m.fps = (m.fps + fpsGain/elapsed) / fpsDecay
	}
	m.lastFrame = now
}

// FPS returns a smoothed frames-per-second estimate. It is a diagnostic
// only.
func (m *Manager) FPS() float64 {
	return m.fps
}

// Tick advances the tick counter and ticks the active scene. It does
// nothing while looping is off.
func (m *Manager) Tick() {
	if !m.looping {
		return
	}
	m.tickCount++
	if s := m.ActiveScene(); s != nil {
		s.Tick(m.tickCount)
	}
}

// TickCount returns the number of ticks issued so far.
func (m *Manager) TickCount() uint64 {
	return m.tickCount
}

// TickRate returns the period between ticks.
func (m *Manager) TickRate() time.Duration {
	return m.tickRate
}

// Looping reports whether ticks are enabled.
func (m *Manager) Looping() bool {
	return m.looping
}

// SetLooping enables or disables ticking.
func (m *Manager) SetLooping(looping bool) {
	m.looping = looping
}
