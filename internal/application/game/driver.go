package game

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/strata/internal/application/scene"
	"github.com/younwookim/strata/internal/application/state"
)

// Layer is a surface backed by an ebiten image whose client size follows the
// window.
type Layer interface {
	scene.Surface
	Image() *ebiten.Image
	SetClientSize(width, height int)
}

// DriverConfig configures a Driver.
type DriverConfig struct {
	// Stacking is the blend used to put each finished layer on the screen.
	// Missing entries use source-over.
	Stacking []ebiten.Blend
	// MaxCatchUp caps the ticks issued by one Update after a stall.
	// Zero means 5.
	MaxCatchUp int
	ShowFPS    bool
	// Now replaces time.Now for the tick clock.
	Now func() time.Time
}

type loadResult struct {
	scenes []*scene.Scene
	err    error
}

// Driver implements ebiten.Game on top of a Manager. Draw is the render
// clock; Update accumulates wall time and issues one Manager.Tick per
// elapsed tick period.
type Driver struct {
	manager *Manager
	layers  []Layer
	cfg     DriverConfig

	state   state.RunState
	pending chan loadResult
	err     error

	now        func() time.Time
	lastUpdate time.Time
	acc        time.Duration
}

// NewDriver creates a driver and binds layers to the manager.
func NewDriver(m *Manager, layers []Layer, cfg DriverConfig) *Driver {
	if cfg.MaxCatchUp <= 0 {
		cfg.MaxCatchUp = 5
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	surfaces := make([]scene.Surface, len(layers))
	for i, l := range layers {
		surfaces[i] = l
	}
	m.Init(surfaces)

	return &Driver{
		manager:    m,
		layers:     layers,
		cfg:        cfg,
		state:      state.StateRunning,
		now:        now,
		lastUpdate: now(),
	}
}

// Load builds scenes in the background, one after another. Once every build
// has returned, Update registers the scenes with the manager in argument
// order, on the game goroutine. A failed build registers none of them.
func (d *Driver) Load(builds ...func() (*scene.Scene, error)) {
	d.state = state.StateLoading
	d.pending = make(chan loadResult, 1)
	go func() {
		scenes := make([]*scene.Scene, 0, len(builds))
		for _, build := range builds {
			s, err := build()
			if err != nil {
				d.pending <- loadResult{err: err}
				return
			}
			scenes = append(scenes, s)
		}
		d.pending <- loadResult{scenes: scenes}
	}()
}

// State returns the run state.
func (d *Driver) State() state.RunState {
	return d.state
}

// Manager returns the driven manager.
func (d *Driver) Manager() *Manager {
	return d.manager
}

// Update advances the tick clock.
// Implements ebiten.Game interface.
func (d *Driver) Update() error {
	switch d.state {
	case state.StateFailed:
		return d.err
	case state.StateLoading:
		return d.pollLoad()
	}

	now := d.now()
	d.acc += now.Sub(d.lastUpdate)
	d.lastUpdate = now

	rate := d.manager.TickRate()
	if rate <= 0 {
		return nil
	}
	for n := 0; d.acc >= rate; n++ {
		if n == d.cfg.MaxCatchUp {
			d.acc = 0
			break
		}
		d.manager.Tick()
		d.acc -= rate
	}
	return nil
}

func (d *Driver) pollLoad() error {
	select {
	case res := <-d.pending:
		if res.err != nil {
			d.state = state.StateFailed
			d.err = fmt.Errorf("scene setup failed: %w", res.err)
			log.Printf("%v", d.err)
			return d.err
		}
		for _, s := range res.scenes {
			id := d.manager.RegisterScene(s)
			log.Printf("Scene %d ready (%d sprite sets, %d elements)",
				id, len(s.SpriteSetNames()), len(s.Elements()))
		}
		d.state = state.StateRunning
		d.lastUpdate = d.now()
		d.acc = 0
	default:
	}
	return nil
}

// Draw renders the active scene and stacks the layers onto the screen.
// Implements ebiten.Game interface.
func (d *Driver) Draw(screen *ebiten.Image) {
	if d.state != state.StateRunning {
		screen.Fill(color.Black)
		ebitenutil.DebugPrint(screen, d.state.String())
		return
	}

	d.manager.RenderFrame()

	for i, l := range d.layers {
		op := &ebiten.DrawImageOptions{}
		op.Blend = d.stacking(i)
		screen.DrawImage(l.Image(), op)
	}

	if d.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%d fps", int(math.Round(d.manager.FPS()))))
	}
}

func (d *Driver) stacking(layer int) ebiten.Blend {
	if layer < len(d.cfg.Stacking) {
		return d.cfg.Stacking[layer]
	}
	return ebiten.BlendSourceOver
}

// Layout makes the window size the client size of every layer. The backing
// images follow on the next RenderFrame.
// Implements ebiten.Game interface.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	for _, l := range d.layers {
		l.SetClientSize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
