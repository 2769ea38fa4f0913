package system

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"path"
	"time"

	"github.com/younwookim/strata/internal/application/scene"
	"github.com/younwookim/strata/internal/domain/sprite"
	"github.com/younwookim/strata/internal/infrastructure/config"
	"github.com/younwookim/strata/internal/infrastructure/surface"
)

// BuildOptions carries the engine-level settings a scene is built with.
type BuildOptions struct {
	// AssetRoot is prefixed to every frame name.
	AssetRoot string
	// Rand drives placement jitter and random behaviors. Nil uses a fixed
	// seed.
	Rand               *rand.Rand
	IsolateHooks       bool
	SlowDraw           time.Duration
	MaxConcurrentLoads int
}

// FrameRef resolves a frame name from scene content to a loader reference.
// Names without an extension are PNG files.
func FrameRef(root, name string) string {
	if path.Ext(name) == "" {
		name += ".png"
	}
	return path.Join(root, name)
}

// BuildScene converts a SceneConfig into a Scene: it parses the layer
// settings, registers every sprite set through loader and places the
// elements. The scene is returned only if all of its frames loaded.
func BuildScene(ctx context.Context, cfg *config.SceneConfig, loader scene.Loader, opts BuildOptions) (*scene.Scene, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	behaviors := NewBehaviors(rng)

	backgrounds := make([]color.Color, len(cfg.Layers))
	composites := make([]sprite.CompositeMode, len(cfg.Layers))
	for i, l := range cfg.Layers {
		c, err := config.ParseColor(l.Background)
		if err != nil {
			return nil, fmt.Errorf("scene %s: layer %d: %w", cfg.ID, i, err)
		}
		backgrounds[i] = c
		composites[i] = compositeMode(l.Composite)
	}

	s := scene.New(scene.Options{
		Backgrounds:  backgrounds,
		Composites:   composites,
		Scale:        cfg.Scale,
		CameraX:      cfg.Camera.X,
		CameraY:      cfg.Camera.Y,
		IsolateHooks: opts.IsolateHooks,
		SlowDraw:     opts.SlowDraw,
	})
	s.SetLoadLimit(opts.MaxConcurrentLoads)

	frameCounts := make(map[string]int, len(cfg.Sprites))
	specs := make([]scene.AssetSpec, 0, len(cfg.Sprites))
	for _, sc := range cfg.Sprites {
		hooks, err := behaviors.SpriteHooks(sc.Behavior, len(sc.Frames))
		if err != nil {
			return nil, fmt.Errorf("scene %s: sprite %s: %w", cfg.ID, sc.Name, err)
		}
		hooks.Composite = compositeMode(sc.Composite)

		refs := make([]string, len(sc.Frames))
		for i, f := range sc.Frames {
			refs[i] = FrameRef(opts.AssetRoot, f)
		}
		specs = append(specs, scene.AssetSpec{Name: sc.Name, Frames: refs, Hooks: hooks})
		frameCounts[sc.Name] = len(sc.Frames)
	}
	if err := s.RegisterAssets(ctx, loader, specs); err != nil {
		return nil, fmt.Errorf("scene %s: %w", cfg.ID, err)
	}

	for i := range cfg.Elements {
		if err := placeElements(s, behaviors, rng, &cfg.Elements[i], frameCounts); err != nil {
			return nil, fmt.Errorf("scene %s: element %d: %w", cfg.ID, i, err)
		}
	}

	if cfg.Pan != nil {
		if err := startPan(s, cfg); err != nil {
			return nil, fmt.Errorf("scene %s: pan: %w", cfg.ID, err)
		}
	}

	log.Printf("scene %s: %d sprite sets, %d elements", cfg.ID, len(specs), len(s.Elements()))
	return s, nil
}

// placeElements adds one element per repeat cell, plus a copy per extra
// placement at each cell.
func placeElements(s *scene.Scene, behaviors *Behaviors, rng *rand.Rand, ec *config.ElementConfig, frameCounts map[string]int) error {
	cols, rows := 1, 1
	var dx, dy, jx, jy float64
	if r := ec.Repeat; r != nil {
		cols = max(r.Columns, 1)
		rows = max(r.Rows, 1)
		dx, dy = r.DX, r.DY
		jx, jy = r.JitterX, r.JitterY
	}

	placements := append([]config.PlacementConfig{{Layer: ec.Layer, Frame: ec.Frame}}, ec.Also...)

	var tick func(*sprite.Element, uint64)
	if ec.Behavior != nil {
		var err error
		tick, err = behaviors.ElementTick(ec.Behavior, frameCounts[ec.Sprite])
		if err != nil {
			return err
		}
	}

	index := -1
	if ec.Index != nil {
		index = *ec.Index
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := ec.X + float64(col)*dx + jitter(rng, jx)
			y := ec.Y + float64(row)*dy + jitter(rng, jy)
			for _, p := range placements {
				opts := []scene.ElementOption{
					scene.OnLayer(p.Layer),
					scene.WithFrame(p.Frame),
					scene.WithComposite(compositeMode(ec.Composite)),
				}
				if ec.Fixed {
					opts = append(opts, scene.Fixed())
				}
				if ec.SizeRelative {
					opts = append(opts, scene.SizeRelative())
				}
				if ec.Hidden {
					opts = append(opts, scene.Hidden())
				}
				if tick != nil {
					opts = append(opts, scene.WithTick(tick))
				}
				if index >= 0 {
					opts = append(opts, scene.AtIndex(index))
					index++
				}
				s.AddElement(ec.Sprite, x, y, ec.Width, ec.Height, opts...)
			}
		}
	}
	return nil
}

func jitter(rng *rand.Rand, amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return rng.Float64()*amount - amount/2
}

// startPan scrolls the camera towards the pan target. A looping pan turns
// around at either end.
func startPan(s *scene.Scene, cfg *config.SceneConfig) error {
	fn, err := Easing(cfg.Pan.Easing)
	if err != nil {
		return err
	}
	p := *cfg.Pan
	home := cfg.Camera

	s.ScrollTo(p.X, p.Y, p.Ticks, fn)
	if !p.Loop || p.Ticks <= 0 {
		return nil
	}

	outbound := true
	s.SetTickHook(func(s *scene.Scene, _ uint64) {
		if s.Panning() {
			return
		}
		outbound = !outbound
		if outbound {
			s.ScrollTo(p.X, p.Y, p.Ticks, fn)
		} else {
			s.ScrollTo(home.X, home.Y, p.Ticks, fn)
		}
	})
	return nil
}

func compositeMode(name string) sprite.CompositeMode {
	mode := sprite.CompositeMode(name)
	if mode != sprite.CompositeUnset && !surface.KnownMode(mode) {
		log.Printf("unknown composite mode %q, drawing with %s", name, sprite.CompositeSourceOver)
	}
	return mode
}
