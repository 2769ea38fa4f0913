package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/strata/internal/application/game"
	"github.com/younwookim/strata/internal/application/scene"
	"github.com/younwookim/strata/internal/application/system"
	"github.com/younwookim/strata/internal/domain/sprite"
	"github.com/younwookim/strata/internal/infrastructure/asset"
	"github.com/younwookim/strata/internal/infrastructure/config"
	"github.com/younwookim/strata/internal/infrastructure/surface"
)

// newDriver wires layers, the manager and the driver from cfg and starts
// loading every configured scene. Frames are read from assets.
func newDriver(cfg *config.GameConfig, assets fs.FS, seed int64) (*game.Driver, error) {
	engine := cfg.Engine
	if len(engine.Layers) == 0 {
		return nil, errors.New("engine.json: no layers configured")
	}

	layers := make([]game.Layer, len(engine.Layers))
	stacking := make([]ebiten.Blend, len(engine.Layers))
	for i, l := range engine.Layers {
		layers[i] = surface.NewLayer(engine.Display.ScreenWidth, engine.Display.ScreenHeight)
		stacking[i] = surface.BlendFor(sprite.CompositeMode(l.Stacking))
	}

	opts := []game.Option{
		game.WithLooping(engine.Loop.Looping),
		game.WithActiveScene(engine.Loop.ActiveScene),
	}
	if engine.Loop.TickRateMs > 0 {
		opts = append(opts, game.WithTickRate(time.Duration(engine.Loop.TickRateMs)*time.Millisecond))
	}
	manager := game.NewManager(opts...)
	driver := game.NewDriver(manager, layers, game.DriverConfig{
		Stacking:   stacking,
		MaxCatchUp: engine.Loop.MaxCatchUp,
		ShowFPS:    engine.Loop.ShowFPS,
	})

	loader := asset.NewFSLoader(assets)
	builds := make([]func() (*scene.Scene, error), len(cfg.Scenes))
	for i, sc := range cfg.Scenes {
		buildOpts := system.BuildOptions{
			AssetRoot:          engine.Assets.Root,
			Rand:               rand.New(rand.NewSource(seed + int64(i))),
			IsolateHooks:       engine.Loop.IsolateHooks,
			SlowDraw:           time.Duration(engine.Assets.SlowDrawMs) * time.Millisecond,
			MaxConcurrentLoads: engine.Assets.MaxConcurrentLoads,
		}
		builds[i] = func() (*scene.Scene, error) {
			return system.BuildScene(context.Background(), sc, loader, buildOpts)
		}
	}
	driver.Load(builds...)

	return driver, nil
}

func dataFS(dir string) (fs.FS, error) {
	if dir == "" {
		return gameFS, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	return os.DirFS(dir), nil
}

func main() {
	dataDir := flag.String("data", "", "Load configs/ and assets/ from this directory instead of the bundled copies")
	seedFlag := flag.Int64("seed", 0, "Seed for placement jitter and random behaviors (0 picks one)")
	flag.Parse()

	fsys, err := dataFS(*dataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}

	// Load configurations
	configFS, err := fs.Sub(fsys, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(configFS, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	driver, err := newDriver(cfg, fsys, seed)
	if err != nil {
		log.Fatalf("Failed to set up engine: %v", err)
	}

	// Set up ebiten
	display := cfg.Engine.Display
	title := display.Title
	if title == "" {
		title = "strata"
	}
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(driver); err != nil {
		log.Fatal(err)
	}
}
