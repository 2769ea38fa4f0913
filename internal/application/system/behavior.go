package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/tanema/gween/ease"

	"github.com/younwookim/strata/internal/domain/sprite"
	"github.com/younwookim/strata/internal/infrastructure/config"
)

// ErrUnknownBehavior is returned for a behavior type or easing name that has
// no implementation.
var ErrUnknownBehavior = errors.New("unknown behavior")

// Behavior types
const (
	BehaviorFlicker = "flicker"
	BehaviorCycle   = "cycle"
	BehaviorBlink   = "blink"
	BehaviorTwinkle = "twinkle"
)

var easings = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
}

// Easing looks up a camera pan easing by name. The empty name is linear.
func Easing(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: easing %q", ErrUnknownBehavior, name)
	}
	return fn, nil
}

// Behaviors turns behavior configs into sprite hooks. Random choices come
// from a single seeded source so a scene replays identically for a seed.
type Behaviors struct {
	rng *rand.Rand
}

// NewBehaviors creates a behavior factory drawing from rng.
func NewBehaviors(rng *rand.Rand) *Behaviors {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Behaviors{rng: rng}
}

// SpriteHooks builds the hooks of a sprite set with the given frame count.
// Twinkle is the only behavior that needs set-level state; every other type
// becomes the set's ElementTick.
func (b *Behaviors) SpriteHooks(cfg *config.BehaviorConfig, frames int) (sprite.Hooks, error) {
	if cfg == nil {
		return sprite.Hooks{}, nil
	}
	if cfg.Type == BehaviorTwinkle {
		return twinkle(every(cfg)), nil
	}
	tick, err := b.ElementTick(cfg, frames)
	if err != nil {
		return sprite.Hooks{}, err
	}
	return sprite.Hooks{ElementTick: tick}, nil
}

// ElementTick builds a per-element tick hook. frames bounds the default
// frame range of flicker and cycle.
func (b *Behaviors) ElementTick(cfg *config.BehaviorConfig, frames int) (func(*sprite.Element, uint64), error) {
	switch cfg.Type {
	case BehaviorFlicker:
		lo, hi := frameRange(cfg, frames, 1)
		if hi < lo {
			return nil, fmt.Errorf("flicker: empty frame range [%d, %d]", lo, hi)
		}
		return b.flicker(lo, hi), nil
	case BehaviorCycle:
		lo, hi := frameRange(cfg, frames, 0)
		if hi < lo {
			return nil, fmt.Errorf("cycle: empty frame range [%d, %d]", lo, hi)
		}
		return cycle(lo, hi, every(cfg)), nil
	case BehaviorBlink:
		return blink(every(cfg)), nil
	case BehaviorTwinkle:
		return nil, fmt.Errorf("%w: %s is a sprite-level behavior", ErrUnknownBehavior, cfg.Type)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, cfg.Type)
	}
}

func every(cfg *config.BehaviorConfig) uint64 {
	if cfg.Every <= 0 {
		return 1
	}
	return uint64(cfg.Every)
}

// frameRange applies defaults: Min falls back to lo, and Max to the last
// frame.
func frameRange(cfg *config.BehaviorConfig, frames, lo int) (int, int) {
	first, last := cfg.Min, cfg.Max
	if first == 0 {
		first = lo
	}
	if last == 0 {
		last = frames - 1
	}
	return first, last
}

// flicker re-rolls elements showing a frame in [lo, hi] to a random frame
// in the same range. Elements outside the range are left alone, so an
// unlit lamp stays unlit.
func (b *Behaviors) flicker(lo, hi int) func(*sprite.Element, uint64) {
	return func(e *sprite.Element, _ uint64) {
		if e.Frame < lo || e.Frame > hi {
			return
		}
		e.Frame = lo + b.rng.Intn(hi-lo+1)
	}
}

func cycle(lo, hi int, n uint64) func(*sprite.Element, uint64) {
	return func(e *sprite.Element, tick uint64) {
		if tick%n != 0 {
			return
		}
		if e.Frame < lo || e.Frame >= hi {
			e.Frame = lo
			return
		}
		e.Frame++
	}
}

func blink(n uint64) func(*sprite.Element, uint64) {
	return func(e *sprite.Element, tick uint64) {
		if tick%n == 0 {
			e.Visible = !e.Visible
		}
	}
}

// twinkle offsets every element's frame by its layer, then advances the
// shared phase every n ticks. Copies of one star on different layers thus
// always show different frames.
func twinkle(n uint64) sprite.Hooks {
	var phase int
	return sprite.Hooks{
		OnTick: func(_ *sprite.SpriteSet, tick uint64) {
			if tick%n == 0 {
				phase++
			}
		},
		OnBeforeDraw: func(set *sprite.SpriteSet, e *sprite.Element) {
			if c := set.FrameCount(); c > 0 {
				e.Frame = (e.Layer + phase) % c
			}
		},
	}
}
