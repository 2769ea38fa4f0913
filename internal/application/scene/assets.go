package scene

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/strata/internal/domain/sprite"
)

// Loader resolves a frame reference (path or URL) to a frame.
type Loader interface {
	Load(ctx context.Context, ref string) (sprite.Frame, error)
}

// AssetSpec declares one sprite set to register.
type AssetSpec struct {
	Name   string
	Frames []string
	Hooks  sprite.Hooks
}

// RegisterAssets loads every frame of every spec and registers the resulting
// sprite sets.
//
// All loads are issued concurrently and RegisterAssets returns only once
// each of them has finished. If any load fails, nothing from this call is
// registered and the first error is returned. A spec reusing a registered
// name replaces that set.
func (s *Scene) RegisterAssets(ctx context.Context, loader Loader, specs []AssetSpec) error {
	frames := make([][]sprite.Frame, len(specs))

	var g errgroup.Group
	if s.loadLimit > 0 {
		g.SetLimit(s.loadLimit)
	}
	for i, spec := range specs {
		frames[i] = make([]sprite.Frame, len(spec.Frames))
		for j, ref := range spec.Frames {
			slot := &frames[i][j]
			name := spec.Name
			g.Go(func() error {
				f, err := loader.Load(ctx, ref)
				if err != nil {
					return fmt.Errorf("sprite set %s: load %s: %w", name, ref, err)
				}
				*slot = f
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, spec := range specs {
		if _, exists := s.sets[spec.Name]; !exists {
			s.setOrder = append(s.setOrder, spec.Name)
		}
		s.sets[spec.Name] = sprite.NewSpriteSet(spec.Name, frames[i], spec.Hooks)
	}
	return nil
}
