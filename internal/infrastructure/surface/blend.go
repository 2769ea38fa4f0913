package surface

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/strata/internal/domain/sprite"
)

var blends = map[sprite.CompositeMode]ebiten.Blend{
	sprite.CompositeNormal:          ebiten.BlendSourceOver,
	sprite.CompositeSourceOver:      ebiten.BlendSourceOver,
	sprite.CompositeLighter:         ebiten.BlendLighter,
	sprite.CompositeCopy:            ebiten.BlendCopy,
	sprite.CompositeXor:             ebiten.BlendXor,
	sprite.CompositeSourceIn:        ebiten.BlendSourceIn,
	sprite.CompositeSourceOut:       ebiten.BlendSourceOut,
	sprite.CompositeSourceAtop:      ebiten.BlendSourceAtop,
	sprite.CompositeDestinationOver: ebiten.BlendDestinationOver,
	sprite.CompositeDestinationIn:   ebiten.BlendDestinationIn,
	sprite.CompositeDestinationOut:  ebiten.BlendDestinationOut,
	sprite.CompositeDestinationAtop: ebiten.BlendDestinationAtop,
	sprite.CompositeClear:           ebiten.BlendClear,
}

// BlendFor maps a composite mode to an ebiten blend. Unknown and unset
// modes are source-over.
func BlendFor(mode sprite.CompositeMode) ebiten.Blend {
	if b, ok := blends[mode]; ok {
		return b
	}
	return ebiten.BlendSourceOver
}

// KnownMode reports whether mode has a dedicated blend.
func KnownMode(mode sprite.CompositeMode) bool {
	_, ok := blends[mode]
	return ok
}
