// Package asset loads sprite frames from a file system.
package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	// PNG is the frame format of the demo content
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/singleflight"

	"github.com/younwookim/strata/internal/domain/sprite"
)

// ErrNotFound is returned for refs that do not exist in the file system.
var ErrNotFound = errors.New("asset not found")

// Frame is a decoded image.
type Frame struct {
	ref string
	img *ebiten.Image
}

// NewFrame wraps an already decoded image.
func NewFrame(ref string, img *ebiten.Image) *Frame {
	return &Frame{ref: ref, img: img}
}

// Ready reports whether the frame has pixels to draw.
func (f *Frame) Ready() bool {
	return f != nil && f.img != nil
}

// Image returns the decoded image.
func (f *Frame) Image() *ebiten.Image {
	return f.img
}

// Ref returns the path the frame was loaded from.
func (f *Frame) Ref() string {
	return f.ref
}

type decodeFunc func(fsys fs.FS, path string) (*ebiten.Image, error)

func decodeImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, path)
	return img, err
}

// FSLoader loads frames from an fs.FS. It is safe for concurrent use;
// concurrent loads of the same ref share one decode, and decoded frames are
// cached for the loader's lifetime.
type FSLoader struct {
	fsys   fs.FS
	decode decodeFunc

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]*Frame
}

// NewFSLoader creates a loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{
		fsys:   fsys,
		decode: decodeImage,
		cache:  make(map[string]*Frame),
	}
}

// Load returns the frame stored at ref.
func (l *FSLoader) Load(ctx context.Context, ref string) (sprite.Frame, error) {
	if f, ok := l.cached(ref); ok {
		return f, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err, _ := l.group.Do(ref, func() (any, error) {
		if f, ok := l.cached(ref); ok {
			return f, nil
		}
		img, err := l.decode(l.fsys, ref)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to decode %s: %w", ref, err)
		}
		f := NewFrame(ref, img)
		l.mu.Lock()
		l.cache[ref] = f
		l.mu.Unlock()
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Frame), nil
}

func (l *FSLoader) cached(ref string) (*Frame, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.cache[ref]
	return f, ok
}

// Cached returns the number of decoded frames held by the loader.
func (l *FSLoader) Cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}
