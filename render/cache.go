// Package render converts decoded project image resources into ebiten
// textures, caching per-frame conversions so the draw path stays cheap.
package render

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gamemaker/project"
)

var placeholderFill = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}

// FrameCache holds converted textures keyed by image resource. Entries for a
// resource are dropped with Invalidate when the editor replaces its bytes.
type FrameCache struct {
	frames       map[*project.Image][]*ebiten.Image
	placeholders map[*project.Image]*ebiten.Image
}

func NewFrameCache() *FrameCache {
	return &FrameCache{
		frames:       make(map[*project.Image][]*ebiten.Image),
		placeholders: make(map[*project.Image]*ebiten.Image),
	}
}

// Frame returns the texture for the resource's frame at the given elapsed
// time. Resources with no decoded frames yield a placeholder rectangle of
// the resource's size; the return value is never nil for a non-nil resource.
func (c *FrameCache) Frame(m *project.Image, elapsed time.Duration) *ebiten.Image {
	if m == nil {
		return nil
	}
	n := m.FrameCount()
	if n == 0 {
		return c.placeholder(m)
	}

	cached, ok := c.frames[m]
	if !ok {
		cached = make([]*ebiten.Image, n)
		c.frames[m] = cached
	}
	idx := m.FrameIndexAt(elapsed)
	if cached[idx] == nil {
		cached[idx] = ebiten.NewImageFromImage(m.Frame(idx))
	}
	return cached[idx]
}

func (c *FrameCache) placeholder(m *project.Image) *ebiten.Image {
	if img, ok := c.placeholders[m]; ok {
		return img
	}
	w, h := m.Size()
	img := ebiten.NewImage(w, h)
	img.Fill(placeholderFill)
	c.placeholders[m] = img
	return img
}

// Invalidate drops cached textures for a resource after its bytes changed.
func (c *FrameCache) Invalidate(m *project.Image) {
	delete(c.frames, m)
	delete(c.placeholders, m)
}

// Reset drops every cached texture, for use after a whole-document reload.
func (c *FrameCache) Reset() {
	c.frames = make(map[*project.Image][]*ebiten.Image)
	c.placeholders = make(map[*project.Image]*ebiten.Image)
}
