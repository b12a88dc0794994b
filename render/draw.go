package render

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gamemaker/project"
)

var (
	whiteOnce  sync.Once
	whitePixel *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	})
	return whitePixel
}

// FillRect draws a solid rectangle.
func FillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	r, g, b, a := c.RGBA()
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	dst.DrawImage(white(), op)
}

// DrawBackground paints the level's background area: a flat color, a tiled
// or stretched image, or white when the level has none.
func DrawBackground(dst *ebiten.Image, d *project.Document, lvl *project.Level, cache *FrameCache, elapsed time.Duration) {
	w := float64(lvl.Width)
	h := float64(lvl.Height)

	var bg *project.Background
	if lvl.BackgroundIndex != nil && *lvl.BackgroundIndex >= 0 && *lvl.BackgroundIndex < len(d.Backgrounds) {
		bg = &d.Backgrounds[*lvl.BackgroundIndex]
	}
	if bg == nil {
		FillRect(dst, 0, 0, w, h, color.White)
		return
	}

	if bg.Mode == project.BackgroundColor {
		FillRect(dst, 0, 0, w, h, color.RGBA{R: bg.Color.R, G: bg.Color.G, B: bg.Color.B, A: bg.Color.A})
		return
	}

	img := cache.Frame(bg.Image, elapsed)
	if img == nil {
		FillRect(dst, 0, 0, w, h, color.White)
		return
	}
	iw := img.Bounds().Dx()
	ih := img.Bounds().Dy()
	if iw <= 0 || ih <= 0 {
		return
	}
	if bg.Tiled {
		for y := 0; y < lvl.Height; y += ih {
			for x := 0; x < lvl.Width; x += iw {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x), float64(y))
				dst.DrawImage(img, op)
			}
		}
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	dst.DrawImage(img, op)
}

// DrawInstances paints a level's placed instances in paint order (last on
// top). Instances whose object type has no resolvable sprite are skipped.
func DrawInstances(dst *ebiten.Image, d *project.Document, lvl *project.Level, cache *FrameCache, elapsed time.Duration) {
	for _, inst := range lvl.Instances {
		if inst.ObjectIndex < 0 || inst.ObjectIndex >= len(d.Objects) {
			continue
		}
		si := d.Objects[inst.ObjectIndex].SpriteIndex
		if si == nil || *si < 0 || *si >= len(d.Sprites) {
			continue
		}
		img := cache.Frame(d.Sprites[*si].Image, elapsed)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(inst.X), float64(inst.Y))
		dst.DrawImage(img, op)
	}
}
