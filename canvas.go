package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/gamemaker/project"
	"github.com/milk9111/gamemaker/render"
)

var gridLineColor = color.RGBA{R: 0, G: 0, B: 0, A: 48}

// currentLevel resolves the selected level, if any.
func (e *Editor) currentLevel() (*project.Level, int, bool) {
	if e.doc.Selection.Level == nil {
		return nil, 0, false
	}
	li := *e.doc.Selection.Level
	lvl, err := e.doc.LevelAt(li)
	if err != nil {
		return nil, 0, false
	}
	return lvl, li, true
}

// snap rounds a coordinate down to the grid when the grid is shown.
func (e *Editor) snap(v int) int {
	if !e.settings.ShowGrid {
		return v
	}
	g := e.settings.GridSize
	if v < 0 {
		return 0
	}
	return v - v%g
}

// updateCanvas handles mouse edits on the level area: left click places or
// picks up an instance, holding drags it, right click deletes the topmost
// instance under the cursor.
func (e *Editor) updateCanvas() {
	lvl, li, ok := e.currentLevel()
	if !ok {
		e.dragging = false
		return
	}

	cx, cy := ebiten.CursorPosition()
	lx := cx - leftPanelWidth
	ly := cy
	inside := lx >= 0 && ly >= 0 && lx < lvl.Width && ly < lvl.Height

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if idx, hit := e.doc.HitTest(li, lx, ly); hit {
			// Picked-up instances jump to the top of the paint order.
			if err := e.doc.BringToFront(li, idx); err == nil {
				idx = len(lvl.Instances) - 1
			}
			inst := lvl.Instances[idx]
			e.dragging = true
			e.dragIndex = idx
			e.dragOffX = lx - inst.X
			e.dragOffY = ly - inst.Y
			e.dirty = true
		} else if e.doc.Selection.Object != nil {
			x := e.snap(lx)
			y := e.snap(ly)
			if err := e.doc.PlaceInstance(li, x, y, *e.doc.Selection.Object); err != nil {
				log.Printf("editor: place: %v", err)
			} else {
				e.dragging = true
				e.dragIndex = len(lvl.Instances) - 1
				e.dragOffX = lx - x
				e.dragOffY = ly - y
				e.dirty = true
			}
		}
	}

	if e.dragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			x := e.snap(lx - e.dragOffX)
			y := e.snap(ly - e.dragOffY)
			if err := e.doc.MoveInstance(li, e.dragIndex, x, y); err != nil {
				e.dragging = false
			}
		} else {
			e.dragging = false
		}
	}

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if e.doc.DeleteInstanceAt(li, lx, ly) {
			e.dragging = false
			e.dirty = true
		}
	}
}

func (e *Editor) drawCanvas(screen *ebiten.Image) {
	lvl, _, ok := e.currentLevel()
	if !ok {
		ebitenutil.DebugPrintAt(screen, "no level selected", leftPanelWidth+16, 16)
		return
	}

	if e.levelImage == nil ||
		e.levelImage.Bounds().Dx() != lvl.Width ||
		e.levelImage.Bounds().Dy() != lvl.Height {
		e.levelImage = ebiten.NewImage(lvl.Width, lvl.Height)
	}
	e.levelImage.Clear()

	elapsed := time.Since(e.started)
	render.DrawBackground(e.levelImage, e.doc, lvl, e.cache, elapsed)
	render.DrawInstances(e.levelImage, e.doc, lvl, e.cache, elapsed)
	if e.settings.ShowGrid {
		e.drawGrid(e.levelImage, lvl)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(leftPanelWidth, 0)
	screen.DrawImage(e.levelImage, op)

	e.drawBrushPreview(screen, elapsed)
	ebitenutil.DebugPrintAt(screen, e.statusLine(lvl), leftPanelWidth+8, screen.Bounds().Dy()-20)
}

// drawBrushPreview shows the sprite of the object about to be placed, pinned
// to the top-right corner. Animated sprites animate in the preview too.
func (e *Editor) drawBrushPreview(screen *ebiten.Image, elapsed time.Duration) {
	if e.doc.Selection.Object == nil {
		return
	}
	o, err := e.doc.ObjectAt(*e.doc.Selection.Object)
	if err != nil || o.SpriteIndex == nil {
		return
	}
	sp, err := e.doc.SpriteAt(*o.SpriteIndex)
	if err != nil {
		return
	}
	img := e.cache.Frame(sp.Image, elapsed)
	if img == nil {
		return
	}
	x := float64(screen.Bounds().Dx() - img.Bounds().Dx() - 20)
	render.FillRect(screen, x-4, 12, float64(img.Bounds().Dx()+8), float64(img.Bounds().Dy()+8), color.RGBA{A: 120})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, 16)
	screen.DrawImage(img, op)
}

func (e *Editor) drawGrid(dst *ebiten.Image, lvl *project.Level) {
	g := e.settings.GridSize
	for x := g; x < lvl.Width; x += g {
		render.FillRect(dst, float64(x), 0, 1, float64(lvl.Height), gridLineColor)
	}
	for y := g; y < lvl.Height; y += g {
		render.FillRect(dst, 0, float64(y), float64(lvl.Width), 1, gridLineColor)
	}
}

func (e *Editor) statusLine(lvl *project.Level) string {
	placing := "none"
	if e.doc.Selection.Object != nil {
		if o, err := e.doc.ObjectAt(*e.doc.Selection.Object); err == nil {
			placing = o.Name
		}
	}
	grid := "off"
	if e.settings.ShowGrid {
		grid = fmt.Sprintf("%dpx", e.settings.GridSize)
	}
	dirty := ""
	if e.dirty {
		dirty = "  *unsaved*"
	}
	return fmt.Sprintf("%s  %dx%d  |  placing: %s  |  grid: %s%s",
		lvl.Name, lvl.Width, lvl.Height, placing, grid, dirty)
}
