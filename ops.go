package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/gamemaker/project"
)

// Panel button and list callbacks. Button callbacks receive the selected row
// of their section's list; ok is false when nothing is selected.

func (e *Editor) selectBackground(i int) {
	e.doc.Selection.Background = intp(i)
}

func (e *Editor) selectObject(i int) {
	e.doc.Selection.Object = intp(i)
}

func (e *Editor) selectLevel(i int) {
	e.doc.Selection.Level = intp(i)
	e.dragging = false
}

func (e *Editor) promptRename(kind, current string, apply func(string) error) {
	e.prompt.Open(kind+" name:", current, func(s string) {
		if err := apply(s); err != nil {
			log.Printf("editor: rename: %v", err)
			return
		}
		e.markDirty()
	})
}

func (e *Editor) confirmDelete(what string, remove func() error) {
	e.prompt.Open(fmt.Sprintf("Delete %s? (y/n)", what), "", func(s string) {
		if strings.ToLower(strings.TrimSpace(s)) != "y" {
			return
		}
		if err := remove(); err != nil {
			log.Printf("editor: delete: %v", err)
			return
		}
		e.dragging = false
		e.markDirty()
	})
}

// parseColor reads "r,g,b" or "r,g,b,a" with components in 0-255.
func parseColor(s string) (project.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return project.RGBA{}, errors.New("want r,g,b or r,g,b,a")
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return project.RGBA{}, fmt.Errorf("bad component %q", strings.TrimSpace(p))
		}
		vals[i] = v
	}
	c := project.RGBA{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2]), A: 255}
	if len(vals) == 4 {
		c.A = uint8(vals[3])
	}
	return c, nil
}

// formatFromPath derives the stored image format tag from a file extension.
func formatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToUpper(filepath.Ext(path)), ".")
	switch ext {
	case "":
		return "PNG"
	case "JPG":
		return "JPEG"
	default:
		return ext
	}
}

// --- Backgrounds ---

func (e *Editor) addBackground() {
	name := fmt.Sprintf("Background %d", len(e.doc.Backgrounds)+1)
	e.prompt.Open("Background name:", name, func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		i := e.doc.AddBackground(project.Background{
			Name:  s,
			Mode:  project.BackgroundColor,
			Color: project.DefaultBackgroundColor,
			Image: project.NewBackgroundImage(nil, "PNG"),
			Tiled: true,
		})
		e.doc.Selection.Background = intp(i)
		e.markDirty()
	})
}

func (e *Editor) renameBackground(i int, ok bool) {
	if !ok {
		return
	}
	bg, err := e.doc.BackgroundAt(i)
	if err != nil {
		return
	}
	e.promptRename("Background", bg.Name, func(name string) error {
		return e.doc.RenameBackground(i, name)
	})
}

func (e *Editor) deleteBackground(i int, ok bool) {
	if !ok {
		return
	}
	bg, err := e.doc.BackgroundAt(i)
	if err != nil {
		return
	}
	e.confirmDelete(fmt.Sprintf("background %q", bg.Name), func() error {
		return e.doc.RemoveBackground(i)
	})
}

func (e *Editor) moveBackgroundUp(i int, ok bool) {
	if !ok || i == 0 {
		return
	}
	if err := e.doc.MoveBackground(i, i-1); err != nil {
		return
	}
	e.markDirty()
}

func (e *Editor) moveBackgroundDown(i int, ok bool) {
	if !ok || i >= len(e.doc.Backgrounds)-1 {
		return
	}
	if err := e.doc.MoveBackground(i, i+1); err != nil {
		return
	}
	e.markDirty()
}

func (e *Editor) setBackgroundColor(i int, ok bool) {
	if !ok {
		return
	}
	bg, err := e.doc.BackgroundAt(i)
	if err != nil {
		return
	}
	cur := fmt.Sprintf("%d,%d,%d", bg.Color.R, bg.Color.G, bg.Color.B)
	e.prompt.Open("Color (r,g,b):", cur, func(s string) {
		c, err := parseColor(s)
		if err != nil {
			log.Printf("editor: color: %v", err)
			return
		}
		bg, err := e.doc.BackgroundAt(i)
		if err != nil {
			return
		}
		bg.Color = c
		bg.Mode = project.BackgroundColor
		e.markDirty()
	})
}

func (e *Editor) setBackgroundImage(i int, ok bool) {
	if !ok {
		return
	}
	e.prompt.Open("Image file:", "", func(s string) {
		path := strings.TrimSpace(s)
		if path == "" {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("editor: image: %v", err)
			return
		}
		bg, err := e.doc.BackgroundAt(i)
		if err != nil {
			return
		}
		e.cache.Invalidate(bg.Image)
		bg.Image = project.NewBackgroundImage(data, formatFromPath(path))
		bg.Mode = project.BackgroundImage
		e.markDirty()
	})
}

func (e *Editor) toggleBackgroundTiled(i int, ok bool) {
	if !ok {
		return
	}
	bg, err := e.doc.BackgroundAt(i)
	if err != nil {
		return
	}
	bg.Tiled = !bg.Tiled
	e.markDirty()
}

// --- Sprites ---

func (e *Editor) addSprite() {
	name := fmt.Sprintf("Sprite %d", len(e.doc.Sprites)+1)
	e.prompt.Open("Sprite name:", name, func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		e.doc.AddSprite(project.Sprite{Name: s, Image: project.NewSpriteImage(nil, "PNG")})
		e.markDirty()
	})
}

func (e *Editor) renameSprite(i int, ok bool) {
	if !ok {
		return
	}
	sp, err := e.doc.SpriteAt(i)
	if err != nil {
		return
	}
	e.promptRename("Sprite", sp.Name, func(name string) error {
		return e.doc.RenameSprite(i, name)
	})
}

func (e *Editor) deleteSprite(i int, ok bool) {
	if !ok {
		return
	}
	sp, err := e.doc.SpriteAt(i)
	if err != nil {
		return
	}
	e.confirmDelete(fmt.Sprintf("sprite %q", sp.Name), func() error {
		return e.doc.RemoveSprite(i)
	})
}

func (e *Editor) moveSpriteUp(i int, ok bool) {
	if !ok || i == 0 {
		return
	}
	if err := e.doc.MoveSprite(i, i-1); err != nil {
		return
	}
	e.markDirty()
}

func (e *Editor) moveSpriteDown(i int, ok bool) {
	if !ok || i >= len(e.doc.Sprites)-1 {
		return
	}
	if err := e.doc.MoveSprite(i, i+1); err != nil {
		return
	}
	e.markDirty()
}

func (e *Editor) loadSpriteImage(i int, ok bool) {
	if !ok {
		return
	}
	e.prompt.Open("Image file:", "", func(s string) {
		path := strings.TrimSpace(s)
		if path == "" {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("editor: image: %v", err)
			return
		}
		sp, err := e.doc.SpriteAt(i)
		if err != nil {
			return
		}
		e.cache.Invalidate(sp.Image)
		sp.Image = project.NewSpriteImage(data, formatFromPath(path))
		e.markDirty()
	})
}

// --- Objects ---

func (e *Editor) addObject() {
	name := fmt.Sprintf("Object %d", len(e.doc.Objects)+1)
	e.prompt.Open("Object name:", name, func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		o := project.ObjectType{Name: s}
		if len(e.doc.Sprites) > 0 {
			o.SpriteIndex = intp(0)
		}
		i := e.doc.AddObject(o)
		e.doc.Selection.Object = intp(i)
		e.markDirty()
	})
}

func (e *Editor) renameObject(i int, ok bool) {
	if !ok {
		return
	}
	o, err := e.doc.ObjectAt(i)
	if err != nil {
		return
	}
	e.promptRename("Object", o.Name, func(name string) error {
		return e.doc.RenameObject(i, name)
	})
}

func (e *Editor) deleteObject(i int, ok bool) {
	if !ok {
		return
	}
	o, err := e.doc.ObjectAt(i)
	if err != nil {
		return
	}
	e.confirmDelete(fmt.Sprintf("object %q and all its instances", o.Name), func() error {
		return e.doc.RemoveObject(i)
	})
}

func (e *Editor) moveObjectUp(i int, ok bool) {
	if !ok || i == 0 {
		return
	}
	if err := e.doc.MoveObject(i, i-1); err != nil {
		return
	}
	e.markDirty()
}

func (e *Editor) moveObjectDown(i int, ok bool) {
	if !ok || i >= len(e.doc.Objects)-1 {
		return
	}
	if err := e.doc.MoveObject(i, i+1); err != nil {
		return
	}
	e.markDirty()
}

func (e *Editor) setObjectSprite(i int, ok bool) {
	if !ok {
		return
	}
	o, err := e.doc.ObjectAt(i)
	if err != nil {
		return
	}
	cur := ""
	if o.SpriteIndex != nil {
		cur = strconv.Itoa(*o.SpriteIndex + 1)
	}
	e.prompt.Open("Sprite number (blank for none):", cur, func(s string) {
		o, err := e.doc.ObjectAt(i)
		if err != nil {
			return
		}
		next := *o
		s = strings.TrimSpace(s)
		if s == "" {
			next.SpriteIndex = nil
		} else {
			n, err := strconv.Atoi(s)
			if err != nil {
				log.Printf("editor: sprite number: %v", err)
				return
			}
			next.SpriteIndex = intp(n - 1)
		}
		if err := e.doc.UpdateObject(i, next); err != nil {
			log.Printf("editor: %v", err)
			return
		}
		e.markDirty()
	})
}

// --- Levels ---

func (e *Editor) addLevel() {
	name := fmt.Sprintf("Level %d", len(e.doc.Levels)+1)
	e.prompt.Open("Level name:", name, func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		i := e.doc.AddLevel(s, 0, 0)
		e.doc.Selection.Level = intp(i)
		e.markDirty()
	})
}

func (e *Editor) renameLevel(i int, ok bool) {
	if !ok {
		return
	}
	lvl, err := e.doc.LevelAt(i)
	if err != nil {
		return
	}
	e.promptRename("Level", lvl.Name, func(name string) error {
		return e.doc.RenameLevel(i, name)
	})
}

func (e *Editor) deleteLevel(i int, ok bool) {
	if !ok {
		return
	}
	lvl, err := e.doc.LevelAt(i)
	if err != nil {
		return
	}
	e.confirmDelete(fmt.Sprintf("level %q", lvl.Name), func() error {
		return e.doc.RemoveLevel(i)
	})
}

func (e *Editor) moveLevelUp(i int, ok bool) {
	if !ok || i == 0 {
		return
	}
	if err := e.doc.MoveLevel(i, i-1); err != nil {
		return
	}
	e.markDirty()
}

func (e *Editor) moveLevelDown(i int, ok bool) {
	if !ok || i >= len(e.doc.Levels)-1 {
		return
	}
	if err := e.doc.MoveLevel(i, i+1); err != nil {
		return
	}
	e.markDirty()
}

func (e *Editor) resizeLevel(i int, ok bool) {
	if !ok {
		return
	}
	lvl, err := e.doc.LevelAt(i)
	if err != nil {
		return
	}
	cur := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
	e.prompt.Open("Level size (WxH):", cur, func(s string) {
		parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
		if len(parts) != 2 {
			log.Printf("editor: size: want WxH, got %q", s)
			return
		}
		w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
		h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errW != nil || errH != nil {
			log.Printf("editor: size: want WxH, got %q", s)
			return
		}
		if err := e.doc.ResizeLevel(i, w, h); err != nil {
			log.Printf("editor: %v", err)
			return
		}
		e.markDirty()
	})
}

func (e *Editor) setLevelBackground(i int, ok bool) {
	if !ok {
		return
	}
	lvl, err := e.doc.LevelAt(i)
	if err != nil {
		return
	}
	cur := ""
	if lvl.BackgroundIndex != nil {
		cur = strconv.Itoa(*lvl.BackgroundIndex + 1)
	}
	e.prompt.Open("Background number (blank for none):", cur, func(s string) {
		s = strings.TrimSpace(s)
		var bg *int
		if s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				log.Printf("editor: background number: %v", err)
				return
			}
			bg = intp(n - 1)
		}
		if err := e.doc.SetLevelBackground(i, bg); err != nil {
			log.Printf("editor: %v", err)
			return
		}
		e.markDirty()
	})
}
