package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/gamemaker/project"
	"github.com/milk9111/gamemaker/render"
)

const leftPanelWidth = 280

// set in main once clipboard.Init succeeds
var clipboardReady bool

// Editor is the Ebiten game driving the level editor: the project document,
// the left resource panel, the level canvas, and the modal prompt.
type Editor struct {
	doc    *project.Document
	ui     *ebitenui.UI
	panel  *Panel
	prompt *Prompt
	cache  *render.FrameCache

	store    *settingsStore
	settings Settings

	path  string
	dirty bool

	levelImage *ebiten.Image
	started    time.Time

	dragging           bool
	dragIndex          int
	dragOffX, dragOffY int
}

func NewEditor(path string, store *settingsStore, settings Settings) *Editor {
	e := &Editor{
		prompt:    NewPrompt(),
		cache:     render.NewFrameCache(),
		store:     store,
		settings:  settings,
		started:   time.Now(),
		dragIndex: -1,
	}
	if path != "" {
		doc, err := loadDocument(path)
		if err != nil {
			log.Printf("editor: %v", err)
		} else {
			e.doc = doc
			e.path = path
		}
	}
	if e.doc == nil {
		e.doc = seededDocument()
	}
	e.ui, e.panel = buildEditorUI(e)
	e.panel.Refresh(e.doc)
	return e
}

// seededDocument is the starter project a fresh editor opens with: one of
// each resource so every panel section has something to click.
func seededDocument() *project.Document {
	d := project.NewDocument()
	d.AddBackground(project.Background{
		Name:  "Background 1",
		Mode:  project.BackgroundColor,
		Color: project.DefaultBackgroundColor,
		Image: project.NewBackgroundImage(nil, "PNG"),
		Tiled: true,
	})
	d.AddSprite(project.Sprite{Name: "Sprite 1", Image: project.NewSpriteImage(nil, "PNG")})
	d.AddObject(project.ObjectType{Name: "Object 1", SpriteIndex: intp(0)})
	d.AddLevel("Level 1", 0, 0)
	d.Selection = project.Selection{Level: intp(0), Object: intp(0), Background: intp(0)}
	return d
}

func loadDocument(path string) (*project.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("editor: read %s: %w", path, err)
	}
	doc, err := project.Deserialize(b)
	if err != nil {
		return nil, fmt.Errorf("editor: load %s: %w", path, err)
	}
	return doc, nil
}

func intp(i int) *int { return &i }

func (e *Editor) Update() error {
	if e.prompt.Update() {
		return nil
	}
	e.ui.Update()
	e.handleHotkeys()
	if !ebuiinput.UIHovered {
		e.updateCanvas()
	}
	return nil
}

func (e *Editor) handleHotkeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		e.save(shift)
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		e.openProject()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		e.newProject()
	}
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		e.copyToClipboard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if ctrl {
			e.settings.GridSize = nextGridSize(e.settings.GridSize)
		} else {
			e.settings.ShowGrid = !e.settings.ShowGrid
		}
		e.store.Save(e.settings)
	}
}

func (e *Editor) save(saveAs bool) {
	if saveAs || e.path == "" {
		initial := e.path
		if initial == "" {
			initial = "project.json"
		}
		e.prompt.Open("Save project as:", initial, func(s string) {
			s = strings.TrimSpace(s)
			if s == "" {
				return
			}
			e.saveTo(s)
		})
		return
	}
	e.saveTo(e.path)
}

func (e *Editor) saveTo(path string) {
	data, err := project.Serialize(e.doc)
	if err != nil {
		log.Printf("editor: save: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("editor: save %s: %v", path, err)
		return
	}
	e.path = path
	e.dirty = false
	e.settings.LastProject = path
	if w, h := ebiten.WindowSize(); w > 0 && h > 0 {
		e.settings.WindowWidth = w
		e.settings.WindowHeight = h
	}
	e.store.Save(e.settings)
	log.Printf("editor: saved %s", path)
}

func (e *Editor) openProject() {
	initial := e.path
	if initial == "" {
		initial = e.settings.LastProject
	}
	e.prompt.Open("Open project:", initial, func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		doc, err := loadDocument(s)
		if err != nil {
			log.Printf("editor: open: %v", err)
			return
		}
		e.doc = doc
		e.path = s
		e.dirty = false
		e.cache.Reset()
		e.settings.LastProject = s
		e.store.Save(e.settings)
		e.panel.Refresh(e.doc)
	})
}

func (e *Editor) newProject() {
	e.prompt.Open("Discard current project and start over? (y/n)", "", func(s string) {
		if strings.ToLower(strings.TrimSpace(s)) != "y" {
			return
		}
		e.doc = seededDocument()
		e.path = ""
		e.dirty = false
		e.cache.Reset()
		e.panel.Refresh(e.doc)
	})
}

func (e *Editor) copyToClipboard() {
	if !clipboardReady {
		log.Println("editor: clipboard unavailable")
		return
	}
	data, err := project.Serialize(e.doc)
	if err != nil {
		log.Printf("editor: copy: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Println("editor: project copied to clipboard")
}

// markDirty records an edit and syncs the panel with the document.
func (e *Editor) markDirty() {
	e.dirty = true
	e.panel.Refresh(e.doc)
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})
	e.drawCanvas(screen)
	e.ui.Draw(screen)
	e.prompt.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
