// Command runner plays back a saved project: it loads the document, picks a
// level, and renders its placed instances in a real-time loop. It is a
// read-only consumer of the editor's output and performs no editing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/gamemaker/project"
	"github.com/milk9111/gamemaker/render"
	"github.com/milk9111/gamemaker/watch"
)

type Runner struct {
	doc        *project.Document
	levelIndex int
	path       string

	cache   *render.FrameCache
	started time.Time
	watcher *watch.Watcher
}

func NewRunner(path string, levelIndex int, watchFile bool) (*Runner, error) {
	doc, err := loadProject(path)
	if err != nil {
		return nil, err
	}
	if levelIndex < 0 || levelIndex >= len(doc.Levels) {
		return nil, fmt.Errorf("runner: level %d not in project (have %d)", levelIndex, len(doc.Levels))
	}

	r := &Runner{
		doc:        doc,
		levelIndex: levelIndex,
		path:       path,
		cache:      render.NewFrameCache(),
		started:    time.Now(),
	}
	if watchFile {
		w, err := watch.NewWatcher(path)
		if err != nil {
			log.Printf("runner: watch disabled: %v", err)
		} else {
			r.watcher = w
		}
	}
	return r, nil
}

func loadProject(path string) (*project.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runner: read %s: %w", path, err)
	}
	doc, err := project.Deserialize(b)
	if err != nil {
		return nil, fmt.Errorf("runner: load %s: %w", path, err)
	}
	return doc, nil
}

func (r *Runner) Update() error {
	if r.watcher == nil {
		return nil
	}
	select {
	case _, ok := <-r.watcher.Events:
		if !ok {
			r.watcher = nil
			return nil
		}
		r.reload()
	case err, ok := <-r.watcher.Errors:
		if ok {
			log.Printf("runner: watch: %v", err)
		}
	default:
	}
	return nil
}

// reload swaps in the updated document. A failed load keeps the current one.
func (r *Runner) reload() {
	doc, err := loadProject(r.path)
	if err != nil {
		log.Printf("runner: reload failed, keeping previous document: %v", err)
		return
	}
	if r.levelIndex >= len(doc.Levels) {
		log.Printf("runner: reload dropped level %d, keeping previous document", r.levelIndex)
		return
	}
	r.doc = doc
	r.cache.Reset()
	log.Printf("runner: reloaded %s", r.path)
}

func (r *Runner) Draw(screen *ebiten.Image) {
	lvl := &r.doc.Levels[r.levelIndex]
	elapsed := time.Since(r.started)
	render.DrawBackground(screen, r.doc, lvl, r.cache, elapsed)
	render.DrawInstances(screen, r.doc, lvl, r.cache, elapsed)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    FPS: %.2f", lvl.Name, ebiten.ActualFPS()))
}

func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	lvl := &r.doc.Levels[r.levelIndex]
	return lvl.Width, lvl.Height
}

func main() {
	projectPath := flag.String("project", "", "path to a saved project .json")
	levelIndex := flag.Int("level", 0, "index of the level to play")
	watchFile := flag.Bool("watch", false, "reload the project when the file changes")
	flag.Parse()

	if *projectPath == "" {
		log.Fatal("runner: -project is required")
	}

	r, err := NewRunner(*projectPath, *levelIndex, *watchFile)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if r.watcher != nil {
			_ = r.watcher.Close()
		}
	}()

	lvl := r.doc.Levels[r.levelIndex]
	ebiten.SetWindowSize(lvl.Width, lvl.Height)
	ebiten.SetWindowTitle("gamemaker runner - " + lvl.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(r); err != nil {
		log.Fatal(err)
	}
}
