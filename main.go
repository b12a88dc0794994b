package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

func main() {
	projectPath := flag.String("project", "", "project file to open (defaults to the last opened project)")
	flag.Parse()

	log.Println("Editor starting...")

	store := openSettingsStore()
	settings := store.Load()

	path := *projectPath
	if path == "" {
		path = settings.LastProject
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("editor: clipboard unavailable: %v", err)
	} else {
		clipboardReady = true
	}

	e := NewEditor(path, store, settings)

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("gamemaker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil {
		log.Fatal(err)
	}
}
