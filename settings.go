package main

import (
	"log"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

const settingsItem = "settings.yaml"

// gridSizes are the cycleable grid spacings, in pixels.
var gridSizes = []int{8, 16, 32, 64, 128}

const defaultGridSize = 32

// Settings are the editor preferences persisted between sessions.
type Settings struct {
	GridSize     int    `yaml:"grid_size"`
	ShowGrid     bool   `yaml:"show_grid"`
	LastProject  string `yaml:"last_project"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

func defaultSettings() Settings {
	return Settings{
		GridSize:     defaultGridSize,
		ShowGrid:     true,
		WindowWidth:  1280,
		WindowHeight: 720,
	}
}

func validGridSize(g int) bool {
	for _, s := range gridSizes {
		if s == g {
			return true
		}
	}
	return false
}

// nextGridSize cycles to the next spacing, wrapping after the largest.
func nextGridSize(g int) int {
	for i, s := range gridSizes {
		if s == g {
			return gridSizes[(i+1)%len(gridSizes)]
		}
	}
	return defaultGridSize
}

// settingsStore persists Settings in the platform's per-app data directory.
// A nil manager means storage is unavailable; loads return defaults and
// saves are dropped.
type settingsStore struct {
	manager *gdata.Manager
}

func openSettingsStore() *settingsStore {
	m, err := gdata.Open(gdata.Config{
		AppName: "gamemaker",
	})
	if err != nil {
		log.Printf("editor: settings storage unavailable: %v", err)
		return &settingsStore{}
	}
	return &settingsStore{manager: m}
}

func (s *settingsStore) Load() Settings {
	out := defaultSettings()
	if s.manager == nil {
		return out
	}
	data, err := s.manager.LoadItem(settingsItem)
	if err != nil {
		log.Printf("editor: could not load settings: %v", err)
		return out
	}
	if len(data) == 0 {
		return out
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		log.Printf("editor: ignoring unreadable settings: %v", err)
		return defaultSettings()
	}
	if !validGridSize(out.GridSize) {
		out.GridSize = defaultGridSize
	}
	if out.WindowWidth <= 0 || out.WindowHeight <= 0 {
		out.WindowWidth = 1280
		out.WindowHeight = 720
	}
	return out
}

func (s *settingsStore) Save(st Settings) {
	if s.manager == nil {
		return
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		log.Printf("editor: could not serialize settings: %v", err)
		return
	}
	if err := s.manager.SaveItem(settingsItem, data); err != nil {
		log.Printf("editor: could not save settings: %v", err)
	}
}
