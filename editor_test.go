package main

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/gamemaker/project"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    project.RGBA
		wantErr bool
	}{
		{in: "200,200,255", want: project.RGBA{R: 200, G: 200, B: 255, A: 255}},
		{in: " 0 , 0 , 0 ", want: project.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{in: "10,20,30,40", want: project.RGBA{R: 10, G: 20, B: 30, A: 40}},
		{in: "256,0,0", wantErr: true},
		{in: "-1,0,0", wantErr: true},
		{in: "1,2", wantErr: true},
		{in: "1,2,3,4,5", wantErr: true},
		{in: "red,0,0", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseColor(%q) = %+v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseColor(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("parseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"hero.png", "PNG"},
		{"walk.GIF", "GIF"},
		{"photo.jpg", "JPEG"},
		{"photo.jpeg", "JPEG"},
		{"tiles.bmp", "BMP"},
		{"noext", "PNG"},
		{"dir.v2/noext", "PNG"},
	}
	for _, tc := range cases {
		if got := formatFromPath(tc.path); got != tc.want {
			t.Fatalf("formatFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestGridSizeCycle(t *testing.T) {
	got := []int{defaultGridSize}
	for i := 0; i < len(gridSizes)-1; i++ {
		got = append(got, nextGridSize(got[len(got)-1]))
	}
	seen := make(map[int]bool)
	for _, g := range got {
		if !validGridSize(g) {
			t.Fatalf("cycle produced invalid size %d", g)
		}
		if seen[g] {
			t.Fatalf("cycle repeated size %d before covering all: %v", g, got)
		}
		seen[g] = true
	}
	if next := nextGridSize(got[len(got)-1]); next != gridSizes[0] {
		t.Fatalf("cycle should wrap to %d, got %d", gridSizes[0], next)
	}
	if nextGridSize(7) != defaultGridSize {
		t.Fatalf("unknown size should reset to the default")
	}
}

func TestSettingsYAMLRoundTrip(t *testing.T) {
	in := Settings{
		GridSize:     64,
		ShowGrid:     true,
		LastProject:  "demo.json",
		WindowWidth:  1600,
		WindowHeight: 900,
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Settings
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round trip changed settings: %+v -> %+v", in, out)
	}
}

func TestSeededDocument(t *testing.T) {
	d := seededDocument()
	if len(d.Backgrounds) != 1 || len(d.Sprites) != 1 || len(d.Objects) != 1 || len(d.Levels) != 1 {
		t.Fatalf("seeded document should hold one of each resource: %+v", d)
	}
	if d.Selection.Level == nil || *d.Selection.Level != 0 {
		t.Fatalf("level selection = %v, want 0", d.Selection.Level)
	}
	if d.Selection.Object == nil || *d.Selection.Object != 0 {
		t.Fatalf("object selection = %v, want 0", d.Selection.Object)
	}
	lvl := d.Levels[0]
	if lvl.Width != project.DefaultLevelWidth || lvl.Height != project.DefaultLevelHeight {
		t.Fatalf("level = %dx%d, want defaults", lvl.Width, lvl.Height)
	}
	if lvl.BackgroundIndex == nil || *lvl.BackgroundIndex != 0 {
		t.Fatalf("level background = %v, want 0", lvl.BackgroundIndex)
	}
	if d.Objects[0].SpriteIndex == nil || *d.Objects[0].SpriteIndex != 0 {
		t.Fatalf("object sprite = %v, want 0", d.Objects[0].SpriteIndex)
	}
}

func TestSnap(t *testing.T) {
	e := &Editor{settings: Settings{GridSize: 32, ShowGrid: true}}
	cases := []struct {
		in, want int
	}{
		{0, 0},
		{31, 0},
		{32, 32},
		{95, 64},
		{-5, 0},
	}
	for _, tc := range cases {
		if got := e.snap(tc.in); got != tc.want {
			t.Fatalf("snap(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
	e.settings.ShowGrid = false
	if got := e.snap(37); got != 37 {
		t.Fatalf("snap with grid off = %d, want 37", got)
	}
}
