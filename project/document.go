package project

import (
	"fmt"
	"strings"
)

// Document is the complete in-memory project: four index-addressed resource
// collections plus the selection state. Every cross-collection reference is
// a positional index; mutating operations keep them valid (see integrity.go).
//
// All operations run to completion synchronously, so a renderer reading the
// document between operations always observes a fully-settled state.
type Document struct {
	Backgrounds []Background
	Sprites     []Sprite
	Objects     []ObjectType
	Levels      []Level
	Selection   Selection
}

// NewDocument returns an empty project.
func NewDocument() *Document {
	return &Document{}
}

func validIndex[T any](s []T, i int) bool {
	return i >= 0 && i < len(s)
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}

func indexPtr(i int) *int {
	return &i
}

func blankName(name string) bool {
	return strings.TrimSpace(name) == ""
}

// --- Backgrounds ---

// AddBackground appends and returns the new index.
func (d *Document) AddBackground(bg Background) int {
	d.Backgrounds = append(d.Backgrounds, bg)
	return len(d.Backgrounds) - 1
}

// UpdateBackground replaces the entry at i.
func (d *Document) UpdateBackground(i int, bg Background) error {
	if !validIndex(d.Backgrounds, i) {
		return fmt.Errorf("background %d: %w", i, ErrOutOfRange)
	}
	d.Backgrounds[i] = bg
	return nil
}

// RenameBackground sets a new name; blank names are rejected and the prior
// name kept.
func (d *Document) RenameBackground(i int, name string) error {
	if !validIndex(d.Backgrounds, i) {
		return fmt.Errorf("background %d: %w", i, ErrOutOfRange)
	}
	if blankName(name) {
		return fmt.Errorf("background name: %w", ErrInvalidInput)
	}
	d.Backgrounds[i].Name = name
	return nil
}

// RemoveBackground deletes the entry at i and cascades into every level
// referencing it, atomically with the removal.
func (d *Document) RemoveBackground(i int) error {
	if !validIndex(d.Backgrounds, i) {
		return fmt.Errorf("background %d: %w", i, ErrOutOfRange)
	}
	d.Backgrounds = removeAt(d.Backgrounds, i)
	d.backgroundRemoved(i)
	return nil
}

// BackgroundAt returns the entry at i.
func (d *Document) BackgroundAt(i int) (*Background, error) {
	if !validIndex(d.Backgrounds, i) {
		return nil, fmt.Errorf("background %d: %w", i, ErrOutOfRange)
	}
	return &d.Backgrounds[i], nil
}

// MoveBackground swaps the entries at i and j and remaps every reference.
func (d *Document) MoveBackground(i, j int) error {
	if !validIndex(d.Backgrounds, i) || !validIndex(d.Backgrounds, j) {
		return fmt.Errorf("background move %d<->%d: %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	d.Backgrounds[i], d.Backgrounds[j] = d.Backgrounds[j], d.Backgrounds[i]
	d.backgroundsSwapped(i, j)
	return nil
}

// --- Sprites ---

// AddSprite appends and returns the new index.
func (d *Document) AddSprite(s Sprite) int {
	d.Sprites = append(d.Sprites, s)
	return len(d.Sprites) - 1
}

// UpdateSprite replaces the entry at i.
func (d *Document) UpdateSprite(i int, s Sprite) error {
	if !validIndex(d.Sprites, i) {
		return fmt.Errorf("sprite %d: %w", i, ErrOutOfRange)
	}
	d.Sprites[i] = s
	return nil
}

// RenameSprite sets a new name; blank names are rejected.
func (d *Document) RenameSprite(i int, name string) error {
	if !validIndex(d.Sprites, i) {
		return fmt.Errorf("sprite %d: %w", i, ErrOutOfRange)
	}
	if blankName(name) {
		return fmt.Errorf("sprite name: %w", ErrInvalidInput)
	}
	d.Sprites[i].Name = name
	return nil
}

// RemoveSprite deletes the entry at i and cascades into every object type
// referencing it.
func (d *Document) RemoveSprite(i int) error {
	if !validIndex(d.Sprites, i) {
		return fmt.Errorf("sprite %d: %w", i, ErrOutOfRange)
	}
	d.Sprites = removeAt(d.Sprites, i)
	d.spriteRemoved(i)
	return nil
}

// SpriteAt returns the entry at i.
func (d *Document) SpriteAt(i int) (*Sprite, error) {
	if !validIndex(d.Sprites, i) {
		return nil, fmt.Errorf("sprite %d: %w", i, ErrOutOfRange)
	}
	return &d.Sprites[i], nil
}

// MoveSprite swaps the entries at i and j and remaps every reference.
func (d *Document) MoveSprite(i, j int) error {
	if !validIndex(d.Sprites, i) || !validIndex(d.Sprites, j) {
		return fmt.Errorf("sprite move %d<->%d: %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	d.Sprites[i], d.Sprites[j] = d.Sprites[j], d.Sprites[i]
	d.spritesSwapped(i, j)
	return nil
}

// --- Object types ---

// AddObject appends and returns the new index.
func (d *Document) AddObject(o ObjectType) int {
	d.Objects = append(d.Objects, o)
	return len(d.Objects) - 1
}

// UpdateObject replaces the entry at i. A non-nil sprite index must resolve.
func (d *Document) UpdateObject(i int, o ObjectType) error {
	if !validIndex(d.Objects, i) {
		return fmt.Errorf("object %d: %w", i, ErrOutOfRange)
	}
	if o.SpriteIndex != nil && !validIndex(d.Sprites, *o.SpriteIndex) {
		return fmt.Errorf("object %d sprite %d: %w", i, *o.SpriteIndex, ErrOutOfRange)
	}
	d.Objects[i] = o
	return nil
}

// RenameObject sets a new name; blank names are rejected.
func (d *Document) RenameObject(i int, name string) error {
	if !validIndex(d.Objects, i) {
		return fmt.Errorf("object %d: %w", i, ErrOutOfRange)
	}
	if blankName(name) {
		return fmt.Errorf("object name: %w", ErrInvalidInput)
	}
	d.Objects[i].Name = name
	return nil
}

// RemoveObject deletes the entry at i. Instances of the removed type are
// deleted from every level; instances of later types renumber, all in the
// same operation.
func (d *Document) RemoveObject(i int) error {
	if !validIndex(d.Objects, i) {
		return fmt.Errorf("object %d: %w", i, ErrOutOfRange)
	}
	d.Objects = removeAt(d.Objects, i)
	d.objectRemoved(i)
	return nil
}

// ObjectAt returns the entry at i.
func (d *Document) ObjectAt(i int) (*ObjectType, error) {
	if !validIndex(d.Objects, i) {
		return nil, fmt.Errorf("object %d: %w", i, ErrOutOfRange)
	}
	return &d.Objects[i], nil
}

// MoveObject swaps the entries at i and j and remaps every reference.
func (d *Document) MoveObject(i, j int) error {
	if !validIndex(d.Objects, i) || !validIndex(d.Objects, j) {
		return fmt.Errorf("object move %d<->%d: %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	d.Objects[i], d.Objects[j] = d.Objects[j], d.Objects[i]
	d.objectsSwapped(i, j)
	return nil
}

// --- Levels ---

// AddLevel appends a level and returns the new index. Non-positive
// dimensions take the 640x360 default; the background defaults to the first
// existing background, or none.
func (d *Document) AddLevel(name string, width, height int) int {
	if width <= 0 {
		width = DefaultLevelWidth
	}
	if height <= 0 {
		height = DefaultLevelHeight
	}
	var bg *int
	if len(d.Backgrounds) > 0 {
		bg = indexPtr(0)
	}
	d.Levels = append(d.Levels, Level{
		Name:            name,
		Width:           width,
		Height:          height,
		BackgroundIndex: bg,
	})
	return len(d.Levels) - 1
}

// RenameLevel sets a new name; blank names are rejected.
func (d *Document) RenameLevel(i int, name string) error {
	if !validIndex(d.Levels, i) {
		return fmt.Errorf("level %d: %w", i, ErrOutOfRange)
	}
	if blankName(name) {
		return fmt.Errorf("level name: %w", ErrInvalidInput)
	}
	d.Levels[i].Name = name
	return nil
}

// RemoveLevel deletes the level at i. Levels have no dependents; only the
// selection is fixed up (clamped to the last remaining level).
func (d *Document) RemoveLevel(i int) error {
	if !validIndex(d.Levels, i) {
		return fmt.Errorf("level %d: %w", i, ErrOutOfRange)
	}
	d.Levels = removeAt(d.Levels, i)
	d.levelRemoved(i)
	return nil
}

// LevelAt returns the level at i.
func (d *Document) LevelAt(i int) (*Level, error) {
	if !validIndex(d.Levels, i) {
		return nil, fmt.Errorf("level %d: %w", i, ErrOutOfRange)
	}
	return &d.Levels[i], nil
}

// MoveLevel swaps the levels at i and j and remaps the selection.
func (d *Document) MoveLevel(i, j int) error {
	if !validIndex(d.Levels, i) || !validIndex(d.Levels, j) {
		return fmt.Errorf("level move %d<->%d: %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	d.Levels[i], d.Levels[j] = d.Levels[j], d.Levels[i]
	d.Selection.Level = swapRef(d.Selection.Level, i, j)
	return nil
}
