package project

import "fmt"

// Level operations. These live on Document because hit testing and placement
// validation resolve object types and sprites through the document's
// collections.

// PlaceInstance appends an instance to the level. Coordinates are accepted
// as given (callers snap to their grid); the object index must resolve.
func (d *Document) PlaceInstance(levelIndex, x, y, objectIndex int) error {
	lvl, err := d.LevelAt(levelIndex)
	if err != nil {
		return err
	}
	if !validIndex(d.Objects, objectIndex) {
		return fmt.Errorf("place object %d: %w", objectIndex, ErrOutOfRange)
	}
	lvl.Instances = append(lvl.Instances, Instance{X: x, Y: y, ObjectIndex: objectIndex})
	return nil
}

// instanceSize resolves the drawable size of an instance through its object
// type's sprite. ok is false when the object has no resolvable sprite, in
// which case the instance is not drawn and can never be hit.
func (d *Document) instanceSize(inst Instance) (w, h int, ok bool) {
	if !validIndex(d.Objects, inst.ObjectIndex) {
		return 0, 0, false
	}
	si := d.Objects[inst.ObjectIndex].SpriteIndex
	if si == nil || !validIndex(d.Sprites, *si) {
		return 0, 0, false
	}
	w, h = d.Sprites[*si].Image.Size()
	return w, h, true
}

func instanceContains(inst Instance, w, h, px, py int) bool {
	return px >= inst.X && px <= inst.X+w && py >= inst.Y && py <= inst.Y+h
}

// HitTest returns the index of the topmost instance whose inclusive bounds
// contain (px, py). Later-placed (or most recently brought-to-front)
// instances win ties.
func (d *Document) HitTest(levelIndex, px, py int) (int, bool) {
	lvl, err := d.LevelAt(levelIndex)
	if err != nil {
		return 0, false
	}
	for i := len(lvl.Instances) - 1; i >= 0; i-- {
		inst := lvl.Instances[i]
		w, h, ok := d.instanceSize(inst)
		if !ok {
			continue
		}
		if instanceContains(inst, w, h, px, py) {
			return i, true
		}
	}
	return 0, false
}

// BringToFront moves the instance to the end of the paint order, so it draws
// on top and is checked first by HitTest. Called implicitly when an instance
// is picked up for dragging.
func (d *Document) BringToFront(levelIndex, instanceIndex int) error {
	lvl, err := d.LevelAt(levelIndex)
	if err != nil {
		return err
	}
	if !validIndex(lvl.Instances, instanceIndex) {
		return fmt.Errorf("instance %d: %w", instanceIndex, ErrOutOfRange)
	}
	inst := lvl.Instances[instanceIndex]
	lvl.Instances = append(removeAt(lvl.Instances, instanceIndex), inst)
	return nil
}

// MoveInstance updates an instance's position (drag).
func (d *Document) MoveInstance(levelIndex, instanceIndex, x, y int) error {
	lvl, err := d.LevelAt(levelIndex)
	if err != nil {
		return err
	}
	if !validIndex(lvl.Instances, instanceIndex) {
		return fmt.Errorf("instance %d: %w", instanceIndex, ErrOutOfRange)
	}
	lvl.Instances[instanceIndex].X = x
	lvl.Instances[instanceIndex].Y = y
	return nil
}

// DeleteInstanceAt removes the topmost instance hit at (px, py). It reports
// whether anything was removed; a miss is a no-op.
func (d *Document) DeleteInstanceAt(levelIndex, px, py int) bool {
	i, ok := d.HitTest(levelIndex, px, py)
	if !ok {
		return false
	}
	lvl := &d.Levels[levelIndex]
	lvl.Instances = removeAt(lvl.Instances, i)
	return true
}

// ResizeLevel sets new dimensions. Both must be positive; otherwise the
// level keeps its previous size.
func (d *Document) ResizeLevel(levelIndex, width, height int) error {
	lvl, err := d.LevelAt(levelIndex)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("level size %dx%d: %w", width, height, ErrInvalidInput)
	}
	lvl.Width = width
	lvl.Height = height
	return nil
}

// SetLevelBackground points the level at a background, or nil for none. A
// non-nil index must resolve.
func (d *Document) SetLevelBackground(levelIndex int, background *int) error {
	lvl, err := d.LevelAt(levelIndex)
	if err != nil {
		return err
	}
	if background != nil && !validIndex(d.Backgrounds, *background) {
		return fmt.Errorf("background %d: %w", *background, ErrOutOfRange)
	}
	lvl.BackgroundIndex = background
	return nil
}
