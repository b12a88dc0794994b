package project

// Reference integrity engine. Every structural mutation of a referenced
// collection calls exactly one of these, inside the same operation as the
// mutation, so no caller ever observes a half-cascaded document.
//
// Removal rules for a dependent reference r and removed index k:
//   - r == k: the reference is nulled, except object instances, which are
//     removed outright (an instance cannot exist without its type)
//   - r > k:  decremented by one (positional indices renumber on delete)
//   - r < k:  unchanged

// removedRef applies the null/decrement rule, returning the updated
// reference (nil when it pointed at the removed entry).
func removedRef(ref *int, removed int) *int {
	if ref == nil {
		return nil
	}
	switch {
	case *ref == removed:
		return nil
	case *ref > removed:
		return indexPtr(*ref - 1)
	default:
		return ref
	}
}

// swapRef remaps a reference after the entries at i and j traded places.
func swapRef(ref *int, i, j int) *int {
	if ref == nil {
		return nil
	}
	switch *ref {
	case i:
		return indexPtr(j)
	case j:
		return indexPtr(i)
	default:
		return ref
	}
}

func (d *Document) backgroundRemoved(removed int) {
	for li := range d.Levels {
		d.Levels[li].BackgroundIndex = removedRef(d.Levels[li].BackgroundIndex, removed)
	}
	d.Selection.Background = nil
}

func (d *Document) backgroundsSwapped(i, j int) {
	for li := range d.Levels {
		d.Levels[li].BackgroundIndex = swapRef(d.Levels[li].BackgroundIndex, i, j)
	}
	d.Selection.Background = swapRef(d.Selection.Background, i, j)
}

func (d *Document) spriteRemoved(removed int) {
	for oi := range d.Objects {
		d.Objects[oi].SpriteIndex = removedRef(d.Objects[oi].SpriteIndex, removed)
	}
}

func (d *Document) spritesSwapped(i, j int) {
	for oi := range d.Objects {
		d.Objects[oi].SpriteIndex = swapRef(d.Objects[oi].SpriteIndex, i, j)
	}
}

func (d *Document) objectRemoved(removed int) {
	for li := range d.Levels {
		lvl := &d.Levels[li]
		kept := lvl.Instances[:0]
		for _, inst := range lvl.Instances {
			if inst.ObjectIndex == removed {
				continue
			}
			if inst.ObjectIndex > removed {
				inst.ObjectIndex--
			}
			kept = append(kept, inst)
		}
		lvl.Instances = kept
	}
	d.Selection.Object = nil
}

func (d *Document) objectsSwapped(i, j int) {
	for li := range d.Levels {
		for ii := range d.Levels[li].Instances {
			inst := &d.Levels[li].Instances[ii]
			switch inst.ObjectIndex {
			case i:
				inst.ObjectIndex = j
			case j:
				inst.ObjectIndex = i
			}
		}
	}
	d.Selection.Object = swapRef(d.Selection.Object, i, j)
}

// levelRemoved keeps the level selection pointing at an existing level, the
// way the editor's level list behaves: clamp to the last remaining entry.
func (d *Document) levelRemoved(removed int) {
	if len(d.Levels) == 0 {
		d.Selection.Level = nil
		return
	}
	sel := removed
	if sel > len(d.Levels)-1 {
		sel = len(d.Levels) - 1
	}
	d.Selection.Level = indexPtr(sel)
}
