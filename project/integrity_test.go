package project

import "testing"

func TestSpriteRemovalCascade(t *testing.T) {
	cases := []struct {
		name    string
		refs    []*int // object sprite indices before deleting sprite 1
		want    []*int
		removed int
	}{
		{
			name:    "equal_nulls_greater_decrements",
			refs:    []*int{intPtr(0), intPtr(1), intPtr(2), nil},
			want:    []*int{intPtr(0), nil, intPtr(1), nil},
			removed: 1,
		},
		{
			name:    "remove_first",
			refs:    []*int{intPtr(0), intPtr(2)},
			want:    []*int{nil, intPtr(1)},
			removed: 0,
		},
		{
			name:    "remove_last",
			refs:    []*int{intPtr(2), intPtr(1)},
			want:    []*int{nil, intPtr(1)},
			removed: 2,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDocument()
			for i := 0; i < 3; i++ {
				d.AddSprite(Sprite{Name: string(rune('A' + i))})
			}
			for i, r := range c.refs {
				d.AddObject(ObjectType{Name: string(rune('a' + i)), SpriteIndex: r})
			}
			if err := d.RemoveSprite(c.removed); err != nil {
				t.Fatalf("remove: %v", err)
			}
			for i, want := range c.want {
				got := d.Objects[i].SpriteIndex
				if (got == nil) != (want == nil) {
					t.Fatalf("object %d sprite index = %v, want %v", i, got, want)
				}
				if got != nil && *got != *want {
					t.Fatalf("object %d sprite index = %d, want %d", i, *got, *want)
				}
			}
			checkIntegrity(t, d)
		})
	}
}

func TestObjectRemovalCascadeDeletesInstances(t *testing.T) {
	d := NewDocument()
	for i := 0; i < 3; i++ {
		d.AddObject(ObjectType{Name: string(rune('A' + i))})
	}
	l0 := d.AddLevel("L1", 0, 0)
	l1 := d.AddLevel("L2", 0, 0)
	mustPlace := func(li, obj int) {
		t.Helper()
		if err := d.PlaceInstance(li, obj*10, 0, obj); err != nil {
			t.Fatalf("place: %v", err)
		}
	}
	mustPlace(l0, 0)
	mustPlace(l0, 1)
	mustPlace(l0, 2)
	mustPlace(l1, 1)
	mustPlace(l1, 2)

	if err := d.RemoveObject(1); err != nil {
		t.Fatalf("remove object: %v", err)
	}

	if got := len(d.Levels[l0].Instances); got != 2 {
		t.Fatalf("level 0 instances = %d, want 2", got)
	}
	if d.Levels[l0].Instances[0].ObjectIndex != 0 {
		t.Fatalf("first surviving instance object index = %d, want 0", d.Levels[l0].Instances[0].ObjectIndex)
	}
	if d.Levels[l0].Instances[1].ObjectIndex != 1 {
		t.Fatalf("second surviving instance object index = %d, want 1 (decremented)", d.Levels[l0].Instances[1].ObjectIndex)
	}
	if got := len(d.Levels[l1].Instances); got != 1 {
		t.Fatalf("level 1 instances = %d, want 1", got)
	}
	if d.Levels[l1].Instances[0].ObjectIndex != 1 {
		t.Fatalf("level 1 instance object index = %d, want 1", d.Levels[l1].Instances[0].ObjectIndex)
	}
	checkIntegrity(t, d)
}

func TestBackgroundRemovalCascade(t *testing.T) {
	d := NewDocument()
	d.AddBackground(Background{Name: "Sky"})
	d.AddBackground(Background{Name: "Cave"})
	d.AddBackground(Background{Name: "Void"})
	d.AddLevel("uses0", 0, 0) // defaults to background 0
	d.AddLevel("uses2", 0, 0)
	if err := d.SetLevelBackground(1, intPtr(2)); err != nil {
		t.Fatalf("set background: %v", err)
	}
	d.Selection.Background = intPtr(1)

	if err := d.RemoveBackground(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if bg := d.Levels[0].BackgroundIndex; bg == nil || *bg != 0 {
		t.Fatalf("level 0 background = %v, want 0", bg)
	}
	if bg := d.Levels[1].BackgroundIndex; bg == nil || *bg != 1 {
		t.Fatalf("level 1 background = %v, want 1 (decremented)", bg)
	}
	if d.Selection.Background != nil {
		t.Fatalf("background selection should clear after removal")
	}
	checkIntegrity(t, d)
}

func TestMoveRemapsReferences(t *testing.T) {
	d := NewDocument()
	d.AddSprite(Sprite{Name: "A"})
	d.AddSprite(Sprite{Name: "B"})
	d.AddObject(ObjectType{Name: "refA", SpriteIndex: intPtr(0)})
	d.AddObject(ObjectType{Name: "refB", SpriteIndex: intPtr(1)})

	if err := d.MoveSprite(0, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if d.Sprites[0].Name != "B" || d.Sprites[1].Name != "A" {
		t.Fatalf("sprites not swapped: %q, %q", d.Sprites[0].Name, d.Sprites[1].Name)
	}
	// references follow their entries
	if *d.Objects[0].SpriteIndex != 1 || *d.Objects[1].SpriteIndex != 0 {
		t.Fatalf("references not remapped: %d, %d", *d.Objects[0].SpriteIndex, *d.Objects[1].SpriteIndex)
	}
	if d.Sprites[*d.Objects[0].SpriteIndex].Name != "A" {
		t.Fatalf("object refA no longer points at sprite A")
	}
	checkIntegrity(t, d)
}

func TestMoveObjectRemapsInstancesAndSelection(t *testing.T) {
	d := NewDocument()
	d.AddObject(ObjectType{Name: "A"})
	d.AddObject(ObjectType{Name: "B"})
	li := d.AddLevel("L", 0, 0)
	_ = d.PlaceInstance(li, 0, 0, 0)
	_ = d.PlaceInstance(li, 10, 0, 1)
	d.Selection.Object = intPtr(0)

	if err := d.MoveObject(0, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if d.Levels[li].Instances[0].ObjectIndex != 1 || d.Levels[li].Instances[1].ObjectIndex != 0 {
		t.Fatalf("instance references not remapped")
	}
	if d.Selection.Object == nil || *d.Selection.Object != 1 {
		t.Fatalf("selection = %v, want 1", d.Selection.Object)
	}
	checkIntegrity(t, d)
}

func TestLevelRemovalClampsSelection(t *testing.T) {
	cases := []struct {
		name    string
		levels  int
		remove  int
		want    *int
	}{
		{"remove_middle", 3, 1, intPtr(1)},
		{"remove_last", 3, 2, intPtr(1)},
		{"remove_only", 1, 0, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDocument()
			for i := 0; i < c.levels; i++ {
				d.AddLevel("L", 0, 0)
			}
			d.Selection.Level = intPtr(c.remove)
			if err := d.RemoveLevel(c.remove); err != nil {
				t.Fatalf("remove: %v", err)
			}
			got := d.Selection.Level
			if (got == nil) != (c.want == nil) || (got != nil && *got != *c.want) {
				t.Fatalf("selection = %v, want %v", got, c.want)
			}
			checkIntegrity(t, d)
		})
	}
}

// Property check: run a scripted mix of adds, removes, and moves and verify
// every reference resolves after each step.
func TestIntegrityAcrossOperationSequence(t *testing.T) {
	d := NewDocument()
	steps := []struct {
		name string
		op   func() error
	}{
		{"add_bg_sky", func() error { d.AddBackground(Background{Name: "Sky"}); return nil }},
		{"add_bg_cave", func() error { d.AddBackground(Background{Name: "Cave"}); return nil }},
		{"add_sprites", func() error {
			d.AddSprite(Sprite{Name: "S0"})
			d.AddSprite(Sprite{Name: "S1"})
			d.AddSprite(Sprite{Name: "S2"})
			return nil
		}},
		{"add_objects", func() error {
			d.AddObject(ObjectType{Name: "O0", SpriteIndex: intPtr(0)})
			d.AddObject(ObjectType{Name: "O1", SpriteIndex: intPtr(2)})
			d.AddObject(ObjectType{Name: "O2", SpriteIndex: intPtr(1)})
			return nil
		}},
		{"add_levels", func() error {
			l0 := d.AddLevel("L0", 0, 0)
			l1 := d.AddLevel("L1", 320, 240)
			for obj := 0; obj < 3; obj++ {
				if err := d.PlaceInstance(l0, obj*16, 0, obj); err != nil {
					return err
				}
			}
			return d.PlaceInstance(l1, 0, 0, 2)
		}},
		{"remove_sprite_1", func() error { return d.RemoveSprite(1) }},
		{"remove_object_0", func() error { return d.RemoveObject(0) }},
		{"move_background", func() error { return d.MoveBackground(0, 1) }},
		{"remove_background_0", func() error { return d.RemoveBackground(0) }},
		{"remove_sprite_0", func() error { return d.RemoveSprite(0) }},
		{"remove_level_0", func() error { return d.RemoveLevel(0) }},
	}
	for _, s := range steps {
		if err := s.op(); err != nil {
			t.Fatalf("step %s: %v", s.name, err)
		}
		checkIntegrity(t, d)
	}
}
