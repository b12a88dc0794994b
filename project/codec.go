package project

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Serialization codec. The persisted form is a single self-contained JSON
// document; image bytes travel base64-encoded (encoding/json's []byte
// representation). Field names are part of the format and shared with the
// playback runner.

type documentFile struct {
	Backgrounds             []backgroundFile `json:"backgrounds"`
	Sprites                 []spriteFile     `json:"sprites"`
	Objects                 []objectFile     `json:"objects"`
	Levels                  []levelFile      `json:"levels"`
	SelectedLevelIndex      *int             `json:"selected_level_index"`
	SelectedObjectIndex     *int             `json:"selected_object_index"`
	SelectedBackgroundIndex *int             `json:"selected_background_index"`
}

type backgroundFile struct {
	Name      string    `json:"name"`
	Mode      string    `json:"mode"`
	Color     *[4]uint8 `json:"color"`
	ImgBytes  []byte    `json:"img_bytes"`
	ImgFormat string    `json:"img_format"`
	// pointer so a missing field defaults to tiled rather than stretched
	Tiled *bool `json:"tiled"`
}

type spriteFile struct {
	Name      string `json:"name"`
	ImgBytes  []byte `json:"img_bytes"`
	ImgFormat string `json:"img_format"`
}

type objectFile struct {
	Name        string `json:"name"`
	SpriteIndex *int   `json:"sprite_index"`
}

type levelFile struct {
	Name            string         `json:"name"`
	Width           int            `json:"width"`
	Height          int            `json:"height"`
	BackgroundIndex *int           `json:"background_index"`
	Instances       []instanceFile `json:"instances"`
}

type instanceFile struct {
	X           int `json:"x"`
	Y           int `json:"y"`
	ObjectIndex int `json:"object_index"`
}

// Serialize renders the document as indented JSON.
func Serialize(d *Document) ([]byte, error) {
	out := documentFile{
		Backgrounds:             make([]backgroundFile, 0, len(d.Backgrounds)),
		Sprites:                 make([]spriteFile, 0, len(d.Sprites)),
		Objects:                 make([]objectFile, 0, len(d.Objects)),
		Levels:                  make([]levelFile, 0, len(d.Levels)),
		SelectedLevelIndex:      d.Selection.Level,
		SelectedObjectIndex:     d.Selection.Object,
		SelectedBackgroundIndex: d.Selection.Background,
	}

	for _, bg := range d.Backgrounds {
		c := [4]uint8{bg.Color.R, bg.Color.G, bg.Color.B, bg.Color.A}
		tiled := bg.Tiled
		out.Backgrounds = append(out.Backgrounds, backgroundFile{
			Name:      bg.Name,
			Mode:      string(bg.Mode),
			Color:     &c,
			ImgBytes:  imageBytes(bg.Image),
			ImgFormat: imageFormat(bg.Image),
			Tiled:     &tiled,
		})
	}
	for _, s := range d.Sprites {
		out.Sprites = append(out.Sprites, spriteFile{
			Name:      s.Name,
			ImgBytes:  imageBytes(s.Image),
			ImgFormat: imageFormat(s.Image),
		})
	}
	for _, o := range d.Objects {
		out.Objects = append(out.Objects, objectFile{Name: o.Name, SpriteIndex: o.SpriteIndex})
	}
	for _, lvl := range d.Levels {
		lf := levelFile{
			Name:            lvl.Name,
			Width:           lvl.Width,
			Height:          lvl.Height,
			BackgroundIndex: lvl.BackgroundIndex,
			Instances:       make([]instanceFile, 0, len(lvl.Instances)),
		}
		for _, inst := range lvl.Instances {
			lf.Instances = append(lf.Instances, instanceFile{X: inst.X, Y: inst.Y, ObjectIndex: inst.ObjectIndex})
		}
		out.Levels = append(out.Levels, lf)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("project: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func imageBytes(m *Image) []byte {
	if m == nil {
		return nil
	}
	return m.Bytes
}

func imageFormat(m *Image) string {
	if m == nil || m.Format == "" {
		return "PNG"
	}
	return m.Format
}

// Deserialize reconstructs a document from its serialized form. Collections
// rebuild in dependency order (backgrounds, sprites, objects, levels).
// Tolerances for partial or hand-edited files: missing optional fields take
// defaults, out-of-range sprite and background references load as null, and
// instances whose object type does not resolve are dropped. Selection
// indices are re-defaulted at load completion so consumers never observe an
// invalid selection.
//
// On any failure the returned error wraps ErrCorrupt and no document is
// returned, so the caller's current document stays intact.
func Deserialize(data []byte) (*Document, error) {
	var in documentFile
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("project: %w: %v", ErrCorrupt, err)
	}

	d := NewDocument()

	for _, bf := range in.Backgrounds {
		mode := BackgroundMode(bf.Mode)
		if mode != BackgroundImage {
			mode = BackgroundColor
		}
		color := DefaultBackgroundColor
		if bf.Color != nil {
			color = RGBA{R: bf.Color[0], G: bf.Color[1], B: bf.Color[2], A: bf.Color[3]}
		}
		tiled := true
		if bf.Tiled != nil {
			tiled = *bf.Tiled
		}
		d.Backgrounds = append(d.Backgrounds, Background{
			Name:  bf.Name,
			Mode:  mode,
			Color: color,
			Image: NewBackgroundImage(bf.ImgBytes, formatOrDefault(bf.ImgFormat)),
			Tiled: tiled,
		})
	}

	for _, sf := range in.Sprites {
		d.Sprites = append(d.Sprites, Sprite{
			Name:  sf.Name,
			Image: NewSpriteImage(sf.ImgBytes, formatOrDefault(sf.ImgFormat)),
		})
	}

	for _, of := range in.Objects {
		si := of.SpriteIndex
		if si != nil && !validIndex(d.Sprites, *si) {
			si = nil
		}
		d.Objects = append(d.Objects, ObjectType{Name: of.Name, SpriteIndex: si})
	}

	for _, lf := range in.Levels {
		width, height := lf.Width, lf.Height
		if width <= 0 {
			width = DefaultLevelWidth
		}
		if height <= 0 {
			height = DefaultLevelHeight
		}
		bg := lf.BackgroundIndex
		if bg != nil && !validIndex(d.Backgrounds, *bg) {
			bg = nil
		}
		lvl := Level{Name: lf.Name, Width: width, Height: height, BackgroundIndex: bg}
		for _, inf := range lf.Instances {
			if !validIndex(d.Objects, inf.ObjectIndex) {
				continue
			}
			lvl.Instances = append(lvl.Instances, Instance{X: inf.X, Y: inf.Y, ObjectIndex: inf.ObjectIndex})
		}
		d.Levels = append(d.Levels, lvl)
	}

	d.Selection = Selection{
		Level:      defaultSelection(in.SelectedLevelIndex, len(d.Levels)),
		Object:     defaultSelection(in.SelectedObjectIndex, len(d.Objects)),
		Background: defaultSelection(in.SelectedBackgroundIndex, len(d.Backgrounds)),
	}

	return d, nil
}

func formatOrDefault(format string) string {
	if format == "" {
		return "PNG"
	}
	return format
}

// defaultSelection clamps a stored selection: 0 when missing or out of
// range, nil when the collection is empty.
func defaultSelection(stored *int, length int) *int {
	if length == 0 {
		return nil
	}
	if stored == nil || *stored < 0 || *stored >= length {
		return indexPtr(0)
	}
	return stored
}
