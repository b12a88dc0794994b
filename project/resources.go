package project

// RGBA is a plain color value stored with backgrounds.
type RGBA struct {
	R, G, B, A uint8
}

// DefaultBackgroundColor matches the color a new background starts with.
var DefaultBackgroundColor = RGBA{R: 200, G: 200, B: 255, A: 255}

// BackgroundMode selects how a background renders.
type BackgroundMode string

const (
	BackgroundColor BackgroundMode = "color"
	BackgroundImage BackgroundMode = "image"
)

// Sprite is a named image resource placed in levels through object types.
type Sprite struct {
	Name  string
	Image *Image
}

// Background is a named fill for a level: either a flat color or an image,
// tiled or stretched. In color mode the image fields are retained but
// ignored for rendering.
type Background struct {
	Name  string
	Mode  BackgroundMode
	Color RGBA
	Image *Image
	Tiled bool
}

// ObjectType names a placeable thing and optionally points at a sprite.
// SpriteIndex is a positional index into Document.Sprites, nil for "no
// sprite".
type ObjectType struct {
	Name        string
	SpriteIndex *int
}

// Instance is one placed object in a level. ObjectIndex always resolves to a
// valid entry of Document.Objects; an instance cannot outlive its type.
type Instance struct {
	X           int
	Y           int
	ObjectIndex int
}

// Level is a named canvas holding placed instances in paint order (index 0
// painted first, last index on top). BackgroundIndex points into
// Document.Backgrounds or is nil.
type Level struct {
	Name            string
	Width           int
	Height          int
	BackgroundIndex *int
	Instances       []Instance
}

// Selection tracks which level, object type, and background the editor has
// focused. Each index is nil when its collection is empty or nothing is
// selected.
type Selection struct {
	Level      *int
	Object     *int
	Background *int
}

// Default level size when none is given.
const (
	DefaultLevelWidth  = 640
	DefaultLevelHeight = 360
)
