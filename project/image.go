package project

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Placeholder sizes used when a resource has no decodable image bytes.
const (
	SpritePlaceholderW = 40
	SpritePlaceholderH = 40

	BackgroundPlaceholderW = 60
	BackgroundPlaceholderH = 30
)

const defaultFrameDelay = 100 * time.Millisecond

// Image wraps raw encoded image bytes plus a declared format tag. Decoding
// happens once, eagerly, and fails soft: malformed or absent bytes leave the
// image with zero frames, and rendering falls back to a fixed-size
// placeholder rectangle. The current frame of an animated image is a pure
// function of elapsed wall-clock time, so rendering never mutates it.
type Image struct {
	Bytes  []byte
	Format string

	placeholderW int
	placeholderH int

	frames []image.Image
	delays []time.Duration
	cycle  time.Duration
}

// NewSpriteImage builds an image resource with the sprite placeholder size.
func NewSpriteImage(data []byte, format string) *Image {
	return newImage(data, format, SpritePlaceholderW, SpritePlaceholderH)
}

// NewBackgroundImage builds an image resource with the background
// placeholder size.
func NewBackgroundImage(data []byte, format string) *Image {
	return newImage(data, format, BackgroundPlaceholderW, BackgroundPlaceholderH)
}

func newImage(data []byte, format string, phW, phH int) *Image {
	img := &Image{
		Bytes:        data,
		Format:       format,
		placeholderW: phW,
		placeholderH: phH,
	}
	img.decode()
	return img
}

// decode populates frames from Bytes. Any decode failure leaves frames
// empty; callers render a placeholder instead.
func (m *Image) decode() {
	m.frames = nil
	m.delays = nil
	m.cycle = 0
	if len(m.Bytes) == 0 {
		return
	}

	if strings.EqualFold(m.Format, "GIF") {
		if frames, delays, ok := decodeGIF(m.Bytes); ok {
			m.frames = frames
			m.delays = delays
			for _, d := range delays {
				m.cycle += d
			}
			return
		}
		// fall through: a mis-tagged static image may still decode
	}

	decoded, _, err := image.Decode(bytes.NewReader(m.Bytes))
	if err != nil {
		return
	}
	m.frames = []image.Image{decoded}
}

// decodeGIF decodes all frames of an animated GIF, compositing each frame
// over the previous one so partial frames render correctly.
func decodeGIF(data []byte) ([]image.Image, []time.Duration, bool) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil || len(g.Image) == 0 {
		return nil, nil, false
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))
	delays := make([]time.Duration, 0, len(g.Image))
	for i, src := range g.Image {
		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)
		snap := image.NewRGBA(bounds)
		copy(snap.Pix, canvas.Pix)
		frames = append(frames, snap)

		d := defaultFrameDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			d = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		delays = append(delays, d)
	}
	return frames, delays, true
}

// Animated reports whether the image has more than one frame.
func (m *Image) Animated() bool {
	return m != nil && len(m.frames) > 1
}

// FrameCount returns the number of decoded frames (0 for a placeholder).
func (m *Image) FrameCount() int {
	if m == nil {
		return 0
	}
	return len(m.frames)
}

// FrameIndexAt returns the frame index for the given elapsed time. The
// animation loops over the total cycle duration.
func (m *Image) FrameIndexAt(elapsed time.Duration) int {
	if m == nil || len(m.frames) <= 1 {
		return 0
	}
	if m.cycle <= 0 {
		return 0
	}
	t := elapsed % m.cycle
	for i, d := range m.delays {
		if t < d {
			return i
		}
		t -= d
	}
	return len(m.frames) - 1
}

// FrameAt returns the drawable frame for the given elapsed time, or nil when
// no bytes decoded (render a placeholder instead).
func (m *Image) FrameAt(elapsed time.Duration) image.Image {
	if m == nil || len(m.frames) == 0 {
		return nil
	}
	return m.frames[m.FrameIndexAt(elapsed)]
}

// Frame returns frame i, or nil if out of range. Renderers use this together
// with FrameIndexAt to cache converted frames.
func (m *Image) Frame(i int) image.Image {
	if m == nil || i < 0 || i >= len(m.frames) {
		return nil
	}
	return m.frames[i]
}

// Size returns the decoded image size, or the placeholder size when nothing
// decoded.
func (m *Image) Size() (int, int) {
	if m == nil {
		return SpritePlaceholderW, SpritePlaceholderH
	}
	if len(m.frames) == 0 {
		return m.placeholderW, m.placeholderH
	}
	b := m.frames[0].Bounds()
	return b.Dx(), b.Dy()
}
