package project

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"time"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeGIF(t *testing.T, w, h, frames int, delayCentisec int) []byte {
	t.Helper()
	pal := color.Palette{color.Black, color.White}
	g := &gif.GIF{Config: image.Config{Width: w, Height: h}}
	for i := 0; i < frames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, w, h), pal)
		for p := range frame.Pix {
			frame.Pix[p] = uint8(i % 2)
		}
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, delayCentisec)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

func TestImageDecode(t *testing.T) {
	cases := []struct {
		name     string
		data     []byte
		format   string
		wantW    int
		wantH    int
		wantAnim bool
	}{
		{"static_png", nil, "PNG", 12, 7, false},
		{"no_bytes_placeholder", nil, "PNG", SpritePlaceholderW, SpritePlaceholderH, false},
		{"malformed_placeholder", []byte("not an image"), "PNG", SpritePlaceholderW, SpritePlaceholderH, false},
		{"animated_gif", nil, "GIF", 8, 6, true},
	}
	cases[0].data = encodePNG(t, 12, 7)
	cases[3].data = encodeGIF(t, 8, 6, 3, 10)

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img := NewSpriteImage(c.data, c.format)
			w, h := img.Size()
			if w != c.wantW || h != c.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", w, h, c.wantW, c.wantH)
			}
			if img.Animated() != c.wantAnim {
				t.Fatalf("animated = %v, want %v", img.Animated(), c.wantAnim)
			}
		})
	}
}

func TestImagePlaceholderNeverErrors(t *testing.T) {
	img := NewBackgroundImage([]byte{0xde, 0xad}, "BMP")
	if got := img.FrameAt(0); got != nil {
		t.Fatalf("expected nil frame for undecodable bytes, got %v", got)
	}
	w, h := img.Size()
	if w != BackgroundPlaceholderW || h != BackgroundPlaceholderH {
		t.Fatalf("placeholder size = %dx%d, want %dx%d", w, h, BackgroundPlaceholderW, BackgroundPlaceholderH)
	}
}

func TestImageFrameAdvancesAndLoops(t *testing.T) {
	// 3 frames at 100ms each: a 300ms cycle.
	img := NewSpriteImage(encodeGIF(t, 4, 4, 3, 10), "GIF")
	if img.FrameCount() != 3 {
		t.Fatalf("frame count = %d, want 3", img.FrameCount())
	}

	cases := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 0},
		{50 * time.Millisecond, 0},
		{100 * time.Millisecond, 1},
		{250 * time.Millisecond, 2},
		{300 * time.Millisecond, 0},
		{1050 * time.Millisecond, 1},
	}
	for _, c := range cases {
		if got := img.FrameIndexAt(c.elapsed); got != c.want {
			t.Fatalf("FrameIndexAt(%v) = %d, want %d", c.elapsed, got, c.want)
		}
	}
	if img.FrameAt(110*time.Millisecond) == nil {
		t.Fatalf("expected a frame for animated image")
	}
}

func TestImageStaticSingleFrame(t *testing.T) {
	img := NewSpriteImage(encodePNG(t, 5, 5), "PNG")
	f0 := img.FrameAt(0)
	f1 := img.FrameAt(10 * time.Second)
	if f0 == nil || f0 != f1 {
		t.Fatalf("static image should return the same frame regardless of time")
	}
}
