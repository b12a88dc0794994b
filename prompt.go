package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Prompt is a simple modal text input. When open it captures typed characters
// and calls the provided callback when the user presses Enter. Pressing
// Escape closes the prompt without invoking the callback.
type Prompt struct {
	open    bool
	label   string
	input   string
	chars   []rune
	onEnter func(string)
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

// Open shows the prompt with the given label, initial input, and callback.
func (p *Prompt) Open(label, initial string, onEnter func(string)) {
	p.label = label
	p.input = initial
	p.onEnter = onEnter
	p.open = true
}

// Close hides the prompt without invoking the callback.
func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = ""
	p.onEnter = nil
}

// Update processes input for the prompt. Returns true if the prompt is open
// (so callers can early-return and avoid processing other input).
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		// Close preemptively so the callback can reopen the prompt when it
		// needs a chained input.
		cur := p.input
		p.open = false
		if p.onEnter != nil {
			p.onEnter(cur)
		}
		if p.open {
			return true
		}
		p.Close()
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
		return false
	}
	return true
}

// Draw renders the prompt overlay into the provided screen.
func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	o := &ebiten.DrawImageOptions{}
	back := ebiten.NewImage(sw, 48)
	back.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 0x88})
	o.GeoM.Translate(0, float64(sh/2-24))
	screen.DrawImage(back, o)
	label := p.label
	if label == "" {
		label = "Input:"
	}
	ebitenutil.DebugPrintAt(screen, label+" "+p.input+"_", 16, sh/2-8)
}
