// Package pixel is the host-side window collaborator: it owns the
// pixelgl window, the physical-key-to-CHIP-8-keypad-index mapping, and
// blitting the VM's display buffer to the screen. None of this is part
// of the VM itself; the VM only ever sees a [16]bool keypad snapshot
// and exposes a read-only pixel grid.
package pixel

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/bradford-hamilton/chippy/internal/display"
)

const winX float64 = display.Width
const winY float64 = display.Height
const screenWidth float64 = 1024
const screenHeight float64 = 768

// Window embeds a pixelgl window and holds the recommended default
// keymap (digit keys 0-9 and letters A-F) mapping physical keys to
// CHIP-8 keypad indices 0x0-0xF.
type Window struct {
	*pixelgl.Window
	KeyMap map[uint16]pixelgl.Button
}

// NewWindow creates and configures a pixelgl window sized for a 64x32
// CHIP-8 display scaled up to screenWidth x screenHeight.
func NewWindow() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chippy",
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}
	km := map[uint16]pixelgl.Button{
		0x0: pixelgl.Key0, 0x1: pixelgl.Key1,
		0x2: pixelgl.Key2, 0x3: pixelgl.Key3,
		0x4: pixelgl.Key4, 0x5: pixelgl.Key5,
		0x6: pixelgl.Key6, 0x7: pixelgl.Key7,
		0x8: pixelgl.Key8, 0x9: pixelgl.Key9,
		0xA: pixelgl.KeyA, 0xB: pixelgl.KeyB,
		0xC: pixelgl.KeyC, 0xD: pixelgl.KeyD,
		0xE: pixelgl.KeyE, 0xF: pixelgl.KeyF,
	}
	return &Window{
		Window: w,
		KeyMap: km,
	}, nil
}

// KeySnapshot takes the atomic 16-key snapshot the VM expects for one
// frame: for each CHIP-8 keypad index, whether its mapped physical key
// is currently held down.
func (w *Window) KeySnapshot() [16]bool {
	var keys [16]bool
	for index, btn := range w.KeyMap {
		keys[index] = w.Pressed(btn)
	}
	return keys
}

// DrawGraphics blits a 64x32 pixel snapshot from the VM's display
// buffer onto the window.
func (w *Window) DrawGraphics(gfx [display.Width * display.Height]bool) {
	w.Clear(colornames.Black)
	imDraw := imdraw.New(nil)
	imDraw.Color = pixel.RGB(1, 1, 1)
	cellW, cellH := screenWidth/winX, screenHeight/winY

	for row := 0; row < display.Height; row++ {
		for col := 0; col < display.Width; col++ {
			if !gfx[row*display.Width+col] {
				continue
			}
			// Flip row so display row 0 (top of the CHIP-8 grid)
			// renders at the top of the window.
			screenRow := display.Height - 1 - row
			imDraw.Push(pixel.V(cellW*float64(col), cellH*float64(screenRow)))
			imDraw.Push(pixel.V(cellW*float64(col)+cellW, cellH*float64(screenRow)+cellH))
			imDraw.Rectangle(0)
		}
	}

	imDraw.Draw(w)
	w.Update()
}
