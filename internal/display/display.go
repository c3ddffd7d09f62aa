// Package display renders a chip8.Display framebuffer to a pixelgl
// window and translates its keyboard state into chip8 keypad events.
// This is host-shell code: the core never imports it.
package display

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/nlkl/chip8-go/internal/chip8"
	"golang.org/x/image/colornames"
)

const keyRepeatDur = time.Second / 5

const screenWidth float64 = 1024
const screenHeight float64 = 768

// keyMap lays the CHIP-8 hex keypad out over 1234/qwer/asdf/zxcv, the
// traditional COSMAC VIP arrangement.
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
var keyMap = map[uint8]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2,
	0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW,
	0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS,
	0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX,
	0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Window embeds a pixelgl window, sized for a given CHIP-8 display
// resolution, and tracks per-key repeat tickers.
type Window struct {
	*pixelgl.Window
	width, height uint8
	keysDown      map[uint8]*time.Ticker
	muteMask      bool
}

// NewWindow opens a pixelgl window scaled for a width x height
// CHIP-8 display.
func NewWindow(width, height uint8) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chip8",
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %w", err)
	}
	return &Window{
		Window:   w,
		width:    width,
		height:   height,
		keysDown: make(map[uint8]*time.Ticker),
	}, nil
}

// Draw clears the window and draws every visible pixel of disp as a
// scaled rectangle.
func (w *Window) Draw(disp *chip8.Display) {
	w.Clear(colornames.Black)
	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	cellWidth := screenWidth / float64(w.width)
	cellHeight := screenHeight / float64(w.height)

	for _, p := range disp.VisiblePixels() {
		// Flip Y: CHIP-8 row 0 is the top of the screen, pixelgl's
		// origin is the bottom-left.
		row := float64(w.height) - 1 - float64(p.Y)
		x0 := float64(p.X) * cellWidth
		y0 := row * cellHeight
		draw.Push(pixel.V(x0, y0))
		draw.Push(pixel.V(x0+cellWidth, y0+cellHeight))
		draw.Rectangle(0)
	}

	draw.Draw(w)
	w.Update()
}

// PollKeypad applies the host's end-of-frame release roll to a copy of
// prev, then marks every key that was just pressed or is still held as
// Pressed.
// MuteToggled reports whether the mute hotkey (M) was pressed this poll.
func (w *Window) PollKeypad(prev chip8.Keypad) (pad chip8.Keypad, muteToggled bool) {
	pad = prev
	pad.ReleaseAll()

	for hexKey, button := range keyMap {
		switch {
		case w.JustPressed(button):
			pad.Press(hexKey)
			w.keysDown[hexKey] = time.NewTicker(keyRepeatDur)
		case w.JustReleased(button):
			if t, ok := w.keysDown[hexKey]; ok {
				t.Stop()
				delete(w.keysDown, hexKey)
			}
		case w.Pressed(button):
			pad.Press(hexKey)
		}
	}

	if w.JustPressed(pixelgl.KeyM) {
		muteToggled = true
	}

	return pad, muteToggled
}

// WantsQuit reports whether the window was closed or Escape pressed.
func (w *Window) WantsQuit() bool {
	return w.Closed() || w.JustPressed(pixelgl.KeyEscape)
}
