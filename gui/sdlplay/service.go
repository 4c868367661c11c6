// This file is part of TinyConsole.
//
// TinyConsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TinyConsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TinyConsole.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/raster"
	"github.com/wagiminator/tinyconsole/logger"
)

// bits of the held field. a diagonal on a real stick asserts two
// direction bits at once and two held keys do the same here.
const (
	heldUp uint32 = 1 << iota
	heldDown
	heldLeft
	heldRight
	heldAct
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. these take
	// time to service and for no good reason; the console has no use for a
	// mouse
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. servicing just one
	// event per call is not enough, queued events would take one call
	// each to resolve. the one millisecond timeout doubles as the pace
	// of the service loop when the queue is empty
	empty := false
	for !empty {
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.quit.Store(true)

		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN:
				if ev.Repeat == 0 {
					scr.serviceKey(ev.Keysym.Sym, true)
				}
			case sdl.KEYUP:
				if ev.Repeat == 0 {
					scr.serviceKey(ev.Keysym.Sym, false)
				}
			}

		case nil:
			// if we have a nil value then the WaitEvent has timed out
			// and we can say that the event queue is empty
			empty = true
		}
	}

	scr.render()
}

// serviceKey folds one key transition into the held state. only ever
// called from the main thread; the atomic store is for the benefit of
// the reader in State().
func (scr *SdlPlay) serviceKey(sym sdl.Keycode, down bool) {
	var bit uint32

	switch sym {
	case sdl.K_UP, sdl.K_w:
		bit = heldUp
	case sdl.K_DOWN, sdl.K_s:
		bit = heldDown
	case sdl.K_LEFT, sdl.K_a:
		bit = heldLeft
	case sdl.K_RIGHT, sdl.K_d:
		bit = heldRight
	case sdl.K_SPACE, sdl.K_RETURN:
		bit = heldAct
	case sdl.K_ESCAPE, sdl.K_q:
		if down {
			scr.quit.Store(true)
		}
		return
	default:
		return
	}

	held := scr.held.Load()
	if down {
		held |= bit
	} else {
		held &^= bit
	}
	scr.held.Store(held)
}

// State implements the joypad.Input interface. Called from the
// emulation goroutine.
func (scr *SdlPlay) State() joypad.State {
	held := scr.held.Load()
	return joypad.State{
		Up:    held&heldUp == heldUp,
		Down:  held&heldDown == heldDown,
		Left:  held&heldLeft == heldLeft,
		Right: held&heldRight == heldRight,
		Act:   held&heldAct == heldAct,
	}
}

// render expands the most recent frame into the texture and presents
// it. does nothing if no new frame has arrived since the last call.
func (scr *SdlPlay) render() {
	scr.crit.section.Lock()

	if !scr.crit.newFrame {
		scr.crit.section.Unlock()
		return
	}
	scr.crit.newFrame = false

	// expand packed columns into rgba while holding the lock. the frame
	// is small enough that the emulation goroutine will never notice
	for page := 0; page < raster.NumPages; page++ {
		for x := 0; x < raster.Width; x++ {
			b := scr.crit.frame[page*raster.Width+x]
			for bit := 0; bit < 8; bit++ {
				var v byte
				if b&(1<<bit) != 0 {
					v = 255
				}
				i := ((page*8+bit)*raster.Width + x) * pixelDepth
				scr.pixels[i] = v
				scr.pixels[i+1] = v
				scr.pixels[i+2] = v
			}
		}
	}

	scr.crit.section.Unlock()

	err := scr.texture.Update(nil, scr.pixels, raster.Width*pixelDepth)
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
		return
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
		return
	}

	scr.renderer.Present()

	if !scr.shown {
		scr.window.Show()
		scr.shown = true
	}
}
