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

package gui

import (
	"io"
	"time"

	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/oled"
)

// GUI is the union of the two console connectors a front end provides.
// The console pushes frames through the PixelSink half and polls the
// joypad through the Input half, both from the emulation goroutine. The
// remaining functions are for the owner of the main thread.
type GUI interface {
	oled.PixelSink
	joypad.Input

	// Service performs the event handling and presentation the front
	// end's windowing framework will only tolerate on the main thread.
	// It must be called repeatedly and must not block for longer than
	// one service period.
	Service()

	// UserQuit reports whether the user has asked for the session to
	// end. once true it stays true.
	UserQuit() bool

	// Destroy releases the front end's resources. errors during
	// destruction are reported to output, there being nothing else to
	// be done with them so late in the program's life.
	Destroy(output io.Writer)
}

// Stub is a GUI with no display and no controls. Frames are discarded
// and the joypad is never pressed.
type Stub struct {
	oled.NullSink
}

// State implements the joypad.Input interface.
func (s Stub) State() joypad.State {
	return joypad.State{}
}

// Service implements the GUI interface. there are no events to handle
// so the function simply dozes for a service period, pacing the loop
// that calls it.
func (s Stub) Service() {
	time.Sleep(time.Millisecond)
}

// UserQuit implements the GUI interface.
func (s Stub) UserQuit() bool {
	return false
}

// Destroy implements the GUI interface.
func (s Stub) Destroy(_ io.Writer) {
}
