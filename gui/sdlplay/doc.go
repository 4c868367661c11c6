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

// Package sdlplay is the windowed front end, showing the OLED panel in
// an SDL window at an integer multiple of its native 128x64 size.
//
// SDL requires its window and event handling to happen in the main
// thread so the package splits its work in two. The PixelSink half runs
// on the emulation goroutine and does nothing more than copy each
// pushed frame aside; the Service() function, called repeatedly from
// the main thread, drains the SDL event queue and uploads the most
// recent frame to the texture.
//
// The keyboard stands in for the joypad. Arrow keys and WASD are the
// stick, space and return are the action button, and escape or Q ends
// the session. Key state is held, not queued: the emulation polls the
// current state through the joypad.Input interface just as the firmware
// polls the resistor ladder.
package sdlplay
