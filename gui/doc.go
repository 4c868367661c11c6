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

// Package gui defines the contract between the console and its front
// ends. A front end stands in for the handheld's peripherals: it is the
// OLED panel the display pipeline pushes frames to and the joypad the
// game polls, and so the GUI interface is simply the union of
// oled.PixelSink and joypad.Input with a small amount of lifecycle
// support added.
//
// The console runs in its own goroutine but windowing frameworks
// (notably SDL) insist on their event handling happening in the main
// thread. The Service() function is the accommodation: the main()
// function loops over it forever while the console works elsewhere. See
// the sdlplay and termplay packages for the two concrete front ends.
package gui
