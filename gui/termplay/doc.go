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

// Package termplay is the terminal front end. The panel is drawn with
// unicode half block characters, two pixel rows to a terminal row, so
// the playfield fits in a 128x32 character area. A terminal with a
// square-ish font shows the maze at very nearly the right aspect.
//
// Terminals report key presses but never key releases, so the joypad
// cannot be modelled as held state the way the SDL front end does it.
// Each press is instead latched for a fraction of a second and the
// emulation sees the key as held until the latch expires. In practice a
// tapped arrow key reads as one short deflection of the stick, which is
// exactly what the games want for cornering.
//
// Sound, if wanted, goes through the Speaker type which plays the same
// square waves through the beep library's speaker. It is separate from
// the screen handling so a silent terminal session carries no audio
// dependencies at run time.
package termplay
