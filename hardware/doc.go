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

// Package hardware is the base package for the console. It and its
// sub-packages contain everything required for a headless run of a game.
//
// The Console type is the root of the machine and gathers the facilities
// a game can rely on: the display transfer pipeline, the joypad, the
// beeper and the random source. A Game plugs into the console; the run
// loop then drives it one tick at a time, pacing to the native tick
// rate unless the cap has been lifted.
package hardware
