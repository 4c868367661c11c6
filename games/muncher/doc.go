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

// Package muncher is the dot munching game cartridge.
//
// The port keeps the handheld's timing model. One tick is one input
// poll; the animation cycle is twenty five ticks long and drives the
// power item blink, the chaser flash and the mouth. The speed value
// counts down by ten each level and is at once the difficulty tier,
// the vulnerability window length (in ticks) and the siren's pitch
// source. Sixty four items fill the maze; clearing all but the very
// last one wins the level, matching the off-by-one the original
// shipped with.
//
// The playfield is synthesised rather than stored: wall lines run
// along row 8p+4 of every page, corridors rest between them at
// sub-row five, and four gaps in the outermost lines wrap vertically
// through the off-screen transit pages. The collision mask is the
// wall art plus filled side margins, so entities keep to the maze
// while the lives and level badges draw over the margins freely.
//
// Jingles hold the session the way the handheld stalled while
// bit-banging its piezo: the game freezes for the sequence's duration
// while the display pipeline carries on composing the held scene.
package muncher
