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

// Package actor implements the movement state machine shared by every
// entity on the playfield.
//
// An actor holds a current direction and a pending one. The pending
// direction is whatever the player (or the game) last asked for; it is
// committed, replacing the current direction, on the first tick the
// collision engine reports the turn clear. Until then the actor carries
// on along its current direction, one pixel per update. A blocked step
// parks the actor: the current direction becomes None, and an AI actor
// immediately draws a fresh direction from the console's random source.
//
// Horizontal directions are inert while the actor is off the playfield
// on a transit page. The step is held, not blocked, so the direction
// survives the tunnel trip.
//
// The animation counters are deliberately independent of movement: a
// parked actor keeps chewing. The two shapes used by the game cartridge
// are provided here; glyph row selection stays with the game, which owns
// the sprite banks.
package actor
