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

// Package collision tests entity movement against the packed collision
// mask and entity footprints against each other.
//
// An entity's collision footprint is a seven pixel square anchored at
// (x, page, sub). Movement is tested check-before-move: the engine
// computes the candidate position one pixel along the requested
// direction, wrap rules applied, and probes the mask there. The caller
// commits the move only when the engine reports it clear. Nothing in
// this package changes an entity's position.
//
// The probes are shaped like the footprint split across its two pages: a
// low mask (0x7F shifted up by the sub-row offset) for the rows on the
// entity's own page and a high mask for the rows that have crossed into
// the page below. A horizontal move tests only the leading column, both
// pages. A vertical move tests every column of the footprint but only a
// single page per column: the entity's own page, except that a downward
// move switches to the next page's high mask once the offset passes two
// and the footprint's weight has crossed over.
//
// Out of range mask reads are clear. Pages -1 and 8 are legal in-transit
// positions and probe nothing.
package collision
