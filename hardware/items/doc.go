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

// Package items implements the consumable item field.
//
// The field's art is a static bitmap. Every byte column that holds any
// art is an item column, numbered by its position in page major scan
// order; the art is never modified and the numbering never changes.
// What comes and goes is a presence bit per column, MSB first across a
// byte mask. A two column item therefore occupies two consecutive
// ordinals, which is why the power items sit on ordinal pairs.
//
// Collection is a side effect of composition. When the compositor asks
// the field's layer for a cell that holds a present item column inside
// the collecting actor's window, the column is collected there and then.
// Its art is still returned for that frame and gone from the next.
//
// Power item art lives on its own layer so the compositor's hidden
// ranges can blink it. Collection stays with the plain layer, which is
// always composed, so a power item is collectable while invisible.
package items
