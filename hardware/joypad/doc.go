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

// Package joypad defines the input protocol between the console and
// whatever is providing directions. The handheld's stick is not a matrix
// of switches but a resistor ladder on a single analog line. Each of the
// eight physical positions lands the reading in its own narrow band, and
// a diagonal is simply a position whose band asserts two directions at
// once. The action button is a separate digital line, active low behind
// a pullup.
//
// Front ends that have real keyboards synthesise a State directly and
// never go through the analog decode.
package joypad
