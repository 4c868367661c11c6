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

package collision

import "github.com/wagiminator/tinyconsole/hardware/joypad"

// WrapRule describes what happens when a step carries an entity past the
// edge of the playfield. every entity class carries its own rule. the
// zero value never wraps.
type WrapRule struct {
	// horizontal steps are taken modulo ModX. zero or negative means x
	// never wraps
	ModX int

	// a vertical step that lands on page Below teleports the entity to
	// page BelowTo; one that lands on page Above teleports it to AboveTo.
	// the pages one past either edge are legal in-transit positions so a
	// class that tunnels through the playfield wraps at 9 and -2 rather
	// than at 8 and -1
	Below   int
	BelowTo int
	Above   int
	AboveTo int
}

// WrapX folds an x coordinate back into the playfield's horizontal range.
func (r WrapRule) WrapX(x int) int {
	if r.ModX <= 0 {
		return x
	}
	x %= r.ModX
	if x < 0 {
		x += r.ModX
	}
	return x
}

// Step returns the position one pixel along dir from (x, page, sub) with
// the wrap rule applied. a None direction returns the position unchanged.
func (r WrapRule) Step(x, page, sub int, dir joypad.Direction) (int, int, int) {
	switch dir {
	case joypad.Left:
		x = r.WrapX(x - 1)
	case joypad.Right:
		x = r.WrapX(x + 1)
	case joypad.Up:
		sub--
		if sub < 0 {
			sub = 7
			page--
		}
	case joypad.Down:
		sub++
		if sub > 7 {
			sub = 0
			page++
		}
	}

	if page == r.Below {
		page = r.BelowTo
	} else if page == r.Above {
		page = r.AboveTo
	}

	return x, page, sub
}
