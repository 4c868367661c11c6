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

import (
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/raster"
)

// Footprint is the width and height in pixels of an entity's collision
// footprint. sprites are drawn from eight pixel wide glyphs but only the
// leading seven columns collide.
const Footprint = 7

// the footprint covers seven rows of its column
const footprintBits = 0x7f

// Engine probes candidate entity positions against a collision mask. the
// mask is usually not the render art: openings an entity may pass through
// are simply absent from the mask, whatever the art shows.
type Engine struct {
	mask raster.Bitmap
}

// NewEngine is the preferred method of initialisation for the Engine
// type.
func NewEngine(mask raster.Bitmap) *Engine {
	return &Engine{mask: mask}
}

// Blocked reports whether a one pixel step along dir from (x, page, sub)
// would drive the entity's footprint into the mask. the candidate
// position is computed internally with the class's wrap rule applied.
// callers commit the move only on a clear result.
//
// a None direction is never blocked.
func (e *Engine) Blocked(rule WrapRule, x, page, sub int, dir joypad.Direction) bool {
	cx, cpage, csub := rule.Step(x, page, sub, dir)

	switch dir {
	case joypad.Left:
		return e.column(cx, cpage, csub)

	case joypad.Right:
		return e.column(rule.WrapX(cx+Footprint-1), cpage, csub)

	case joypad.Up:
		probe := raster.SplitLow(footprintBits, csub)
		for t := 0; t < Footprint; t++ {
			if e.mask.Byte(rule.WrapX(cx+t), cpage)&probe != 0 {
				return true
			}
		}

	case joypad.Down:
		// the probe follows the footprint's weight: once the offset
		// passes two, test the next page's high part instead
		probePage := cpage
		probe := raster.SplitLow(footprintBits, csub)
		if csub > 2 {
			probePage = cpage + 1
			probe = raster.SplitHigh(footprintBits, csub)
		}
		for t := 0; t < Footprint; t++ {
			if e.mask.Byte(rule.WrapX(cx+t), probePage)&probe != 0 {
				return true
			}
		}
	}

	return false
}

// column tests one column of the footprint against both pages it spans.
// used for horizontal moves, where only the leading column matters.
func (e *Engine) column(x, page, sub int) bool {
	if e.mask.Byte(x, page)&raster.SplitLow(footprintBits, sub) != 0 {
		return true
	}
	return e.mask.Byte(x, page+1)&raster.SplitHigh(footprintBits, sub) != 0
}
