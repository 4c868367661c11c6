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

package muncher

import (
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/raster"
)

// Glyphs are eight column bytes, least significant bit topmost. The
// eighth column is always empty: entities are drawn eight wide but
// collide seven wide.

// muncherBank holds three mouth positions for each facing, grouped by
// facing: closed, half open, wide open.
const (
	rowDown  = 0
	rowLeft  = 3
	rowUp    = 6
	rowRight = 9
)

var muncherBank = [12 * raster.GlyphWidth]byte{
	// down
	0x1c, 0x3e, 0x7f, 0x7f, 0x7f, 0x3e, 0x1c, 0x00,
	0x1c, 0x3e, 0x3f, 0x1f, 0x3f, 0x3e, 0x1c, 0x00,
	0x1c, 0x1e, 0x1f, 0x0f, 0x1f, 0x1e, 0x1c, 0x00,
	// left
	0x1c, 0x3e, 0x7f, 0x7f, 0x7f, 0x3e, 0x1c, 0x00,
	0x14, 0x36, 0x77, 0x7f, 0x7f, 0x3e, 0x1c, 0x00,
	0x00, 0x22, 0x63, 0x77, 0x7f, 0x3e, 0x1c, 0x00,
	// up
	0x1c, 0x3e, 0x7f, 0x7f, 0x7f, 0x3e, 0x1c, 0x00,
	0x1c, 0x3e, 0x7e, 0x7c, 0x7e, 0x3e, 0x1c, 0x00,
	0x1c, 0x3c, 0x7c, 0x78, 0x7c, 0x3c, 0x1c, 0x00,
	// right
	0x1c, 0x3e, 0x7f, 0x7f, 0x7f, 0x3e, 0x1c, 0x00,
	0x1c, 0x3e, 0x7f, 0x7f, 0x77, 0x36, 0x14, 0x00,
	0x1c, 0x3e, 0x7f, 0x77, 0x63, 0x22, 0x00, 0x00,
}

// chaserBank holds the chaser art: two walking frames for the sideways
// and upward facings, then the same four slots hollowed out for the
// vulnerable look, then the bare eyes shown while tagged.
const (
	chaserRowSide = 0
	chaserRowUp   = 2

	vulnerableOffset = 4
	eyesOffset       = 8
)

var chaserBank = [12 * raster.GlyphWidth]byte{
	// walking, eyes level
	0x7c, 0x3e, 0x73, 0x7f, 0x73, 0x3e, 0x7c, 0x00,
	0x3c, 0x7e, 0x73, 0x3f, 0x73, 0x7e, 0x3c, 0x00,
	// walking, eyes raised
	0x7c, 0x3e, 0x79, 0x7f, 0x79, 0x3e, 0x7c, 0x00,
	0x3c, 0x7e, 0x79, 0x3f, 0x79, 0x7e, 0x3c, 0x00,
	// vulnerable
	0x7c, 0x2e, 0x7b, 0x6f, 0x7b, 0x2e, 0x7c, 0x00,
	0x3c, 0x6e, 0x7b, 0x2f, 0x7b, 0x6e, 0x3c, 0x00,
	0x7c, 0x2e, 0x7b, 0x6f, 0x7b, 0x2e, 0x7c, 0x00,
	0x3c, 0x6e, 0x7b, 0x2f, 0x7b, 0x6e, 0x3c, 0x00,
	// tagged, eyes only
	0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x0c, 0x00, 0x00,
	0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x0c, 0x00, 0x00,
	0x00, 0x06, 0x06, 0x00, 0x06, 0x06, 0x00, 0x00,
	0x00, 0x06, 0x06, 0x00, 0x06, 0x06, 0x00, 0x00,
}

// badgeBank holds the four level badges, one per ten point speed step.
var badgeBank = [4 * raster.GlyphWidth]byte{
	0x30, 0x78, 0x78, 0x7b, 0xf1, 0xf0, 0x60, 0x00,
	0x60, 0xf2, 0xf5, 0xf9, 0xf5, 0xf2, 0x60, 0x00,
	0x3c, 0x7e, 0x7b, 0x7e, 0x7b, 0x7e, 0x3c, 0x00,
	0x38, 0x7d, 0x7f, 0x7e, 0x7f, 0x7d, 0x38, 0x00,
}

func muncherGlyph(idx int) []byte {
	return muncherBank[idx*raster.GlyphWidth : (idx+1)*raster.GlyphWidth]
}

func chaserGlyph(idx int) []byte {
	return chaserBank[idx*raster.GlyphWidth : (idx+1)*raster.GlyphWidth]
}

func badgeGlyph(idx int) []byte {
	return badgeBank[idx*raster.GlyphWidth : (idx+1)*raster.GlyphWidth]
}

// livesGlyph is the icon drawn once per remaining life.
func livesGlyph() []byte {
	return muncherGlyph(rowRight + 2)
}

// muncherRowFor maps a heading onto the glyph bank's facing rows.
func muncherRowFor(d joypad.Direction) int {
	switch d {
	case joypad.Up:
		return rowUp
	case joypad.Left:
		return rowLeft
	case joypad.Right:
		return rowRight
	}
	return rowDown
}

// chaserRowFor maps a heading onto the chaser bank's facing rows. the
// sideways art covers everything except upward travel.
func chaserRowFor(d joypad.Direction) int {
	if d == joypad.Up {
		return chaserRowUp
	}
	return chaserRowSide
}
