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
	"github.com/wagiminator/tinyconsole/hardware/raster"
)

// The maze is built on a fixed grid. A horizontal wall line runs along
// row 8p+4 of every page p, leaving seven clear rows between
// consecutive lines. An entity whose seven pixel footprint rests in one
// of those bands sits at sub-row offset five of the upper page, which is
// why every placement in this file uses restSub.
//
// Gaps in the wall lines are the vertical shafts. The collision probes
// test all seven footprint columns, so a shaft must be at least seven
// columns wide; ours are eight. The gaps in the outermost lines are the
// vertical wrap shafts: an entity dropping through the bottom edge
// travels the two off-screen transit pages and re-enters through the
// matching gap in the top line.
const (
	restSub = 5

	// the corridor the side tunnel runs along. its band is the only
	// part of the left and right borders left open
	tunnelCorridor = 3
)

// interior extent of the maze between the side borders.
const (
	borderLeft  = 8
	borderRight = 119
)

// the muncher's home corridor position.
const (
	startX    = 64
	startPage = 3
)

// the ghost house door. moving left from here is held without being
// blocked, which keeps the muncher out while letting the chasers pass.
const (
	doorX    = 86
	doorPage = 3
)

// a span of columns, both ends included.
type span struct {
	x0 int
	x1 int
}

func (s span) contains(x int) bool {
	return x >= s.x0 && x <= s.x1
}

// gaps in the horizontal wall line of each page. lines 4 and 5 open up
// inside the ghost house so its occupants can move between bands.
var lineGaps = [raster.NumPages][]span{
	0: {{28, 35}, {92, 99}},
	1: {{12, 19}, {60, 67}, {108, 115}},
	2: {{28, 35}, {92, 99}},
	3: {{12, 19}, {52, 59}, {108, 115}},
	4: {{28, 35}, {73, 88}, {92, 99}},
	5: {{12, 19}, {73, 88}, {108, 115}},
	6: {{28, 35}, {60, 67}, {92, 99}},
	7: {{28, 35}, {92, 99}},
}

// vertical wall segments inside each corridor band. every segment the
// walls carve off keeps at least one shaft, so no item is ever placed
// somewhere the muncher cannot reach.
var corridorWalls = [7][]span{
	0: {{40, 41}, {86, 87}},
	1: {{24, 25}, {102, 103}},
	2: {{40, 41}, {86, 87}},
	3: {{24, 25}, {102, 103}},
	4: {{24, 25}},
	5: {{40, 41}},
	6: {{36, 37}, {90, 91}},
}

// lineRow returns the row of page p's horizontal wall line.
func lineRow(p int) int {
	return p*8 + 4
}

// corridor band c spans rows 8c+5 to 8c+11.
func bandTop(c int) int {
	return c*8 + 5
}

func bandBottom(c int) int {
	return c*8 + 11
}

func inGap(page, x int) bool {
	for _, g := range lineGaps[page] {
		if g.contains(x) {
			return true
		}
	}
	return false
}

// buildWalls draws the structural maze: wall lines with their shaft
// gaps, corridor walls, the ghost house and the side borders.
func buildWalls() raster.Bitmap {
	bm := raster.NewBitmap()

	for p := 0; p < raster.NumPages; p++ {
		for x := borderLeft + 1; x < borderRight; x++ {
			if !inGap(p, x) {
				bm.SetPixel(x, lineRow(p))
			}
		}
	}

	for c, walls := range corridorWalls {
		for _, w := range walls {
			for x := w.x0; x <= w.x1; x++ {
				bm.VLine(x, bandTop(c), bandBottom(c))
			}
		}
	}

	// ghost house: corridor bands 3 to 5 between columns 71 and 90.
	// the right wall stops short of band 3, leaving the door open
	bm.VLine(71, bandTop(3), bandBottom(5))
	bm.VLine(72, bandTop(3), bandBottom(5))
	bm.VLine(89, lineRow(4), bandBottom(5))
	bm.VLine(90, lineRow(4), bandBottom(5))

	// side borders, open along the tunnel band
	for _, x := range []int{borderLeft, borderRight} {
		bm.VLine(x, lineRow(0), lineRow(tunnelCorridor))
		bm.VLine(x, lineRow(tunnelCorridor+1), lineRow(7))
	}

	return bm
}

// buildMask returns the collision mask: the walls plus solid fill over
// the side margins, so that the only way out of the playfield is along
// the tunnel band or through the wrap shafts. The margins stay empty in
// the rendered art; the lives and level badges are drawn over them.
func buildMask() raster.Bitmap {
	bm := buildWalls()

	for x := 0; x < borderLeft; x++ {
		bm.VLine(x, 0, lineRow(tunnelCorridor))
		bm.VLine(x, lineRow(tunnelCorridor+1), raster.Height-1)
	}
	for x := borderRight + 1; x < raster.Width; x++ {
		bm.VLine(x, 0, lineRow(tunnelCorridor))
		bm.VLine(x, lineRow(tunnelCorridor+1), raster.Height-1)
	}

	return bm
}

// plain items are two pixels, power items three pixels across two
// columns. both sit in the upper half of their corridor band so they
// fall inside the collection window of a muncher resting at restSub.
const (
	plainItemArt = 0xc0
	powerItemArt = 0xe0
)

// plain item columns per corridor.
var itemColumns = [7][]int{
	0: {18, 26, 34, 46, 54, 62, 70, 78, 92, 100},
	1: {14, 30, 38, 46, 54, 62, 70, 78, 94, 110},
	2: {14, 22, 30, 50, 58, 66, 74, 94, 110},
	3: {14, 30, 38, 46, 54, 62, 94, 110},
	4: {14, 30, 38, 46, 54, 62, 94, 102, 110},
	5: {18, 26, 34, 46, 54, 62, 70, 94, 102, 110},
	6: {},
}

// leading columns of the two column power items.
var powerColumns = [7][]int{
	0: {10, 110},
	5: {10},
	6: {114},
}

// powerOrdinals is where the power items land in the field's page major
// scan order: the four pairs at the extremes of the layout.
var powerOrdinals = []int{0, 1, 12, 13, 50, 51, 62, 63}

// lastRequiredItem is the highest ordinal the level clear check looks
// at. The final item of the last power pair never gates the level.
const lastRequiredItem = 62

// buildItemArt returns the item art bitmap the field is numbered from.
func buildItemArt() raster.Bitmap {
	bm := raster.NewBitmap()

	for c := 0; c < 7; c++ {
		for _, x := range itemColumns[c] {
			bm.OrByte(x, c, plainItemArt)
		}
		for _, x := range powerColumns[c] {
			bm.OrByte(x, c, powerItemArt)
			bm.OrByte(x+1, c, powerItemArt)
		}
	}

	return bm
}

// homeBox reports whether a position is inside the ghost house region
// that clears a chaser's tag.
func homeBox(x, page int) bool {
	return x >= 74 && x <= 76 && page >= 2 && page <= 4
}
