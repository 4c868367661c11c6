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

package collision_test

import (
	"testing"

	"github.com/wagiminator/tinyconsole/hardware/collision"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/raster"
	"github.com/wagiminator/tinyconsole/test"
)

// the wrap rule shared by every muncher class: x modulo the playfield
// width, vertical tunnelling through the transit pages
var tunnel = collision.WrapRule{ModX: 128, Below: 9, BelowTo: -1, Above: -2, AboveTo: 8}

func TestStepAndWrap(t *testing.T) {
	tests := []struct {
		x, page, sub int
		dir          joypad.Direction
		nx, np, ns   int
	}{
		{10, 3, 5, joypad.None, 10, 3, 5},
		{10, 3, 5, joypad.Right, 11, 3, 5},
		{10, 3, 5, joypad.Left, 9, 3, 5},
		{10, 3, 5, joypad.Down, 10, 3, 6},
		{10, 3, 7, joypad.Down, 10, 4, 0},
		{10, 4, 0, joypad.Up, 10, 3, 7},

		// horizontal wrap at the playfield edges
		{0, 3, 5, joypad.Left, 127, 3, 5},
		{127, 3, 5, joypad.Right, 0, 3, 5},

		// vertical wrap happens one page beyond the transit pages
		{5, 8, 7, joypad.Down, 5, -1, 0},
		{5, -1, 0, joypad.Up, 5, 8, 7},
	}

	for _, tc := range tests {
		nx, np, ns := tunnel.Step(tc.x, tc.page, tc.sub, tc.dir)
		test.Equate(t, nx, tc.nx)
		test.Equate(t, np, tc.np)
		test.Equate(t, ns, tc.ns)
	}
}

func TestHorizontalLeadingColumn(t *testing.T) {
	mask := raster.NewBitmap()
	mask.VLine(20, 0, raster.Height-1)

	e := collision.NewEngine(mask)

	// moving right, the leading column is candidate x+6
	test.Equate(t, e.Blocked(tunnel, 13, 2, 0, joypad.Right), true)
	test.Equate(t, e.Blocked(tunnel, 12, 2, 0, joypad.Right), false)

	// moving left, the leading column is candidate x
	test.Equate(t, e.Blocked(tunnel, 21, 2, 0, joypad.Left), true)
	test.Equate(t, e.Blocked(tunnel, 22, 2, 0, joypad.Left), false)

	// only the leading column is probed. a wall inside the candidate
	// footprint but behind the leading edge does not block
	inner := raster.NewBitmap()
	inner.VLine(24, 0, raster.Height-1)
	e = collision.NewEngine(inner)
	test.Equate(t, e.Blocked(tunnel, 19, 2, 0, joypad.Right), false)
}

func TestHorizontalSubByteMasks(t *testing.T) {
	// a wall occupying only the bottom row of page 2
	mask := raster.NewBitmap()
	mask.SetPixel(20, 23)

	e := collision.NewEngine(mask)

	// a footprint at sub 0 covers rows 16..22 and clears the wall
	test.Equate(t, e.Blocked(tunnel, 13, 2, 0, joypad.Right), false)

	// at sub 1 the footprint's bottom row is 23
	test.Equate(t, e.Blocked(tunnel, 13, 2, 1, joypad.Right), true)
}

func TestVerticalWeightRule(t *testing.T) {
	// a wall along row 24, the top row of page 3
	mask := raster.NewBitmap()
	mask.HLine(10, 16, 24)

	e := collision.NewEngine(mask)

	// stepping down to sub 2 still probes the entity's own page even
	// though the footprint's last row has reached the wall
	test.Equate(t, e.Blocked(tunnel, 10, 2, 1, joypad.Down), false)

	// stepping down to sub 3 probes the next page's high part
	test.Equate(t, e.Blocked(tunnel, 10, 2, 2, joypad.Down), true)

	// a wall along row 15, the bottom row of page 1
	mask = raster.NewBitmap()
	mask.HLine(10, 16, 15)

	e = collision.NewEngine(mask)

	// stepping up across the page boundary probes the new page
	test.Equate(t, e.Blocked(tunnel, 10, 2, 0, joypad.Up), true)
	test.Equate(t, e.Blocked(tunnel, 10, 2, 1, joypad.Up), false)
}

func TestVerticalFullWidth(t *testing.T) {
	// a one column pillar
	mask := raster.NewBitmap()
	mask.VLine(16, 24, 31)

	e := collision.NewEngine(mask)

	// the pillar blocks whether it meets the rightmost or the leftmost
	// column of the footprint
	test.Equate(t, e.Blocked(tunnel, 10, 2, 5, joypad.Down), true)
	test.Equate(t, e.Blocked(tunnel, 16, 2, 5, joypad.Down), true)

	// and not at all once the footprint has passed it
	test.Equate(t, e.Blocked(tunnel, 3, 2, 5, joypad.Down), false)
	test.Equate(t, e.Blocked(tunnel, 17, 2, 5, joypad.Down), false)
}

func TestCorridorCruise(t *testing.T) {
	// a seven row corridor between two walls. an entity at sub 5 fits
	// exactly: free to cruise horizontally, blocked vertically
	mask := raster.NewBitmap()
	mask.HLine(0, raster.Width-1, 20)
	mask.HLine(0, raster.Width-1, 28)

	e := collision.NewEngine(mask)

	for x := 1; x < 120; x++ {
		test.Equate(t, e.Blocked(tunnel, x, 2, 5, joypad.Right), false)
		test.Equate(t, e.Blocked(tunnel, x, 2, 5, joypad.Left), false)
		test.Equate(t, e.Blocked(tunnel, x, 2, 5, joypad.Up), true)
		test.Equate(t, e.Blocked(tunnel, x, 2, 5, joypad.Down), true)
	}
}

func TestNoneNeverBlocked(t *testing.T) {
	mask := raster.NewBitmap()
	for y := 0; y < raster.Height; y++ {
		mask.HLine(0, raster.Width-1, y)
	}

	e := collision.NewEngine(mask)

	// a parked entity probes nothing, even inside a solid mask
	test.Equate(t, e.Blocked(tunnel, 10, 2, 0, joypad.None), false)
}

func TestTransitPagesClear(t *testing.T) {
	mask := raster.NewBitmap()
	for y := 0; y < raster.Height; y++ {
		mask.HLine(0, raster.Width-1, y)
	}

	e := collision.NewEngine(mask)

	// probes above and below the playfield read clear, so an entity in
	// the tunnel passes through a solid mask
	test.Equate(t, e.Blocked(tunnel, 10, 8, 0, joypad.Down), false)
	test.Equate(t, e.Blocked(tunnel, 10, 8, 3, joypad.Down), false)
	test.Equate(t, e.Blocked(tunnel, 10, 8, 7, joypad.Down), false)
	test.Equate(t, e.Blocked(tunnel, 10, -1, 5, joypad.Up), false)
	test.Equate(t, e.Blocked(tunnel, 10, -1, 0, joypad.Up), false)
}

func TestWrapProbes(t *testing.T) {
	// wall on the leftmost column only
	left := raster.NewBitmap()
	left.VLine(0, 0, raster.Height-1)

	e := collision.NewEngine(left)

	// moving right near the right edge, the leading column wraps to 0
	test.Equate(t, e.Blocked(tunnel, 121, 2, 0, joypad.Right), true)

	// moving left from x=0 probes column 127, not a clamped column 0
	test.Equate(t, e.Blocked(tunnel, 0, 2, 0, joypad.Left), false)

	right := raster.NewBitmap()
	right.VLine(raster.Width-1, 0, raster.Height-1)

	e = collision.NewEngine(right)
	test.Equate(t, e.Blocked(tunnel, 0, 2, 0, joypad.Left), true)
}

func TestFootprintBox(t *testing.T) {
	b := collision.FootprintBox(10, 2, 3)
	test.Equate(t, b.MinX, 10)
	test.Equate(t, b.MaxX, 16)
	test.Equate(t, b.MinY, 19)
	test.Equate(t, b.MaxY, 25)
}

func TestBoxOverlaps(t *testing.T) {
	b := collision.Box{MinX: 0, MinY: 0, MaxX: 6, MaxY: 6}

	test.Equate(t, b.Overlaps(b), true)

	// touching edges count
	test.Equate(t, b.Overlaps(collision.Box{MinX: 6, MinY: 0, MaxX: 12, MaxY: 6}), true)
	test.Equate(t, b.Overlaps(collision.Box{MinX: 7, MinY: 0, MaxX: 13, MaxY: 6}), false)
	test.Equate(t, b.Overlaps(collision.Box{MinX: 0, MinY: 6, MaxX: 6, MaxY: 12}), true)
	test.Equate(t, b.Overlaps(collision.Box{MinX: 0, MinY: 7, MaxX: 6, MaxY: 13}), false)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		overlap    bool
		vulnerable bool
		tagged     bool
		contact    collision.Contact
		newTag     bool
	}{
		{false, false, false, collision.NoContact, false},
		{false, true, true, collision.NoContact, true},
		{true, true, false, collision.Tagged, true},
		{true, true, true, collision.Harmless, true},
		{true, false, true, collision.Harmless, true},
		{true, false, false, collision.Fatal, false},
	}

	for _, tc := range tests {
		contact, tag := collision.Resolve(tc.overlap, tc.vulnerable, tc.tagged)
		test.Equate(t, contact == tc.contact, true)
		test.Equate(t, tag, tc.newTag)
	}
}
