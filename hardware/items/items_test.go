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

package items_test

import (
	"testing"

	"github.com/wagiminator/tinyconsole/hardware/items"
	"github.com/wagiminator/tinyconsole/hardware/raster"
	"github.com/wagiminator/tinyconsole/test"
)

// a small field: five two column dots. scan order gives page 0 the
// ordinals 0..3 and page 2 the ordinals 4..9. ordinals 0 and 1 are the
// power pair.
func miniField() *items.Field {
	art := raster.NewBitmap()
	for _, x := range []int{10, 11, 20, 21} {
		art.OrByte(x, 0, 0xc0)
		art.OrByte(x, 2, 0xc0)
	}
	art.OrByte(40, 2, 0xc0)
	art.OrByte(41, 2, 0xc0)

	return items.NewField(art, []int{0, 1})
}

func TestOrdinalAssignment(t *testing.T) {
	f := miniField()

	test.Equate(t, f.Count(), 10)
	test.Equate(t, f.Ordinal(10, 0), 0)
	test.Equate(t, f.Ordinal(11, 0), 1)
	test.Equate(t, f.Ordinal(20, 0), 2)
	test.Equate(t, f.Ordinal(21, 0), 3)
	test.Equate(t, f.Ordinal(10, 2), 4)
	test.Equate(t, f.Ordinal(41, 2), 9)

	// cells without an item column
	test.Equate(t, f.Ordinal(15, 0), -1)
	test.Equate(t, f.Ordinal(10, 1), -1)
	test.Equate(t, f.Ordinal(-1, 0), -1)

	test.Equate(t, f.Power(0), true)
	test.Equate(t, f.Power(1), true)
	test.Equate(t, f.Power(2), false)

	for ord := 0; ord < f.Count(); ord++ {
		test.Equate(t, f.Present(ord), true)
	}
}

func TestCollectionWindow(t *testing.T) {
	f := miniField()

	var collected []int
	var px, ppage, psub int
	active := false

	lay := items.NewLayer(f, func() (int, int, int, bool) {
		return px, ppage, psub, active
	}, func(ord int, power bool) {
		collected = append(collected, ord)
	})

	// inactive collector: rendering only
	test.Equate(t, lay.Byte(20, 2, 0), 0xc0)
	test.Equate(t, f.Present(6), true)

	// the window is the open interval (px, px+6) on the muncher's page
	// while its offset is below six
	px, ppage, psub, active = 19, 2, 0, true
	test.Equate(t, lay.Byte(20, 2, 0), 0xc0) // collected, rendered one last time
	test.Equate(t, f.Present(6), false)
	test.Equate(t, len(collected), 1)
	test.Equate(t, collected[0], 6)

	// gone from the next frame
	test.Equate(t, lay.Byte(20, 2, 0), 0)

	// column at px is outside the open interval
	px = 21
	test.Equate(t, lay.Byte(21, 2, 0), 0xc0)
	test.Equate(t, f.Present(7), true)

	// column at px+6 is outside too
	px = 15
	test.Equate(t, lay.Byte(21, 2, 0), 0xc0)
	test.Equate(t, f.Present(7), true)

	// an offset past five collects from the page below
	px, ppage, psub = 39, 1, 6
	test.Equate(t, lay.Byte(40, 2, 0), 0xc0)
	test.Equate(t, f.Present(8), false)

	// but not from the muncher's own page
	px, ppage, psub = 40, 2, 6
	test.Equate(t, lay.Byte(41, 2, 0), 0xc0)
	test.Equate(t, f.Present(9), true)
}

func TestPowerSplit(t *testing.T) {
	f := miniField()

	plain := items.NewLayer(f, nil, nil)
	power := items.NewPowerLayer(f)

	// power art comes from the power layer only
	test.Equate(t, plain.Byte(10, 0, 0), 0)
	test.Equate(t, power.Byte(10, 0, 0), 0xc0)

	// plain art the other way round
	test.Equate(t, plain.Byte(20, 0, 0), 0xc0)
	test.Equate(t, power.Byte(20, 0, 0), 0)

	f.Collect(0)
	test.Equate(t, power.Byte(10, 0, 0), 0)
	test.Equate(t, power.Byte(11, 0, 0), 0xc0)
}

func TestPowerCollection(t *testing.T) {
	f := miniField()

	var powerFlags []bool
	active := true

	lay := items.NewLayer(f, func() (int, int, int, bool) {
		return 9, 0, 5, active
	}, func(ord int, power bool) {
		powerFlags = append(powerFlags, power)
	})

	// the plain layer collects power columns without rendering them
	test.Equate(t, lay.Byte(10, 0, 0), 0)
	test.Equate(t, f.Present(0), false)
	test.Equate(t, len(powerFlags), 1)
	test.Equate(t, powerFlags[0], true)
}

func TestHiddenPowerStillCollectable(t *testing.T) {
	f := miniField()

	lay := items.NewLayer(f, func() (int, int, int, bool) {
		return 9, 0, 5, true
	}, nil)

	cmp := raster.NewCompositor()
	cmp.AddLayer(items.NewPowerLayer(f), raster.TickRange{From: 6, To: 12})
	cmp.AddLayer(lay)

	// compose inside the blink window: the power art is hidden but the
	// collection still happens
	fb := &raster.FrameBuffer{}
	cmp.Compose(fb, 8)

	test.Equate(t, fb.Byte(10, 0), 0)
	test.Equate(t, f.Present(0), false)
	test.Equate(t, f.Present(1), false)
}

func TestLastFrameRender(t *testing.T) {
	f := miniField()

	lay := items.NewLayer(f, func() (int, int, int, bool) {
		return 9, 0, 5, true
	}, nil)

	cmp := raster.NewCompositor()
	cmp.AddLayer(items.NewPowerLayer(f), raster.TickRange{From: 6, To: 12})
	cmp.AddLayer(lay)

	// outside the blink window the power layer runs first in the cell,
	// so the frame that collects an item still shows it
	fb := &raster.FrameBuffer{}
	cmp.Compose(fb, 0)

	test.Equate(t, fb.Byte(10, 0), 0xc0)
	test.Equate(t, f.Present(0), false)

	cmp.Compose(fb, 1)
	test.Equate(t, fb.Byte(10, 0), 0)
}

func TestAnyPresentAndRefill(t *testing.T) {
	f := miniField()

	test.Equate(t, f.AnyPresent(0, 8), true)

	for ord := 0; ord <= 8; ord++ {
		f.Collect(ord)
	}

	// everything up to 8 is gone; 9 is still out there
	test.Equate(t, f.AnyPresent(0, 8), false)
	test.Equate(t, f.AnyPresent(0, 9), true)

	f.Refill()
	test.Equate(t, f.AnyPresent(0, 8), true)
	for ord := 0; ord < f.Count(); ord++ {
		test.Equate(t, f.Present(ord), true)
	}
}
