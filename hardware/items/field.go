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

package items

import "github.com/wagiminator/tinyconsole/hardware/raster"

// Field holds the consumable items of one level: the static art, the
// ordinal numbering derived from it and the presence mask.
type Field struct {
	art raster.Bitmap

	// ordinal per framebuffer cell, -1 where there is no item column
	ordinal [raster.NumBytes]int16

	count   int
	present []byte
	power   []bool
}

// NewField is the preferred method of initialisation for the Field type.
// every non-empty byte column of art becomes an item column, numbered in
// page major scan order. power lists the ordinals of the power items.
// the field starts with every item present.
func NewField(art raster.Bitmap, power []int) *Field {
	f := &Field{art: art}

	for i := range f.ordinal {
		f.ordinal[i] = -1
	}

	for page := 0; page < raster.NumPages; page++ {
		for x := 0; x < raster.Width; x++ {
			if art.Byte(x, page) != 0 {
				f.ordinal[raster.Index(x, page)] = int16(f.count)
				f.count++
			}
		}
	}

	f.present = make([]byte, (f.count+7)/8)
	f.power = make([]bool, f.count)
	for _, p := range power {
		if p >= 0 && p < f.count {
			f.power[p] = true
		}
	}

	f.Refill()

	return f
}

// Count returns the number of item columns in the field.
func (f *Field) Count() int {
	return f.count
}

// Ordinal returns the item column number at (x, page), or -1 if the cell
// holds no item.
func (f *Field) Ordinal(x, page int) int {
	if x < 0 || x >= raster.Width || page < 0 || page >= raster.NumPages {
		return -1
	}
	return int(f.ordinal[raster.Index(x, page)])
}

// Present reports whether the item column is still on the field.
func (f *Field) Present(ordinal int) bool {
	if ordinal < 0 || ordinal >= f.count {
		return false
	}
	return f.present[ordinal>>3]&(0x80>>(ordinal&0x07)) != 0
}

// Power reports whether the ordinal is one of the power items.
func (f *Field) Power(ordinal int) bool {
	return ordinal >= 0 && ordinal < f.count && f.power[ordinal]
}

// Collect removes the item column from the field. collecting an absent
// column is a no-op.
func (f *Field) Collect(ordinal int) {
	if ordinal < 0 || ordinal >= f.count {
		return
	}
	f.present[ordinal>>3] &^= 0x80 >> (ordinal & 0x07)
}

// AnyPresent reports whether any item with an ordinal in [from, to] is
// still on the field.
func (f *Field) AnyPresent(from, to int) bool {
	if from < 0 {
		from = 0
	}
	if to >= f.count {
		to = f.count - 1
	}
	for ord := from; ord <= to; ord++ {
		if f.Present(ord) {
			return true
		}
	}
	return false
}

// Refill puts every item back on the field.
func (f *Field) Refill() {
	for i := range f.present {
		f.present[i] = 0xff
	}
}
