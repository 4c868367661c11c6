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

// Collector supplies the position of the collecting actor at compose
// time. ok is false when nothing collects, as in attract mode.
type Collector func() (x, page, sub int, ok bool)

// window reports whether the item column at (x, page) is inside the
// collection window of a muncher anchored at (px, ppage, psub). the
// window is the open column interval (px, px+6), on the muncher's own
// page while its offset is below six and on the page below once the
// offset passes five.
func window(px, ppage, psub, x, page int) bool {
	if x <= px || x >= px+6 {
		return false
	}
	return (ppage == page && psub < 6) || (ppage == page-1 && psub > 5)
}

// Layer renders the plain items and performs all collection, power items
// included. it must be composed on every frame: hiding it would stop
// items being eaten.
type Layer struct {
	field     *Field
	collector Collector
	onCollect func(ordinal int, power bool)
}

// NewLayer is the preferred method of initialisation for the Layer type.
// collector and onCollect may be nil: a nil collector renders without
// ever collecting.
func NewLayer(field *Field, collector Collector, onCollect func(ordinal int, power bool)) *Layer {
	return &Layer{field: field, collector: collector, onCollect: onCollect}
}

// Byte implements the raster.Layer interface. collection happens here,
// as the compositor passes over the cell.
func (l *Layer) Byte(x, page, _ int) byte {
	b := l.field.art.Byte(x, page)
	if b == 0 {
		return 0
	}

	ord := l.field.Ordinal(x, page)
	if !l.field.Present(ord) {
		return 0
	}

	if l.collector != nil {
		if px, ppage, psub, ok := l.collector(); ok && window(px, ppage, psub, x, page) {
			l.field.Collect(ord)
			if l.onCollect != nil {
				l.onCollect(ord, l.field.Power(ord))
			}
		}
	}

	// power art belongs to the power layer. the collection above still
	// applies to it
	if l.field.Power(ord) {
		return 0
	}

	// a column collected this frame is returned one last time
	return b
}

// PowerLayer renders the power item art and nothing else. add it to the
// compositor before the plain layer, with the blink windows as hidden
// ranges.
type PowerLayer struct {
	field *Field
}

// NewPowerLayer is the preferred method of initialisation for the
// PowerLayer type.
func NewPowerLayer(field *Field) *PowerLayer {
	return &PowerLayer{field: field}
}

// Byte implements the raster.Layer interface.
func (l *PowerLayer) Byte(x, page, _ int) byte {
	b := l.field.art.Byte(x, page)
	if b == 0 {
		return 0
	}

	ord := l.field.Ordinal(x, page)
	if !l.field.Power(ord) || !l.field.Present(ord) {
		return 0
	}

	return b
}
