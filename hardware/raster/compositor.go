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

package raster

// Layer is one source of raster bytes for the Compositor. The compositor
// calls Byte for every cell of the raster, in page-major, column-minor
// order, once per composed frame.
//
// A Layer must return zero for any cell it does not cover. It must never
// read from the frame being composed.
type Layer interface {
	Byte(x, page int, tick int) byte
}

// LayerFunc allows an ordinary function to be used as a Layer.
type LayerFunc func(x, page int, tick int) byte

// Byte implements the Layer interface.
func (f LayerFunc) Byte(x, page int, tick int) byte {
	return f(x, page, tick)
}

// BitmapLayer wraps a Bitmap so it can be composed as a static layer.
func BitmapLayer(bm Bitmap) Layer {
	return LayerFunc(func(x, page int, _ int) byte {
		return bm.Byte(x, page)
	})
}

// TickRange is an inclusive range of tick values, taken modulo the blink
// cycle by whoever configures it.
type TickRange struct {
	From int
	To   int
}

// Contains reports whether the tick value is inside the range.
func (r TickRange) Contains(tick int) bool {
	return tick >= r.From && tick <= r.To
}

// a layer together with its compositor-level configuration.
type layerEntry struct {
	source Layer

	// the layer contributes zero during these tick ranges
	hidden []TickRange
}

func (e *layerEntry) hiddenAt(tick int) bool {
	for _, r := range e.hidden {
		if r.Contains(tick) {
			return true
		}
	}
	return false
}

// Compositor combines layers into a FrameBuffer with bitwise OR. Layers are
// evaluated in the order they were added, cell by cell, so a layer with side
// effects (the item field) observes a stable ordering from frame to frame.
//
// Given identical layer state and tick value, Compose always produces a
// byte-identical result.
type Compositor struct {
	layers []layerEntry

	// inverted composition is used by the attract screen
	invert bool

	// per-frame visibility scratch, kept between frames to avoid an
	// allocation in the compose loop
	visible []bool
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type.
func NewCompositor() *Compositor {
	return &Compositor{
		layers: make([]layerEntry, 0, 8),
	}
}

// AddLayer appends a layer to the composition order, optionally with hidden
// tick ranges during which the layer contributes nothing.
func (cmp *Compositor) AddLayer(l Layer, hidden ...TickRange) {
	cmp.layers = append(cmp.layers, layerEntry{source: l, hidden: hidden})
	cmp.visible = append(cmp.visible, true)
}

// SetInvert selects inverted composition: every composed byte is
// complemented after the layers have been combined.
func (cmp *Compositor) SetInvert(invert bool) {
	cmp.invert = invert
}

// Compose fills the entire frame buffer from the configured layers for the
// given tick value.
func (cmp *Compositor) Compose(fb *FrameBuffer, tick int) {
	// hidden state is constant for the whole frame. decide it once rather
	// than per cell
	for i := range cmp.layers {
		cmp.visible[i] = !cmp.layers[i].hiddenAt(tick)
	}

	for page := 0; page < NumPages; page++ {
		for x := 0; x < Width; x++ {
			var b byte
			for i := range cmp.layers {
				if cmp.visible[i] {
					b |= cmp.layers[i].source.Byte(x, page, tick)
				}
			}
			if cmp.invert {
				b = ^b
			}
			fb.pix[Index(x, page)] = b
		}
	}
}
