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

// GlyphWidth is the width in columns of every sprite glyph.
const GlyphWidth = 8

// Sprite is one renderable instance for the current frame: a glyph of 8
// column bytes positioned at a column, a page and a sub-row offset. The
// glyph slice is read-only art data.
//
// A sprite at page p contributes SplitLow of its glyph bytes to page p and
// SplitHigh to page p+1. A sprite parked on page -1 or page 8 therefore
// shows only the part that spills into the visible range, which is how
// entities cross the vertical wraparound without popping.
type Sprite struct {
	X     int
	Page  int
	Sub   int
	Glyph []byte
}

// SpriteLayer renders a set of sprites with the sub-byte split rule. The set
// is replaced wholesale before each composed frame; the layer itself holds
// no other state.
type SpriteLayer struct {
	sprites []Sprite
}

// NewSpriteLayer is the preferred method of initialisation for the
// SpriteLayer type.
func NewSpriteLayer() *SpriteLayer {
	return &SpriteLayer{
		sprites: make([]Sprite, 0, 8),
	}
}

// Set replaces the sprite set rendered by the layer.
func (lay *SpriteLayer) Set(sprites []Sprite) {
	lay.sprites = lay.sprites[:0]
	lay.sprites = append(lay.sprites, sprites...)
}

// Byte implements the Layer interface.
func (lay *SpriteLayer) Byte(x, page int, _ int) byte {
	var b byte

	for i := range lay.sprites {
		spr := &lay.sprites[i]

		if x < spr.X || x >= spr.X+GlyphWidth || spr.Glyph == nil {
			continue
		}

		src := spr.Glyph[x-spr.X]
		if spr.Page == page {
			b |= SplitLow(src, spr.Sub)
		} else if spr.Page+1 == page && spr.Sub != 0 {
			b |= SplitHigh(src, spr.Sub)
		}
	}

	return b
}
