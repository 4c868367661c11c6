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

// Bitmap is a full-screen page-major raster used for static art and
// collision masks. Bitmaps are drawn once during construction and are
// read-only for the lifetime of the engine; every read is bounds checked and
// out-of-range reads return zero, which is what makes pages -1 and 8 safe
// transit positions for wrapping entities.
type Bitmap []byte

// NewBitmap returns an empty full-screen bitmap.
func NewBitmap() Bitmap {
	return make(Bitmap, NumBytes)
}

// Byte returns the bitmap byte at (x, page). Out-of-range coordinates return
// zero.
func (bm Bitmap) Byte(x, page int) byte {
	if x < 0 || x >= Width || page < 0 || page >= NumPages {
		return 0x00
	}
	return bm[Index(x, page)]
}

// Pixel returns the pixel state at (x, y). Out-of-range coordinates return
// false.
func (bm Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return bm[Index(x, y>>3)]&(0x01<<(y&0x07)) != 0x00
}

// SetPixel sets the pixel at (x, y). Out-of-range coordinates are ignored.
// Drawing functions are for construction time only.
func (bm Bitmap) SetPixel(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	bm[Index(x, y>>3)] |= 0x01 << (y & 0x07)
}

// OrByte ORs v into the byte at (x, page). Out-of-range coordinates are
// ignored.
func (bm Bitmap) OrByte(x, page int, v byte) {
	if x < 0 || x >= Width || page < 0 || page >= NumPages {
		return
	}
	bm[Index(x, page)] |= v
}

// HLine draws a horizontal run of pixels from (x0, y) to (x1, y) inclusive.
func (bm Bitmap) HLine(x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		bm.SetPixel(x, y)
	}
}

// VLine draws a vertical run of pixels from (x, y0) to (x, y1) inclusive.
func (bm Bitmap) VLine(x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		bm.SetPixel(x, y)
	}
}

// Box draws the outline of the rectangle with corners (x0, y0) and (x1, y1)
// inclusive.
func (bm Bitmap) Box(x0, y0, x1, y1 int) {
	bm.HLine(x0, x1, y0)
	bm.HLine(x0, x1, y1)
	bm.VLine(x0, y0, y1)
	bm.VLine(x1, y0, y1)
}
