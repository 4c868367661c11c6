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

// Fixed geometry of the console display.
const (
	// Width is the number of pixel columns.
	Width = 128

	// NumPages is the number of row-bands. Each page is one byte deep per
	// column.
	NumPages = 8

	// PageDepth is the number of pixels stacked in one page byte.
	PageDepth = 8

	// Height is the number of pixel rows.
	Height = NumPages * PageDepth

	// NumBytes is the size of a full raster in bytes.
	NumBytes = Width * NumPages
)

// Index returns the offset of the byte for (x, page) in a page-major raster.
// The caller is responsible for bounds.
func Index(x, page int) int {
	return page*Width + x
}

// FrameBuffer is a fixed-size packed raster that frames are composed into.
// Exactly two instances exist at runtime, owned by the transfer pipeline,
// alternating between "being composed" and "in flight".
type FrameBuffer struct {
	pix [NumBytes]byte
}

// Clear resets every byte of the buffer.
func (fb *FrameBuffer) Clear() {
	for i := range fb.pix {
		fb.pix[i] = 0x00
	}
}

// Byte returns the raster byte at (x, page). Out-of-range coordinates return
// zero.
func (fb *FrameBuffer) Byte(x, page int) byte {
	if x < 0 || x >= Width || page < 0 || page >= NumPages {
		return 0x00
	}
	return fb.pix[Index(x, page)]
}

// Pixel returns the pixel state at (x, y). Out-of-range coordinates return
// false.
func (fb *FrameBuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return fb.pix[Index(x, y>>3)]&(0x01<<(y&0x07)) != 0x00
}

// Pixels returns the raster in transmission order: page-major, left-to-right
// within a page, topmost page first. The slice aliases the buffer and is
// only valid while the buffer is not being recomposed.
func (fb *FrameBuffer) Pixels() []byte {
	return fb.pix[:]
}
