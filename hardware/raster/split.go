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

// SplitLow returns the part of source byte b that lands on the sprite's own
// page when shifted down by k rows, k∈[0,8).
func SplitLow(b byte, k int) byte {
	return b << k
}

// SplitHigh returns the part of source byte b that spills into the page
// below when shifted down by k rows, k∈[0,8). For k=0 the spill is zero.
func SplitHigh(b byte, k int) byte {
	// a shift count of 8 yields zero, which is exactly the k=0 contract
	return b >> (8 - k)
}
