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

// Package raster implements the console's packed 1-bit raster model and the
// compositor that fills it.
//
// The display is 128x64 pixels arranged as 8 "pages" of 128 columns. Each
// byte of the raster encodes 8 vertically stacked pixels of one column, the
// least significant bit topmost. The raster is stored page-major: all 128
// bytes of page 0, then page 1, and so on. This is the natural layout of the
// display controller the console was built around and it is preserved
// everywhere, including the byte stream handed to a PixelSink.
//
// Nothing in the console draws at pixel granularity during play. Sprites are
// 8-byte column glyphs placed at a column, a page and a sub-row offset
// k∈[0,8). A glyph byte b contributes (b<<k) to the sprite's own page and
// (b>>(8-k)) to the page below; for k=0 the spill is zero. The same split
// convention is used by the collision package for its probe masks, so
// renders and collisions can never disagree about where a sprite is.
//
// The Compositor combines any number of Layers with bitwise OR, in the order
// they were added. A layer can be configured with hidden tick ranges during
// which it contributes nothing; blink effects are expressed this way rather
// than with special state in the layer itself.
package raster
