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

// Package random should be used in preference to the math/rand package when
// a random number is required inside the console. It reproduces the 16-bit
// Galois linear-feedback shift register the original hardware uses, taps
// 0xb400, power-on value 0xace1.
//
// Randomness of this kind is deliberately weak. What matters is that the
// sequence is byte-for-byte reproducible from the seed: two consoles started
// from the same seed and fed the same input make identical decisions, which
// is what the regression digests rely on.
package random
