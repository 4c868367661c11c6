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

// Package digest is used to create mathematical hashes of frame and tone
// output. The hashes are used to compare output from previous executions
// of the console: if a new hash differs from a previously recorded value
// then something has changed. This is the basis of the regression tests.
//
// The Video type implements the oled.PixelSink interface and the Audio
// type implements the beeper.Beeper interface, so either can be plugged
// into a console in place of a real display or speaker.
package digest

// Digest implementations compress a stream of output into a hash.
//
// Note that the hashes are chained: each video frame or audio flush is
// summed together with the hash of everything that came before it, so a
// single value stands for the whole stream and not just its tail.
type Digest interface {
	Hash() string
	ResetDigest()
}
