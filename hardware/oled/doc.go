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

// Package oled implements the transfer pipeline between the compositor
// and the display.
//
// The pipeline owns exactly two frame buffers. At any instant one is
// available for composition and at most one is in flight to the
// PixelSink. Submit hands the freshly composed buffer over and switches
// composition to the other one; before pushing it first waits out any
// transmission still running, so the double buffer invariant holds: no
// buffer is ever written while in flight, and no two transmissions
// overlap.
//
// Completion arrives out of band. The sink calls the completion func it
// was given exactly once, from any goroutine; the handler's only job is
// to flip the buffer's in-flight marker and signal the waiter. All game
// and frame state stays with the main flow.
//
// There are no timeouts. A sink that never completes stalls the pipeline
// for good, which mirrors the hardware this models: a wedged display
// transfer had no software recovery either.
package oled
