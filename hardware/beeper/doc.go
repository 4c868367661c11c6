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

// Package beeper defines the tone request protocol between the console
// and whatever makes noise.
//
// A tone keeps the handheld's native units: a pitch byte, where one half
// period of the square wave lasts (255-pitch) microseconds, and a length
// counted in full periods. A pitch of zero is a rest held for the same
// timing. Requests are fire and forget: no backpressure, no
// acknowledgment, and a sink that cannot keep up simply drops audio on
// the floor.
//
// PinBeeper is the faithful driver: it bit-bangs the square wave onto a
// buzzer pin on the caller's goroutine, blocking for the tone's
// duration, exactly as the original hardware did. Front ends with real
// audio hardware implement the Beeper interface themselves and schedule
// the wave properly.
package beeper
