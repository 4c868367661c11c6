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

package actor

// PingPongAnim walks its frames up and down, holding both endpoints for
// one extra advance. three frames produce 0 1 2 2 1 0 0 1 ... which is
// what gives the primary actor's mouth its bite.
type PingPongAnim struct {
	frames int
	frame  int
	back   bool
}

// NewPingPongAnim is the preferred method of initialisation for the
// PingPongAnim type.
func NewPingPongAnim(frames int) *PingPongAnim {
	return &PingPongAnim{frames: frames}
}

// Advance moves the animation on by one position.
func (a *PingPongAnim) Advance() {
	if !a.back {
		if a.frame < a.frames-1 {
			a.frame++
		} else {
			a.back = true
		}
		return
	}
	if a.frame > 0 {
		a.frame--
	} else {
		a.back = false
	}
}

// Frame returns the current frame number.
func (a *PingPongAnim) Frame() int {
	return a.frame
}

// Reset returns the animation to its first frame.
func (a *PingPongAnim) Reset() {
	a.frame = 0
	a.back = false
}

// ToggleAnim flips between frames 0 and 1.
type ToggleAnim struct {
	frame int
}

// Advance moves the animation on by one position.
func (a *ToggleAnim) Advance() {
	if a.frame < 1 {
		a.frame++
	} else {
		a.frame = 0
	}
}

// Frame returns the current frame number.
func (a *ToggleAnim) Frame() int {
	return a.frame
}
