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

package joypad

// Direction is a single heading on the playfield. the zero value is the
// none sentinel, meaning the entity is parked.
type Direction int

// Valid Direction values.
const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether the direction moves across the pages.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// State is one polled snapshot of the joypad. a diagonal stick position
// asserts two direction fields at once.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Act   bool
}

// Direction collapses the snapshot to a single heading. the horizontal
// axis wins a diagonal, mirroring the order the handheld polls its axes.
func (s State) Direction() Direction {
	if s.Left {
		return Left
	}
	if s.Right {
		return Right
	}
	if s.Down {
		return Down
	}
	if s.Up {
		return Up
	}
	return None
}

// Input is implemented by anything that can be polled for joypad state:
// the analog stick, a front end's keyboard handler, a script.
type Input interface {
	State() State
}

// InputFunc is an adapter allowing a plain function to be used as an
// Input.
type InputFunc func() State

// State implements the Input interface.
func (f InputFunc) State() State {
	return f()
}
