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

import (
	"github.com/wagiminator/tinyconsole/hardware/collision"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/raster"
	"github.com/wagiminator/tinyconsole/random"
)

// State describes what an actor is doing, derived from its current
// direction.
type State int

// Valid State values.
const (
	Idle State = iota
	MovingHorizontal
	MovingVertical
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case MovingHorizontal:
		return "moving horizontally"
	case MovingVertical:
		return "moving vertically"
	}
	return "unknown"
}

// Class collects the static configuration shared by all actors of one
// kind.
type Class struct {
	// AI actors draw a fresh random direction when a step is blocked.
	// others park on the none sentinel and wait for input
	AI bool

	// how this class wraps at the playfield edges
	Wrap collision.WrapRule

	// Barrier reports positions from which a step along dir is held
	// without being blocked: the actor stays put and keeps its direction.
	// may be nil
	Barrier func(x, page, sub int, dir joypad.Direction) bool
}

// Actor is one moving entity on the playfield. position is exposed as
// plain fields; the game moves actors wholesale on level resets.
type Actor struct {
	Class Class

	X    int
	Page int
	Sub  int

	current joypad.Direction
	pending joypad.Direction

	engine *collision.Engine
	rnd    *random.Random
}

// NewActor is the preferred method of initialisation for the Actor type.
// rnd may be nil for classes that are not AI driven.
func NewActor(class Class, engine *collision.Engine, rnd *random.Random) *Actor {
	return &Actor{Class: class, engine: engine, rnd: rnd}
}

// MoveTo places the actor without any collision checking, facing dir.
// any pending direction is discarded. used for level starts and resets.
func (a *Actor) MoveTo(x, page, sub int, dir joypad.Direction) {
	a.X = x
	a.Page = page
	a.Sub = sub
	a.current = dir
	a.pending = joypad.None
}

// Direction returns the actor's current heading.
func (a *Actor) Direction() joypad.Direction {
	return a.current
}

// State returns what the actor is doing right now.
func (a *Actor) State() State {
	switch {
	case a.current.Horizontal():
		return MovingHorizontal
	case a.current.Vertical():
		return MovingVertical
	}
	return Idle
}

// SetPending asks for a turn. the request is held until a tick on which
// the turn is clear. asking for the direction already being travelled
// cancels any held request.
func (a *Actor) SetPending(dir joypad.Direction) {
	if dir == a.current {
		a.pending = joypad.None
		return
	}
	a.pending = dir
}

// onField reports whether the actor is on one of the playfield's real
// pages, as opposed to a transit page.
func (a *Actor) onField() bool {
	return a.Page >= 0 && a.Page < raster.NumPages
}

// commitable reports whether dir can become the current direction right
// now. horizontal directions cannot be taken up in the tunnel: an actor
// that lost its vertical heading there would never come back.
func (a *Actor) commitable(dir joypad.Direction) bool {
	if dir.Horizontal() && !a.onField() {
		return false
	}
	return !a.engine.Blocked(a.Class.Wrap, a.X, a.Page, a.Sub, dir)
}

// Update advances the actor by at most one pixel. direction processing
// runs every tick; the step itself only on ticks with move set, which is
// how the half rate classes are slowed down.
func (a *Actor) Update(move bool) {
	if a.pending != joypad.None && a.commitable(a.pending) {
		a.current = a.pending
		a.pending = joypad.None
	}

	if !move || a.current == joypad.None {
		return
	}

	// horizontal steps are held while off the playfield
	if a.current.Horizontal() && !a.onField() {
		return
	}

	if a.Class.Barrier != nil && a.Class.Barrier(a.X, a.Page, a.Sub, a.current) {
		return
	}

	if a.engine.Blocked(a.Class.Wrap, a.X, a.Page, a.Sub, a.current) {
		a.current = joypad.None
		if a.Class.AI && a.rnd != nil {
			a.current = joypad.Direction(1 + a.rnd.Intn(4))
		}
		return
	}

	a.X, a.Page, a.Sub = a.Class.Wrap.Step(a.X, a.Page, a.Sub, a.current)
}

// Footprint returns the box the actor's collision footprint occupies.
func (a *Actor) Footprint() collision.Box {
	return collision.FootprintBox(a.X, a.Page, a.Sub)
}
