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

package collision

import "github.com/wagiminator/tinyconsole/hardware/raster"

// Box is a pixel aligned rectangle. bounds are inclusive.
type Box struct {
	MinX, MinY int
	MaxX, MaxY int
}

// FootprintBox returns the box occupied by an entity footprint anchored
// at (x, page, sub).
func FootprintBox(x, page, sub int) Box {
	y := page*raster.PageDepth + sub
	return Box{
		MinX: x, MinY: y,
		MaxX: x + Footprint - 1, MaxY: y + Footprint - 1,
	}
}

// Overlaps reports whether the two boxes share at least one pixel.
// touching edges count as sharing.
func (b Box) Overlaps(o Box) bool {
	return !(b.MaxX < o.MinX || b.MinX > o.MaxX || b.MaxY < o.MinY || b.MinY > o.MaxY)
}

// Contact is the outcome of an encounter between the primary entity and
// a secondary.
type Contact int

// Valid Contact values.
const (
	NoContact Contact = iota

	// the secondary was newly tagged. harmless, but worth a jingle
	Tagged

	// already tagged, or tagged entities passing through. nothing to do
	Harmless

	// the primary loses a life
	Fatal
)

func (c Contact) String() string {
	switch c {
	case NoContact:
		return "no contact"
	case Tagged:
		return "tagged"
	case Harmless:
		return "harmless"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// Resolve decides what an overlap between the primary and a secondary
// means. vulnerable is the shared flag raised while a power item's timer
// runs; tagged is the secondary's own flag. the returned flag is the
// secondary's new tagged state.
//
// a newly tagged secondary reports Tagged exactly once. repeat overlaps
// are Harmless until the tag clears.
func Resolve(overlap bool, vulnerable bool, tagged bool) (Contact, bool) {
	if !overlap {
		return NoContact, tagged
	}

	if vulnerable {
		if !tagged {
			return Tagged, true
		}
		return Harmless, true
	}

	if tagged {
		return Harmless, true
	}

	return Fatal, false
}
