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

package gpio

// Level is the digital state of a pin.
type Level bool

// Valid Level values. The buzzer and the action button are both active
// low so Low is the interesting level more often than not.
const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Mode describes how a pin is wired up.
type Mode int

// Valid Mode values.
const (
	Input Mode = iota
	InputPullup
	InputAnalog
	Output
)

func (m Mode) String() string {
	switch m {
	case Input:
		return "input"
	case InputPullup:
		return "input (pullup)"
	case InputAnalog:
		return "input (analog)"
	case Output:
		return "output"
	}
	return "unknown"
}

// Pin is a single line between a driver and the outside world. drivers
// receive the Pin they operate at construction time.
//
// Write and Read never fail. Configure can, for pins that do not support
// the requested mode.
type Pin interface {
	Configure(mode Mode) error
	Write(lvl Level)
	Read() Level
}
