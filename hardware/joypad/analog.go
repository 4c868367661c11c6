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

import (
	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/gpio"
)

// readings at or below this value mean the stick is at rest
const pressedFloor = 10

// Calibration holds the ladder midpoint for each of the eight stick
// positions. a reading within Deviation of a midpoint (exclusive both
// sides) is in that position's band.
type Calibration struct {
	N, NE, E, SE uint16
	S, SW, W, NW uint16
	Deviation    uint16
}

// DefaultCalibration matches the resistor ladder on the handheld.
var DefaultCalibration = Calibration{
	N: 197, NE: 259, E: 90, SE: 388,
	S: 346, SW: 616, W: 511, NW: 567,
	Deviation: 20,
}

func (c Calibration) near(val uint16, zone uint16) bool {
	return val > zone-c.Deviation && val < zone+c.Deviation
}

// Decode converts one sampled reading into a State. the Act field is
// never set, the action button being a separate line.
func (c Calibration) Decode(val uint16) State {
	return State{
		Up:    c.near(val, c.N) || c.near(val, c.NE) || c.near(val, c.NW),
		Down:  c.near(val, c.S) || c.near(val, c.SE) || c.near(val, c.SW),
		Left:  c.near(val, c.W) || c.near(val, c.NW) || c.near(val, c.SW),
		Right: c.near(val, c.E) || c.near(val, c.NE) || c.near(val, c.SE),
	}
}

// Pressed reports whether the reading shows the stick deflected at all,
// whether or not it is inside a calibrated band.
func (c Calibration) Pressed(val uint16) bool {
	return val > pressedFloor
}

// Sampler provides raw readings from the direction ladder.
type Sampler interface {
	Sample() uint16
}

// SamplerFunc is an adapter allowing a plain function to be used as a
// Sampler.
type SamplerFunc func() uint16

// Sample implements the Sampler interface.
func (f SamplerFunc) Sample() uint16 {
	return f()
}

// AnalogStick is an Input built from a ladder Sampler and the action
// button's pin.
type AnalogStick struct {
	cal Calibration
	src Sampler
	act gpio.Pin
}

// NewAnalogStick is the preferred method of initialisation for the
// AnalogStick type. the act pin may be nil for sticks without an action
// button.
func NewAnalogStick(src Sampler, act gpio.Pin, cal Calibration) (*AnalogStick, error) {
	if src == nil {
		return nil, curated.Errorf("joypad: no sampler")
	}

	if act != nil {
		if err := act.Configure(gpio.InputPullup); err != nil {
			return nil, curated.Errorf("joypad: %v", err)
		}
	}

	return &AnalogStick{cal: cal, src: src, act: act}, nil
}

// State implements the Input interface.
func (st *AnalogStick) State() State {
	s := st.cal.Decode(st.src.Sample())
	if st.act != nil {
		s.Act = st.act.Read() == gpio.Low
	}
	return s
}
