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

package beeper

import (
	"time"

	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/gpio"
)

// PinBeeper drives a buzzer wired active low to a single pin. Beep
// generates the square wave on the caller's goroutine and returns only
// when the tone has played out.
type PinBeeper struct {
	pin gpio.Pin
}

// NewPinBeeper is the preferred method of initialisation for the
// PinBeeper type. the pin is configured for output and parked high.
func NewPinBeeper(pin gpio.Pin) (*PinBeeper, error) {
	if pin == nil {
		return nil, curated.Errorf("beeper: no pin")
	}

	if err := pin.Configure(gpio.Output); err != nil {
		return nil, curated.Errorf("beeper: %v", err)
	}
	pin.Write(gpio.High)

	return &PinBeeper{pin: pin}, nil
}

// Beep implements the Beeper interface. rests hold the pin high for the
// tone's duration.
func (b *PinBeeper) Beep(tn Tone) {
	half := time.Duration(255-int(tn.Pitch)) * time.Microsecond

	for i := 0; i < tn.Len; i++ {
		if !tn.Silent() {
			b.pin.Write(gpio.Low)
		}
		time.Sleep(half)
		b.pin.Write(gpio.High)
		time.Sleep(half)
	}
}
