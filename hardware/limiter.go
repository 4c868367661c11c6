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

package hardware

import (
	"sync/atomic"
	"time"
)

// TickHz is the native tick rate of the console: one input poll, one
// game update and one composed frame every ten milliseconds.
const TickHz = 100

type limiter struct {
	// whether to wait on the pulse at the end of every tick
	active bool

	// requested and measured tick rates. atomic because the GUI thread
	// reads them while the console goroutine is stepping
	requested atomic.Value // float32
	actual    atomic.Value // float32

	// pulse that performs the limiting. reset whenever the rate changes
	pulse *time.Ticker

	// measurement
	measureCt      int
	measureTime    time.Time
	measuringPulse *time.Ticker
}

func (lmtr *limiter) init() {
	lmtr.active = true
	lmtr.requested.Store(float32(0))
	lmtr.actual.Store(float32(0))
	lmtr.measureTime = time.Now()
	lmtr.pulse = time.NewTicker(time.Millisecond * 10)
	lmtr.measuringPulse = time.NewTicker(time.Second)
	lmtr.setRate(TickHz)
}

// setRate sets the pace of the limiting pulse. a rate of zero or less
// selects the native tick rate.
func (lmtr *limiter) setRate(hz float32) {
	if hz <= 0.0 {
		hz = TickHz
	}

	lmtr.requested.Store(hz)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / hz))

	// restart measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// checkTick should be called every tick. it blocks until the pulse says
// the next tick is due.
func (lmtr *limiter) checkTick() {
	lmtr.measureCt++
	if lmtr.active {
		<-lmtr.pulse.C
	}
}

// measureActual updates the measured tick rate on every tick of the
// measuring pulse. checking the pulse channel is itself not free, so
// callers should be mindful of how often the function is called.
func (lmtr *limiter) measureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.actual.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))

		// reset time and count ready for the next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}
