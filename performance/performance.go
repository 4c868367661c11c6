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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware"
	"github.com/wagiminator/tinyconsole/hardware/oled"
)

// Check the performance of the console using the supplied game.
//
// The console will run for the specified duration and will create a cpu
// profile, a memory profile, a trace (or a combination of those) as
// defined by the Profile argument.
func Check(output io.Writer, profile Profile, game hardware.Game, uncapped bool, duration string) error {
	con, err := hardware.NewConsole(oled.NullSink{}, oled.Origin{}, nil, nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// lift the tick rate limit if requested
	con.SetFPSCap(!uncapped)

	err = con.Plug(game)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// the number of ticks in the measurement period. every tick is one
	// composed frame, so this doubles as a frame count
	numTicks := 0

	// run for specified period of time
	runner := func() error {
		// expires once the measurement period is over. a false value
		// signals the end of the lead time and the start of measurement
		timerChan := make(chan bool)

		// force a two second leadtime to allow the tick rate to settle
		// down and then restart the timer for the specified duration
		time.AfterFunc(2*time.Second, func() {
			timerChan <- false

			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		return con.Run(func() (bool, error) {
			numTicks++

			select {
			case v := <-timerChan:
				if v {
					// measurement period has finished
					return false, nil
				}

				// leadtime has concluded. restart the count
				numTicks = 0
			default:
			}

			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// calculate performance
	fps, accuracy := CalcFPS(numTicks, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numTicks, dur.Seconds(), accuracy)))

	return nil
}
