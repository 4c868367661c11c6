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

import "github.com/wagiminator/tinyconsole/hardware"

// CalcFPS takes the number of ticks and duration (in seconds) and returns
// the ticks-per-second and the accuracy of that value as a percentage of
// the console's native rate.
func CalcFPS(numTicks int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numTicks) / duration
	accuracy = 100 * float64(numTicks) / (duration * float64(hardware.TickHz))
	return fps, accuracy
}
