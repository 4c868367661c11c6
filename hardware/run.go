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

// Run sets the console running until continueCheck returns false. The
// check runs once per tick, which at the native rate means once every
// ten milliseconds; it should be cheap but needs no further filtering.
func (con *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	for cont {
		if err := con.Step(); err != nil {
			return err
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForTickCount sets the console running for the specified number of
// ticks. Useful for FPS measurement and regression; play mode uses Run.
func (con *Console) RunForTickCount(numTicks int, continueCheck func(tick int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(tick int) (bool, error) { return true, nil }
	}

	for tick := 0; tick < numTicks; tick++ {
		if err := con.Step(); err != nil {
			return err
		}

		cont, err := continueCheck(tick)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
