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

package gpio_test

import (
	"testing"

	"github.com/wagiminator/tinyconsole/hardware/gpio"
	"github.com/wagiminator/tinyconsole/test"
)

func TestMemoryPin(t *testing.T) {
	p := gpio.NewMemoryPin()

	test.Equate(t, p.Read() == gpio.Low, true)
	test.Equate(t, p.Mode() == gpio.Input, true)

	test.ExpectedSuccess(t, p.Configure(gpio.Output))
	test.Equate(t, p.Mode() == gpio.Output, true)

	p.Write(gpio.High)
	p.Write(gpio.High)
	p.Write(gpio.Low)

	test.Equate(t, p.Read() == gpio.Low, true)
	test.Equate(t, p.Writes(), 3)
	test.Equate(t, p.Edges(), 2)
}

func TestMemoryPinPullup(t *testing.T) {
	p := gpio.NewMemoryPin()
	test.ExpectedSuccess(t, p.Configure(gpio.InputPullup))

	// the pullup holds the line high until something drives it
	test.Equate(t, p.Read() == gpio.High, true)
}
