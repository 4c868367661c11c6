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

package hardware_test

import (
	"testing"

	"github.com/wagiminator/tinyconsole/hardware"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/oled"
	"github.com/wagiminator/tinyconsole/hardware/raster"
	"github.com/wagiminator/tinyconsole/test"
)

type stubGame struct {
	resets   int
	ticks    int
	composes int
	last     joypad.State
}

func (g *stubGame) Reset() error {
	g.resets++
	return nil
}

func (g *stubGame) Tick(inp joypad.State) {
	g.ticks++
	g.last = inp
}

func (g *stubGame) Compose(fb *raster.FrameBuffer) {
	g.composes++
	fb.Pixels()[0] = byte(g.ticks)
}

func TestConsoleStep(t *testing.T) {
	con, err := hardware.NewConsole(oled.NullSink{}, oled.Origin{}, nil, nil)
	test.ExpectedSuccess(t, err)
	con.SetFPSCap(false)

	// stepping with nothing plugged in is an error
	test.ExpectedFailure(t, con.Step())

	g := &stubGame{}
	test.ExpectedSuccess(t, con.Plug(g))
	test.Equate(t, g.resets, 1)

	for i := 0; i < 5; i++ {
		test.ExpectedSuccess(t, con.Step())
	}
	test.Equate(t, g.ticks, 5)
	test.Equate(t, g.composes, 5)
	test.Equate(t, con.Pipeline.Submitted(), int64(5))

	test.ExpectedSuccess(t, con.Reset())
	test.Equate(t, g.resets, 2)
}

func TestConsoleInput(t *testing.T) {
	inp := joypad.InputFunc(func() joypad.State {
		return joypad.State{Right: true, Act: true}
	})

	con, err := hardware.NewConsole(oled.NullSink{}, oled.Origin{}, inp, nil)
	test.ExpectedSuccess(t, err)
	con.SetFPSCap(false)

	g := &stubGame{}
	test.ExpectedSuccess(t, con.Plug(g))
	test.ExpectedSuccess(t, con.Step())

	test.Equate(t, g.last.Right, true)
	test.Equate(t, g.last.Act, true)
	test.Equate(t, g.last.Left, false)
}

func TestRun(t *testing.T) {
	con, err := hardware.NewConsole(oled.NullSink{}, oled.Origin{}, nil, nil)
	test.ExpectedSuccess(t, err)
	con.SetFPSCap(false)

	g := &stubGame{}
	test.ExpectedSuccess(t, con.Plug(g))

	ct := 0
	err = con.Run(func() (bool, error) {
		ct++
		return ct < 3, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, g.ticks, 3)
}

func TestRunForTickCount(t *testing.T) {
	con, err := hardware.NewConsole(oled.NullSink{}, oled.Origin{}, nil, nil)
	test.ExpectedSuccess(t, err)
	con.SetFPSCap(false)

	g := &stubGame{}
	test.ExpectedSuccess(t, con.Plug(g))

	test.ExpectedSuccess(t, con.RunForTickCount(25, nil))
	test.Equate(t, g.ticks, 25)
	test.Equate(t, con.Pipeline.Submitted(), int64(25))

	// an early stop from the check function is not an error
	test.ExpectedSuccess(t, con.RunForTickCount(25, func(tick int) (bool, error) {
		return tick < 9, nil
	}))
	test.Equate(t, g.ticks, 35)
}
