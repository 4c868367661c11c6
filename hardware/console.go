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
	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/oled"
	"github.com/wagiminator/tinyconsole/hardware/raster"
	"github.com/wagiminator/tinyconsole/random"
)

// Game is the interface between the console and the software it runs.
// All three functions are called from the console's run loop, one Tick
// and one Compose per tick, so a game never needs its own locking.
type Game interface {
	// Reset returns the game to its power-on state.
	Reset() error

	// Tick advances the game by one input poll period.
	Tick(inp joypad.State)

	// Compose draws the game's current state into the frame buffer. The
	// buffer is whichever of the pipeline's two the compositor may write
	// this tick.
	Compose(fb *raster.FrameBuffer)
}

// Console is the main container for the facilities of the handheld: the
// display pipeline, the joypad, the beeper and the random source. It is
// used for all aspects of running a game: regular play, performance
// measurement and regression.
type Console struct {
	Pipeline *oled.Pipeline
	Input    joypad.Input
	Beeper   beeper.Beeper
	Random   *random.Random

	game Game
	lmtr limiter
}

// NewConsole is the preferred method of initialisation for the Console
// type. A nil input or beeper is replaced with an inert implementation
// so a headless console works without further wiring.
func NewConsole(sink oled.PixelSink, origin oled.Origin, inp joypad.Input, bp beeper.Beeper) (*Console, error) {
	var err error

	con := &Console{
		Input:  inp,
		Beeper: bp,
	}

	con.Pipeline, err = oled.NewPipeline(sink, origin)
	if err != nil {
		return nil, err
	}

	if con.Input == nil {
		con.Input = joypad.InputFunc(func() joypad.State {
			return joypad.State{}
		})
	}
	if con.Beeper == nil {
		con.Beeper = beeper.Null{}
	}

	con.Random = random.NewRandom()
	con.lmtr.init()

	return con, nil
}

// Plug inserts a game into the console and resets it to its power-on
// state. A nil game ejects whatever is currently plugged in.
func (con *Console) Plug(game Game) error {
	con.game = game
	if con.game == nil {
		return nil
	}
	return con.game.Reset()
}

// Reset emulates the reset on the handheld: the game returns to its
// power-on state. Hardware facilities are untouched.
func (con *Console) Reset() error {
	if con.game == nil {
		return nil
	}
	return con.game.Reset()
}

// Step runs the console for one tick: poll input, advance the game,
// compose into the free buffer and submit it to the sink. The call
// paces itself to the tick rate unless the cap has been lifted.
func (con *Console) Step() error {
	if con.game == nil {
		return curated.Errorf("console: nothing plugged in")
	}

	con.game.Tick(con.Input.State())

	fb, err := con.Pipeline.Frame()
	if err != nil {
		return err
	}
	con.game.Compose(fb)

	if err := con.Pipeline.Submit(); err != nil {
		return err
	}

	con.lmtr.checkTick()
	con.lmtr.measureActual()

	return nil
}

// SetFPSCap turns the tick rate limiter on or off. Running uncapped is
// only useful for performance measurement.
func (con *Console) SetFPSCap(limit bool) {
	con.lmtr.active = limit
}

// SetFPS sets the frame rate, and with it the tick rate, of the run
// loop. A value of zero or less selects the native rate.
func (con *Console) SetFPS(fps float32) {
	con.lmtr.setRate(fps)
}

// GetReqFPS returns the frame rate the limiter is aiming for.
func (con *Console) GetReqFPS() float32 {
	return con.lmtr.requested.Load().(float32)
}

// GetActualFPS returns the measured frame rate. The measurement is
// updated about once a second while the console is stepping.
func (con *Console) GetActualFPS() float32 {
	return con.lmtr.actual.Load().(float32)
}
