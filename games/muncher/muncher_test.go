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

package muncher

import (
	"testing"

	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/raster"
	"github.com/wagiminator/tinyconsole/test"
)

// a game wired to a recording beeper.
func testGame() (*Game, *[]beeper.Tone) {
	tones := make([]beeper.Tone, 0, 256)
	g := NewGame(beeper.Func(func(tn beeper.Tone) {
		tones = append(tones, tn)
	}), nil)
	return g, &tones
}

func drainPause(g *Game) {
	for g.pause > 0 {
		g.Tick(joypad.State{})
	}
}

func TestAttractScreen(t *testing.T) {
	g, _ := testGame()
	fb := &raster.FrameBuffer{}

	// the attract screen is inverted, so the empty margin corner is lit
	g.Compose(fb)
	test.Equate(t, fb.Byte(0, 0), uint8(0xff))

	// directions do nothing before the session starts
	g.Tick(joypad.State{Left: true})
	test.Equate(t, g.mode, modeAttract)
	test.Equate(t, g.muncher.Direction() == joypad.None, true)

	g.Tick(joypad.State{Act: true})
	test.Equate(t, g.mode, modeStarting)

	// chasers lifted to their raised positions
	test.Equate(t, g.chasers[0].X, 76)
	test.Equate(t, g.chasers[0].Page, 3)

	// the play screen is composed normally: the corner shows a life icon
	g.Compose(fb)
	test.Equate(t, fb.Byte(0, 0), livesGlyph()[0])
}

func TestStartTuneHoldsSession(t *testing.T) {
	g, tones := testGame()

	g.Tick(joypad.State{Act: true})
	test.Equate(t, len(*tones), 0)

	// the tune starts on the next even tick and freezes the session
	g.Tick(joypad.State{})
	test.Equate(t, g.mode, modePlaying)
	test.Equate(t, len(*tones), len(startMusic))
	test.Equate(t, g.pause > 0, true)

	held := g.tick
	g.Tick(joypad.State{})
	g.Tick(joypad.State{})
	test.Equate(t, g.tick, held)

	drainPause(g)
	g.Tick(joypad.State{})
	test.Equate(t, g.tick, held+1)
}

func TestItemCollection(t *testing.T) {
	g, tones := testGame()
	g.mode = modePlaying
	fb := &raster.FrameBuffer{}

	// the plain item at column 18 of the top corridor is ordinal 2
	test.Equate(t, g.field.Present(2), true)

	g.muncher.MoveTo(14, 0, restSub, joypad.Right)
	g.Compose(fb)

	test.Equate(t, g.field.Present(2), false)
	test.Equate(t, len(*tones), len(munchSeq))
	test.Equate(t, g.vulnerable, false)

	// collecting is not repeated for an absent item
	g.Compose(fb)
	test.Equate(t, len(*tones), len(munchSeq))
}

func TestItemWindowIsOpenInterval(t *testing.T) {
	g, _ := testGame()
	g.mode = modePlaying
	fb := &raster.FrameBuffer{}

	// the item at column 26 sits exactly on the window's far edge
	g.muncher.MoveTo(20, 0, restSub, joypad.Right)
	g.Compose(fb)
	test.Equate(t, g.field.Present(3), true)

	// one step closer and it is taken
	g.muncher.MoveTo(21, 0, restSub, joypad.Right)
	g.Compose(fb)
	test.Equate(t, g.field.Present(3), false)
}

func TestPowerItem(t *testing.T) {
	g, tones := testGame()
	g.mode = modePlaying
	fb := &raster.FrameBuffer{}

	// both columns of the first power pair fall inside the window
	g.muncher.MoveTo(9, 0, restSub, joypad.Left)
	g.Compose(fb)

	test.Equate(t, g.field.Present(0), false)
	test.Equate(t, g.field.Present(1), false)
	test.Equate(t, g.vulnerable, true)
	test.Equate(t, g.vulnTimer, startSpeed)

	// power items are silent
	test.Equate(t, len(*tones), 0)
}

func TestPowerItemBlinksButCollects(t *testing.T) {
	g, _ := testGame()
	g.mode = modePlaying
	fb := &raster.FrameBuffer{}

	// visible outside the blink window: wall line plus art
	g.Compose(fb)
	test.Equate(t, fb.Byte(10, 0), uint8(0x10|powerItemArt))

	// hidden inside it
	g.tick = 7
	g.Compose(fb)
	test.Equate(t, fb.Byte(10, 0), uint8(0x10))

	// but still collectable
	g.muncher.MoveTo(9, 0, restSub, joypad.Left)
	g.Compose(fb)
	test.Equate(t, g.vulnerable, true)
}

func TestTagAndUntag(t *testing.T) {
	g, tones := testGame()
	g.mode = modePlaying
	g.vulnerable = true
	g.vulnTimer = 100

	g.chasers[0].MoveTo(startX, startPage, restSub, joypad.None)
	g.Tick(joypad.State{})

	test.Equate(t, g.tagged[0], true)
	test.Equate(t, len(*tones), len(tagSeq))
	test.Equate(t, g.Lives(), maxLives)

	// a repeat overlap is harmless: no fatality and no second chime.
	// the siren still sounds on the even tick
	g.pause = 0
	g.Tick(joypad.State{})
	test.Equate(t, g.tagged[0], true)
	test.Equate(t, g.Lives(), maxLives)
	test.Equate(t, len(*tones), len(tagSeq)+1)

	// the tag clears inside the home box
	g.chasers[0].MoveTo(75, 3, restSub, joypad.None)
	g.Tick(joypad.State{})
	test.Equate(t, g.tagged[0], false)
}

func TestFatalContact(t *testing.T) {
	g, tones := testGame()
	g.mode = modePlaying

	g.field.Collect(2)
	g.chasers[0].MoveTo(startX, startPage, restSub, joypad.None)
	g.Tick(joypad.State{})

	test.Equate(t, g.Lives(), maxLives-1)
	test.Equate(t, len(*tones), len(deathSeq))
	test.Equate(t, g.pause > 0, true)

	// the restart is deferred until the jingle has played out
	test.Equate(t, g.chasers[0].X, startX)
	held := g.tick
	drainPause(g)
	test.Equate(t, g.tick, held)
	test.Equate(t, g.chasers[0].X, boxedStarts[0].x)
	test.Equate(t, g.chasers[0].Page, boxedStarts[0].page)
	test.Equate(t, g.muncher.X, startX)

	// collected items stay collected across the restart
	test.Equate(t, g.field.Present(2), false)
}

func TestSessionGivenUp(t *testing.T) {
	g, _ := testGame()
	g.mode = modePlaying
	g.lives = 0

	g.field.Collect(2)
	g.chasers[0].MoveTo(startX, startPage, restSub, joypad.None)
	g.Tick(joypad.State{})

	drainPause(g)
	test.Equate(t, g.mode, modeAttract)
	test.Equate(t, g.Lives(), maxLives)
	test.Equate(t, g.speed, startSpeed)

	// a fresh session refills the field
	test.Equate(t, g.field.Present(2), true)
}

func TestLevelClear(t *testing.T) {
	g, tones := testGame()
	g.mode = modePlaying

	// the final item of the last power pair does not gate the level
	for ord := 0; ord <= lastRequiredItem; ord++ {
		g.field.Collect(ord)
	}
	test.Equate(t, g.field.Present(63), true)

	// the check runs on odd ticks
	g.Tick(joypad.State{})
	test.Equate(t, len(*tones), len(clearSeq))
	test.Equate(t, g.pause > 0, true)
	test.Equate(t, g.speed, startSpeed)

	drainPause(g)
	test.Equate(t, g.speed, startSpeed-speedStep)
	test.Equate(t, g.Level(), 2)
	test.Equate(t, g.field.Present(0), true)
	test.Equate(t, g.muncher.X, startX)
}

func TestBonusLife(t *testing.T) {
	g, tones := testGame()
	g.mode = modePlaying
	g.speed = 170
	g.lives = 1

	g.newLevel()
	test.Equate(t, g.speed, 160)
	test.Equate(t, g.Lives(), 2)
	test.Equate(t, len(*tones), len(bonusSeq))
	test.Equate(t, g.pause > 0, true)

	drainPause(g)
	test.Equate(t, g.warnAt, 80)

	// no bonus with a full complement
	g.speed = 130
	g.lives = maxLives
	g.newLevel()
	test.Equate(t, g.Lives(), maxLives)
	test.Equate(t, g.pause, 0)
}

func TestChaserRate(t *testing.T) {
	g, _ := testGame()
	g.mode = modePlaying

	ch := g.chasers[0]
	ch.MoveTo(50, 1, restSub, joypad.Right)

	// at full speed the chasers step on even ticks only
	g.Tick(joypad.State{})
	test.Equate(t, ch.X, 50)
	g.Tick(joypad.State{})
	test.Equate(t, ch.X, 51)
	g.Tick(joypad.State{})
	test.Equate(t, ch.X, 51)
	g.Tick(joypad.State{})
	test.Equate(t, ch.X, 52)

	// at the full rate tier they step on every tick
	g.speed = fullRateSpeed
	g.Tick(joypad.State{})
	test.Equate(t, ch.X, 53)
	g.Tick(joypad.State{})
	test.Equate(t, ch.X, 54)
}

func TestVerticalWrap(t *testing.T) {
	g, _ := testGame()

	// dropping through the bottom shaft at column 28 crosses both
	// transit pages and re-enters through the matching top shaft
	a := g.muncher
	a.MoveTo(28, 6, restSub, joypad.Down)

	for i := 0; i < 3; i++ {
		a.Update(true)
	}
	test.Equate(t, a.Page, 7)
	test.Equate(t, a.Sub, 0)

	for i := 0; i < 16; i++ {
		a.Update(true)
	}
	test.Equate(t, a.Page, -1)
	test.Equate(t, a.Sub, 0)

	for i := 0; i < 13; i++ {
		a.Update(true)
	}
	test.Equate(t, a.X, 28)
	test.Equate(t, a.Page, 0)
	test.Equate(t, a.Sub, restSub)

	// and parks against the floor of the top corridor
	a.Update(true)
	test.Equate(t, a.Direction() == joypad.None, true)
	test.Equate(t, a.Sub, restSub)
}

func TestHorizontalTunnel(t *testing.T) {
	g, _ := testGame()

	a := g.muncher
	a.MoveTo(9, tunnelCorridor, restSub, joypad.Left)

	for i := 0; i < 10; i++ {
		a.Update(true)
	}
	test.Equate(t, a.X, 127)

	// and all the way around to the right border
	for i := 0; i < 7; i++ {
		a.Update(true)
	}
	test.Equate(t, a.X, 120)
}

func TestDoorBarrier(t *testing.T) {
	g, _ := testGame()

	a := g.muncher
	a.MoveTo(90, doorPage, restSub, joypad.Left)

	for i := 0; i < 4; i++ {
		a.Update(true)
	}
	test.Equate(t, a.X, doorX)

	// held at the door, heading intact
	a.Update(true)
	a.Update(true)
	test.Equate(t, a.X, doorX)
	test.Equate(t, a.Direction() == joypad.Left, true)
}

func TestBadgesFollowSpeed(t *testing.T) {
	g, _ := testGame()
	g.mode = modePlaying
	fb := &raster.FrameBuffer{}

	g.Compose(fb)
	test.Equate(t, fb.Byte(0, 7), badgeBank[0])
	test.Equate(t, fb.Byte(0, 6), uint8(0))

	g.speed = 190
	g.Compose(fb)
	test.Equate(t, fb.Byte(0, 6), badgeGlyph(1)[0])
}

func TestSirenPitch(t *testing.T) {
	g, tones := testGame()
	g.mode = modePlaying
	g.vulnerable = true
	g.vulnTimer = 100

	// no siren on the odd tick
	g.Tick(joypad.State{})
	test.Equate(t, len(*tones), 0)

	// the pitch tracks the decremented timer on the even tick
	g.Tick(joypad.State{})
	test.Equate(t, len(*tones), 1)
	test.Equate(t, (*tones)[0].Pitch, uint8(255-98))
	test.Equate(t, (*tones)[0].Len, 1)
}

func TestVulnerabilityExpires(t *testing.T) {
	g, _ := testGame()
	g.mode = modePlaying
	g.vulnerable = true
	g.vulnTimer = 3

	g.Tick(joypad.State{})
	test.Equate(t, g.vulnTimer, 2)
	g.Tick(joypad.State{})
	test.Equate(t, g.vulnTimer, 1)
	g.Tick(joypad.State{})
	test.Equate(t, g.vulnTimer, 0)
	test.Equate(t, g.vulnerable, false)
}

func TestItemCountMatchesLayout(t *testing.T) {
	g, _ := testGame()
	test.Equate(t, g.field.Count(), 64)

	for _, ord := range powerOrdinals {
		test.Equate(t, g.field.Power(ord), true)
	}
	test.Equate(t, g.field.Power(2), false)
}
