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
	"github.com/wagiminator/tinyconsole/hardware/actor"
	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/hardware/collision"
	"github.com/wagiminator/tinyconsole/hardware/items"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/raster"
	"github.com/wagiminator/tinyconsole/random"
)

// session pacing. speed counts down by ten per level and doubles as
// both the vulnerability window length and the chaser rate tier.
const (
	startSpeed = 200
	speedStep  = 10
	minSpeed   = 10

	// at or below this speed the chasers step on every tick rather
	// than every other one
	fullRateSpeed = 160

	maxLives = 3
)

// the animation cycle. ticks run 0 to cycleTicks-1; the blink windows
// hide the power items and flash the vulnerable chasers.
const cycleTicks = 25

var blinkWindows = []raster.TickRange{
	{From: 6, To: 12},
	{From: 18, To: 24},
}

func blinkTick(tick int) bool {
	for _, r := range blinkWindows {
		if r.Contains(tick) {
			return true
		}
	}
	return false
}

// chaser start positions. the boxed set is where a level begins; the
// raised set is applied when a session leaves attract mode.
type position struct {
	x    int
	page int
}

var boxedStarts = [4]position{{76, 4}, {75, 5}, {77, 4}, {76, 5}}
var raisedStarts = [4]position{{76, 3}, {75, 4}, {77, 3}, {76, 4}}

// session mode. attract shows the inverted maze with roaming chasers;
// starting plays the tune on the next even tick and becomes playing.
const (
	modeAttract = iota
	modeStarting
	modePlaying
)

// Game is the dot munching port. It implements hardware.Game.
type Game struct {
	bp  beeper.Beeper
	rnd *random.Random

	engine *collision.Engine
	field  *items.Field

	muncher *actor.Actor
	chasers [4]*actor.Actor
	tagged  [4]bool

	mouth      *actor.PingPongAnim
	muncherRow int
	gait       actor.ToggleAnim
	chaserRow  [4]int

	speed      int
	lives      int
	mode       int
	vulnerable bool
	vulnTimer  int
	warnAt     int
	tick       int

	// jingles freeze the session. afterPause runs once the freeze
	// expires, carrying deferred level transitions
	pause      int
	afterPause func()

	sprites     *raster.SpriteLayer
	spriteSet   []raster.Sprite
	playfield   *raster.Compositor
	attractable *raster.Compositor
}

// NewGame is the preferred method of initialisation for the Game type.
// bp and rnd may be nil; inert substitutes are used in their place.
func NewGame(bp beeper.Beeper, rnd *random.Random) *Game {
	if bp == nil {
		bp = beeper.Null{}
	}
	if rnd == nil {
		rnd = random.NewRandom()
	}

	g := &Game{bp: bp, rnd: rnd}

	walls := buildWalls()
	g.engine = collision.NewEngine(buildMask())
	g.field = items.NewField(buildItemArt(), powerOrdinals)

	tunnel := collision.WrapRule{
		ModX:    raster.Width,
		Below:   9,
		BelowTo: -1,
		Above:   -2,
		AboveTo: 8,
	}

	g.muncher = actor.NewActor(actor.Class{
		Wrap: tunnel,
		Barrier: func(x, page, _ int, dir joypad.Direction) bool {
			return x == doorX && page == doorPage && dir == joypad.Left
		},
	}, g.engine, nil)

	for i := range g.chasers {
		g.chasers[i] = actor.NewActor(actor.Class{AI: true, Wrap: tunnel}, g.engine, rnd)
	}

	g.mouth = actor.NewPingPongAnim(3)
	g.sprites = raster.NewSpriteLayer()

	g.playfield = raster.NewCompositor()
	g.playfield.AddLayer(raster.BitmapLayer(walls))
	g.playfield.AddLayer(items.NewPowerLayer(g.field), blinkWindows...)
	g.playfield.AddLayer(items.NewLayer(g.field, g.collectAt, g.onCollect))
	g.playfield.AddLayer(g.sprites)
	g.playfield.AddLayer(raster.LayerFunc(g.livesByte))
	g.playfield.AddLayer(raster.LayerFunc(g.badgeByte))

	g.attractable = raster.NewCompositor()
	g.attractable.AddLayer(raster.BitmapLayer(walls))
	g.attractable.AddLayer(g.sprites)
	g.attractable.SetInvert(true)

	g.newSession()

	return g
}

// Reset implements the hardware.Game interface.
func (g *Game) Reset() error {
	g.pause = 0
	g.afterPause = nil
	g.newSession()
	return nil
}

// newSession returns everything to the power on state: full speed,
// full lives, a full field and the attract screen.
func (g *Game) newSession() {
	g.speed = startSpeed
	g.lives = maxLives
	g.mode = modeAttract
	g.tick = 0
	g.freshLevel()
}

// newLevel advances the difficulty. on reaching one of the bonus
// speeds a lost life is handed back, with a jingle that holds the
// session a little longer.
func (g *Game) newLevel() {
	if g.speed > minSpeed {
		g.speed -= speedStep
		if bonusSpeed(g.speed) && g.lives < maxLives {
			g.lives++
			beeper.Play(g.bp, bonusSeq)
			g.pause = seqTicks(bonusSeq)
			g.afterPause = g.freshLevel
			return
		}
	}
	g.freshLevel()
}

func bonusSpeed(speed int) bool {
	switch speed {
	case 160, 120, 80, 40, 10:
		return true
	}
	return false
}

// freshLevel restocks the field and derives the warning threshold for
// the new speed, then places the actors.
func (g *Game) freshLevel() {
	g.warnAt = g.speed / 2
	g.field.Refill()
	g.restartLevel()
}

// restartLevel places the actors at their level start positions. the
// field is left alone: a lost life does not bring the items back.
func (g *Game) restartLevel() {
	g.vulnerable = false
	g.vulnTimer = 0

	g.muncher.MoveTo(startX, startPage, restSub, joypad.None)
	g.muncherRow = rowDown
	g.mouth.Reset()

	for i, ch := range g.chasers {
		ch.MoveTo(boxedStarts[i].x, boxedStarts[i].page, restSub, joypad.Up)
		g.tagged[i] = false
		g.chaserRow[i] = chaserRowSide
	}
}

// start leaves attract mode: the chasers are lifted to their raised
// positions and the session begins on the next even tick.
func (g *Game) start() {
	if g.mode != modeAttract {
		return
	}
	for i, ch := range g.chasers {
		ch.MoveTo(raisedStarts[i].x, raisedStarts[i].page, restSub, joypad.Up)
	}
	g.mode = modeStarting
}

// Tick implements the hardware.Game interface.
func (g *Game) Tick(inp joypad.State) {
	if g.pause > 0 {
		g.pause--
		if g.pause == 0 && g.afterPause != nil {
			f := g.afterPause
			g.afterPause = nil
			f()
		}
		return
	}

	if inp.Act {
		g.start()
	}

	if g.mode != modeAttract {
		if d := inp.Direction(); d != joypad.None {
			g.muncher.SetPending(d)
		}

		if g.vulnTimer > 1 {
			g.vulnTimer--
		} else if g.vulnTimer == 1 {
			g.vulnTimer = 0
			g.vulnerable = false
		}
	}

	if g.tick < cycleTicks-1 {
		g.tick++
	} else {
		g.tick = 0
	}

	if g.mode != modeAttract && g.contact() {
		g.die()
		return
	}

	g.move()

	if g.tick%2 == 0 {
		if g.mode == modeStarting {
			beeper.Play(g.bp, startMusic)
			g.pause = seqTicks(startMusic)
			g.mode = modePlaying
		}
	} else if !g.field.AnyPresent(0, lastRequiredItem) {
		beeper.Play(g.bp, clearSeq)
		g.pause = seqTicks(clearSeq)
		g.afterPause = g.newLevel
		return
	}

	if g.vulnerable && g.tick%2 == 0 {
		g.bp.Beep(beeper.Tone{Pitch: uint8(255 - g.vulnTimer), Len: 1})
	}
}

// contact checks the muncher against every chaser before anyone moves.
// a true result is fatal; tagging is handled here as a side effect.
func (g *Game) contact() bool {
	mb := g.muncher.Footprint()
	fatal := false

	for i, ch := range g.chasers {
		c, tagged := collision.Resolve(mb.Overlaps(ch.Footprint()), g.vulnerable, g.tagged[i])
		g.tagged[i] = tagged

		switch c {
		case collision.Tagged:
			beeper.Play(g.bp, tagSeq)
			g.pause = seqTicks(tagSeq)
		case collision.Fatal:
			fatal = true
		}
	}

	return fatal
}

// die plays the death jingle and, once it has run, either restarts the
// level or gives up the session.
func (g *Game) die() {
	beeper.Play(g.bp, deathSeq)
	g.pause = seqTicks(deathSeq)

	if g.lives > 0 {
		g.lives--
		g.afterPause = g.restartLevel
		return
	}
	g.afterPause = g.newSession
}

// move steps every actor and keeps the animation state in step.
func (g *Game) move() {
	fullRate := g.tick%2 == 0 || g.speed <= fullRateSpeed

	g.muncher.Update(g.mode != modeAttract)
	for _, ch := range g.chasers {
		ch.Update(fullRate)
	}

	for i, ch := range g.chasers {
		if g.tagged[i] && homeBox(ch.X, ch.Page) {
			g.tagged[i] = false
		}
	}

	if g.tick%2 == 0 {
		if d := g.muncher.Direction(); d != joypad.None {
			g.muncherRow = muncherRowFor(d)
		}
		g.mouth.Advance()
		g.gait.Advance()
	}

	// the chasers change facing art only twice per cycle
	if g.tick == 0 || g.tick == cycleTicks/2 {
		for i, ch := range g.chasers {
			g.chaserRow[i] = chaserRowFor(ch.Direction())
		}
	}
}

// collectAt feeds the item layer the muncher's position at compose
// time.
func (g *Game) collectAt() (int, int, int, bool) {
	return g.muncher.X, g.muncher.Page, g.muncher.Sub, true
}

// onCollect reacts to an item leaving the field. power items arm the
// vulnerability window for the level's full speed count.
func (g *Game) onCollect(_ int, power bool) {
	if power {
		g.vulnTimer = g.speed
		g.vulnerable = true
		return
	}
	beeper.Play(g.bp, munchSeq)
}

// chaserGlyphFor selects a chaser's art for this frame. a tagged chaser
// is bare eyes; a vulnerable one shows the hollow look constantly while
// the timer is high and only inside the blink windows once it drops.
func (g *Game) chaserGlyphFor(i int) []byte {
	idx := g.chaserRow[i] + g.gait.Frame()

	if g.tagged[i] {
		idx += eyesOffset
	} else if g.vulnerable && (blinkTick(g.tick) || g.vulnTimer > g.warnAt) {
		idx += vulnerableOffset
	}

	return chaserGlyph(idx)
}

// Compose implements the hardware.Game interface.
func (g *Game) Compose(fb *raster.FrameBuffer) {
	g.spriteSet = g.spriteSet[:0]

	if g.mode != modeAttract {
		g.spriteSet = append(g.spriteSet, raster.Sprite{
			X:     g.muncher.X,
			Page:  g.muncher.Page,
			Sub:   g.muncher.Sub,
			Glyph: muncherGlyph(g.muncherRow + g.mouth.Frame()),
		})
	}

	for i, ch := range g.chasers {
		g.spriteSet = append(g.spriteSet, raster.Sprite{
			X:     ch.X,
			Page:  ch.Page,
			Sub:   ch.Sub,
			Glyph: g.chaserGlyphFor(i),
		})
	}

	g.sprites.Set(g.spriteSet)

	if g.mode == modeAttract {
		g.attractable.Compose(fb, g.tick)
		return
	}
	g.playfield.Compose(fb, g.tick)
}

// Lives returns the number of lives in hand.
func (g *Game) Lives() int {
	return g.lives
}

// Level returns the one-based level number.
func (g *Game) Level() int {
	return (startSpeed-g.speed)/speedStep + 1
}

// livesByte draws one icon per remaining life down the left margin.
func (g *Game) livesByte(x, page int, _ int) byte {
	if page < g.lives && x < raster.GlyphWidth {
		return livesGlyph()[x]
	}
	return 0
}

// badgeByte draws the level badges up the left margin as the speed
// passes each tier.
func (g *Game) badgeByte(x, page int, _ int) byte {
	if x >= raster.GlyphWidth {
		return 0
	}

	switch page {
	case 7:
		return badgeGlyph(0)[x]
	case 6:
		if g.speed <= 190 {
			return badgeGlyph(1)[x]
		}
	case 5:
		if g.speed <= 180 {
			return badgeGlyph(2)[x]
		}
	case 4:
		if g.speed <= 170 {
			return badgeGlyph(3)[x]
		}
	}
	return 0
}
