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

package termplay

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/oled"
	"github.com/wagiminator/tinyconsole/hardware/raster"
)

// how long one key press counts as held. terminals report presses but
// never releases so each press is latched for a short while instead
const keyLatch = 200 * time.Millisecond

// pace of the service loop when the event queue is empty
const servicePeriod = time.Millisecond

// each terminal cell is one column of two pixel rows, so a page of
// eight rows is four cell rows
const cellsPerPage = 4

// TermPlay is the terminal front end. Pixels are drawn two to a cell
// with the unicode half blocks, putting the whole 128x64 panel in a
// 128x32 character area.
type TermPlay struct {
	screen tcell.Screen
	style  tcell.Style

	// filled by the polling goroutine, drained by Service()
	events chan tcell.Event

	crit termPlayCrit

	// latch expiry for each control, in unix nanoseconds. written by the
	// main thread, read by the emulation goroutine through State()
	upUntil    atomic.Int64
	downUntil  atomic.Int64
	leftUntil  atomic.Int64
	rightUntil atomic.Int64
	actUntil   atomic.Int64

	quit atomic.Bool
}

// for clarity, variables accessed in the critical section are
// encapsulated in their own subtype.
type termPlayCrit struct {
	// critical sectioning
	section sync.Mutex

	// packed page-major copy of the most recently pushed frame
	frame []byte

	// whether frame has changed since the last render
	newFrame bool
}

// NewTermPlay is the preferred method of initialisation for the
// TermPlay type.
func NewTermPlay() (*TermPlay, error) {
	scr := &TermPlay{
		events: make(chan tcell.Event, 64),
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	scr.crit.frame = make([]byte, raster.NumBytes)

	var err error

	scr.screen, err = tcell.NewScreen()
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	err = scr.screen.Init()
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	scr.screen.HideCursor()
	scr.screen.Clear()

	// tcell can only be polled, not serviced. the polling goroutine
	// feeds the events channel until the screen is finalised, at which
	// point PollEvent returns nil
	go func() {
		for {
			ev := scr.screen.PollEvent()
			if ev == nil {
				return
			}
			scr.events <- ev
		}
	}()

	return scr, nil
}

// BeginFrame implements the oled.PixelSink interface.
func (scr *TermPlay) BeginFrame(width int, height int, _ oled.Origin) error {
	if width != raster.Width || height != raster.Height {
		return curated.Errorf("termplay: unsupported frame geometry (%dx%d)", width, height)
	}
	return nil
}

// PushBytes implements the oled.PixelSink interface. The frame is
// copied aside for the main thread to render and completed is called
// before returning.
func (scr *TermPlay) PushBytes(data []byte, completed func()) error {
	if len(data) < raster.NumBytes {
		completed()
		return curated.Errorf("termplay: frame data is short")
	}

	scr.crit.section.Lock()
	copy(scr.crit.frame, data)
	scr.crit.newFrame = true
	scr.crit.section.Unlock()

	completed()
	return nil
}

// EndFrame implements the oled.PixelSink interface.
func (scr *TermPlay) EndFrame() error {
	return nil
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *TermPlay) Service() {
	drained := false
	for !drained {
		select {
		case ev := <-scr.events:
			scr.serviceEvent(ev)
		default:
			drained = true
		}
	}

	scr.render()

	time.Sleep(servicePeriod)
}

func (scr *TermPlay) serviceEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			// the terminal is in raw mode so ctrl-c arrives here rather
			// than as an interrupt signal
			scr.quit.Store(true)
		case tcell.KeyUp:
			scr.press(&scr.upUntil)
		case tcell.KeyDown:
			scr.press(&scr.downUntil)
		case tcell.KeyLeft:
			scr.press(&scr.leftUntil)
		case tcell.KeyRight:
			scr.press(&scr.rightUntil)
		case tcell.KeyEnter:
			scr.press(&scr.actUntil)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'W':
				scr.press(&scr.upUntil)
			case 's', 'S':
				scr.press(&scr.downUntil)
			case 'a', 'A':
				scr.press(&scr.leftUntil)
			case 'd', 'D':
				scr.press(&scr.rightUntil)
			case ' ':
				scr.press(&scr.actUntil)
			case 'q', 'Q':
				scr.quit.Store(true)
			}
		}

	case *tcell.EventResize:
		scr.screen.Sync()

		// everything needs drawing again
		scr.crit.section.Lock()
		scr.crit.newFrame = true
		scr.crit.section.Unlock()
	}
}

func (scr *TermPlay) press(until *atomic.Int64) {
	until.Store(time.Now().Add(keyLatch).UnixNano())
}

// State implements the joypad.Input interface. Called from the
// emulation goroutine.
func (scr *TermPlay) State() joypad.State {
	now := time.Now().UnixNano()
	return joypad.State{
		Up:    now < scr.upUntil.Load(),
		Down:  now < scr.downUntil.Load(),
		Left:  now < scr.leftUntil.Load(),
		Right: now < scr.rightUntil.Load(),
		Act:   now < scr.actUntil.Load(),
	}
}

// render draws the most recent frame with half block characters. does
// nothing if no new frame has arrived since the last call.
func (scr *TermPlay) render() {
	scr.crit.section.Lock()

	if !scr.crit.newFrame {
		scr.crit.section.Unlock()
		return
	}
	scr.crit.newFrame = false

	// tcell clips content outside the terminal for us so an undersized
	// terminal simply shows the top left of the playfield
	for page := 0; page < raster.NumPages; page++ {
		for x := 0; x < raster.Width; x++ {
			b := scr.crit.frame[page*raster.Width+x]
			for cell := 0; cell < cellsPerPage; cell++ {
				top := b&(1<<(cell*2)) != 0
				bot := b&(1<<(cell*2+1)) != 0

				var r rune
				switch {
				case top && bot:
					r = '█'
				case top:
					r = '▀'
				case bot:
					r = '▄'
				default:
					r = ' '
				}

				scr.screen.SetContent(x, page*cellsPerPage+cell, r, nil, scr.style)
			}
		}
	}

	scr.crit.section.Unlock()

	scr.screen.Show()
}

// UserQuit implements the gui.GUI interface.
func (scr *TermPlay) UserQuit() bool {
	return scr.quit.Load()
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *TermPlay) Destroy(_ io.Writer) {
	scr.screen.Fini()
}
