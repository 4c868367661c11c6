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

package gpio

import "sync"

// MemoryPin implements the Pin interface with no hardware behind it. the
// same Write/Read pair serves both sides of the line: a driver under test
// writes levels the test then reads, and a test writes levels a driver
// then reads.
//
// safe for concurrent use. a driver may run on its own goroutine.
type MemoryPin struct {
	crit sync.Mutex

	mode  Mode
	level Level

	// number of Write calls and how many of them changed the level
	writes int
	edges  int
}

// NewMemoryPin is the preferred method of initialisation for the
// MemoryPin type. the pin starts low in Input mode.
func NewMemoryPin() *MemoryPin {
	return &MemoryPin{}
}

// Configure implements the Pin interface. a MemoryPin accepts every mode.
// configuring with InputPullup pulls the line high, as the real pin would.
func (p *MemoryPin) Configure(mode Mode) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.mode = mode
	if mode == InputPullup {
		p.level = High
	}

	return nil
}

// Write implements the Pin interface.
func (p *MemoryPin) Write(lvl Level) {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.writes++
	if lvl != p.level {
		p.edges++
	}
	p.level = lvl
}

// Read implements the Pin interface.
func (p *MemoryPin) Read() Level {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.level
}

// Mode returns the mode the pin was last configured with.
func (p *MemoryPin) Mode() Mode {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.mode
}

// Edges returns the number of level changes the pin has seen. useful when
// checking that a driver toggled its line the expected number of times.
func (p *MemoryPin) Edges() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.edges
}

// Writes returns the total number of Write calls, whether or not they
// changed the level.
func (p *MemoryPin) Writes() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.writes
}
