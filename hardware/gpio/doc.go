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

// Package gpio defines the pin capability handed to drivers that talk to
// the world outside the console. The handheld exposes exactly three lines
// of interest: the action button, the buzzer and the analog direction
// ladder. Rather than a global port table, each driver is given the one
// Pin it needs at construction and can do nothing beyond it.
//
// MemoryPin is a pin backed by nothing but memory. It stands in for real
// hardware during emulation and lets tests observe what a driver did to
// its line.
package gpio
