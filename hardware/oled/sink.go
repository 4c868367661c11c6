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

package oled

// Origin is the position of the frame's top-left corner on the physical
// display. Most panels want (0, 0) but some controllers map their RAM
// with a column offset.
type Origin struct {
	X int
	Y int
}

// PixelSink implementations carry composed frames to a display, a file,
// a digest, or nowhere at all. The pipeline drives the sink through a
// strict begin/push/end cycle per frame.
//
// PushBytes must return immediately. The data slice is the live frame
// buffer: the sink may read it until it calls completed, after which the
// pipeline is free to reuse it. completed must be called exactly once
// per push and may be called from any goroutine, including from inside
// PushBytes itself.
//
// Byte order is page major: 128 bytes for the topmost page first, left
// to right within the page, each byte one column of eight rows with the
// topmost row in the least significant bit.
type PixelSink interface {
	BeginFrame(width int, height int, origin Origin) error
	PushBytes(data []byte, completed func()) error
	EndFrame() error
}

// NullSink discards frames, completing each push before it returns. It
// stands in for a display when none is wanted.
type NullSink struct{}

// BeginFrame implements the PixelSink interface.
func (s NullSink) BeginFrame(_ int, _ int, _ Origin) error {
	return nil
}

// PushBytes implements the PixelSink interface.
func (s NullSink) PushBytes(_ []byte, completed func()) error {
	completed()
	return nil
}

// EndFrame implements the PixelSink interface.
func (s NullSink) EndFrame() error {
	return nil
}
