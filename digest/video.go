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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/oled"
	"github.com/wagiminator/tinyconsole/hardware/raster"
)

// Video is an implementation of the oled.PixelSink interface. It
// generates a SHA-1 value of every frame pushed to it. The image is not
// displayed anywhere.
//
// Note that the use of SHA-1 is fine for this application because this
// is not a cryptographic task.
type Video struct {
	digest [sha1.Size]byte

	// frame data is copied to the tail of this buffer. the head is
	// reserved for the previous digest value, which is how the
	// fingerprints are chained
	buffer []byte

	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}
	dig.buffer = make([]byte, sha1.Size+raster.NumBytes)
	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// Frames returns the number of frames that have been digested since the
// last reset.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// BeginFrame implements the oled.PixelSink interface.
func (dig *Video) BeginFrame(width int, height int, _ oled.Origin) error {
	if width != raster.Width || height != raster.Height {
		return curated.Errorf("digest: video: unsupported frame geometry (%dx%d)", width, height)
	}
	return nil
}

// PushBytes implements the oled.PixelSink interface.
func (dig *Video) PushBytes(data []byte, completed func()) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the frame data
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: error while chaining fingerprints")
	}

	n = copy(dig.buffer[sha1.Size:], data)
	if n != raster.NumBytes {
		return curated.Errorf("digest: video: frame data is short (%d bytes)", n)
	}

	dig.digest = sha1.Sum(dig.buffer)
	dig.frameNum++

	completed()

	return nil
}

// EndFrame implements the oled.PixelSink interface.
func (dig *Video) EndFrame() error {
	return nil
}
