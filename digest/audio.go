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

	"github.com/wagiminator/tinyconsole/hardware/beeper"
)

// the length of the buffer isn't really important. that said, it needs
// to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to allow digests of tone streams longer than audioBufferLength, the
// previous digest value is stuffed into the head of the buffer and
// included when the next digest value is created
const audioBufferStart = sha1.Size

// each tone is recorded as its pitch followed by its length, most
// significant byte first
const bytesPerTone = 3

// Audio is an implementation of the beeper.Beeper interface. It
// generates a SHA-1 value of the tone stream sent to it. Nothing is
// played anywhere.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]byte, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements the Digest interface. Any tones still in the buffer
// are folded in first, so the value always covers the whole stream.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}

	// the buffer head carries the chained fingerprint. it must go too
	for i := range dig.buffer {
		dig.buffer[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

// Beep implements the beeper.Beeper interface.
func (dig *Audio) Beep(tn beeper.Tone) {
	dig.buffer[dig.bufferCt] = tn.Pitch
	dig.buffer[dig.bufferCt+1] = byte(tn.Len >> 8)
	dig.buffer[dig.bufferCt+2] = byte(tn.Len)
	dig.bufferCt += bytesPerTone

	if dig.bufferCt+bytesPerTone > audioBufferLength {
		dig.flush()
	}
}

// flush sums the buffer and chains the result into its head, ready for
// the next stretch of the stream.
func (dig *Audio) flush() {
	// unused space must not leak a previous stream's tones into the sum
	for i := dig.bufferCt; i < audioBufferLength; i++ {
		dig.buffer[i] = 0
	}

	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
