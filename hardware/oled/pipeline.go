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

import (
	"sync/atomic"

	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/raster"
)

const notOutstanding = -1

// Pipeline drives composed frames to a PixelSink through two alternating
// buffers. Frame and Submit are called in strict alternation from the
// main flow; the completion handler is the only part that runs anywhere
// else.
//
// Pipeline is the preferred way of talking to a display. Creating a
// third buffer or pushing to the sink directly breaks the alternation
// the sink is entitled to rely on.
type Pipeline struct {
	sink   PixelSink
	origin Origin

	buffers [2]raster.FrameBuffer

	// inFlight markers are flipped by the completion handler and are the
	// only pipeline state shared across goroutines, along with the token
	// channels the handler signals on.
	inFlight [2]atomic.Bool
	done     [2]chan struct{}

	// compose selects the buffer the compositor may write. The other one
	// is the transfer source.
	compose int

	// outstanding is the index of the buffer whose frame is still open at
	// the sink, or notOutstanding. Main flow only.
	outstanding int

	submitted atomic.Int64
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type.
func NewPipeline(sink PixelSink, origin Origin) (*Pipeline, error) {
	if sink == nil {
		return nil, curated.Errorf("oled: pipeline needs a sink")
	}

	p := &Pipeline{
		sink:        sink,
		origin:      origin,
		outstanding: notOutstanding,
	}

	// capacity one so the completion handler can never block on the send
	p.done[0] = make(chan struct{}, 1)
	p.done[1] = make(chan struct{}, 1)

	return p, nil
}

// Frame returns the buffer that is safe to compose into, waiting for its
// previous transmission if one is somehow still running. With Frame and
// Submit alternating correctly the wait has always been settled by the
// preceding Submit and Frame returns at once.
func (p *Pipeline) Frame() (*raster.FrameBuffer, error) {
	if err := p.settle(p.compose); err != nil {
		return nil, err
	}
	return &p.buffers[p.compose], nil
}

// Submit hands the composed buffer to the sink and moves composition to
// the other buffer. It blocks until the previous transmission has
// completed, so at most one buffer is ever in flight.
func (p *Pipeline) Submit() error {
	if err := p.settle(1 - p.compose); err != nil {
		return err
	}

	i := p.compose

	if err := p.sink.BeginFrame(raster.Width, raster.Height, p.origin); err != nil {
		return curated.Errorf("oled: %v", err)
	}

	p.inFlight[i].Store(true)
	err := p.sink.PushBytes(p.buffers[i].Pixels(), func() {
		// send before the store. a waiter that loads a cleared marker is
		// then guaranteed to find the token already in the channel.
		p.done[i] <- struct{}{}
		p.inFlight[i].Store(false)
	})
	if err != nil {
		p.inFlight[i].Store(false)
		return curated.Errorf("oled: %v", err)
	}

	p.outstanding = i
	p.submitted.Add(1)
	p.compose = 1 - i

	return nil
}

// settle waits out the transmission of buffer i, if one is outstanding,
// and closes the frame at the sink.
func (p *Pipeline) settle(i int) error {
	if p.outstanding != i {
		return nil
	}

	if p.inFlight[i].Load() {
		<-p.done[i]
	} else {
		// completion has run. consume the token it left behind so it
		// cannot satisfy a later wait early.
		select {
		case <-p.done[i]:
		default:
		}
	}

	p.outstanding = notOutstanding

	if err := p.sink.EndFrame(); err != nil {
		return curated.Errorf("oled: %v", err)
	}
	return nil
}

// Close waits for any outstanding transmission and closes its frame at
// the sink. The pipeline is reusable afterwards but the usual reason for
// calling Close is that the console is going away.
func (p *Pipeline) Close() error {
	if err := p.settle(0); err != nil {
		return err
	}
	return p.settle(1)
}

// InFlight reports whether a transmission is currently outstanding. The
// two-buffer protocol guarantees there is never more than one.
func (p *Pipeline) InFlight() bool {
	return p.inFlight[0].Load() || p.inFlight[1].Load()
}

// Submitted returns the number of frames handed to the sink since the
// pipeline was created. Used by the FPS calculator.
func (p *Pipeline) Submitted() int64 {
	return p.submitted.Load()
}
