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

package sdlplay

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/wagiminator/tinyconsole/curated"
	"github.com/wagiminator/tinyconsole/hardware/oled"
	"github.com/wagiminator/tinyconsole/hardware/raster"
)

const windowTitle = "TinyConsole"

// bytes per texture pixel. RGBA
const pixelDepth = 4

const defaultScale = 4

// SdlPlay is the SDL front end. The window shows the 128x64 panel
// enlarged by an integer scale and the keyboard stands in for the
// joypad.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	crit sdlPlayCrit

	// rgba expansion of the packed frame. written and read only during
	// render() so outside the critical section
	pixels []byte

	// joypad state as currently held on the keyboard. written by the
	// main thread, read by the emulation goroutine through State()
	held atomic.Uint32

	quit atomic.Bool

	// the window stays hidden until the first frame has been rendered.
	// main thread only
	shown bool
}

// for clarity, variables accessed in the critical section are
// encapsulated in their own subtype.
type sdlPlayCrit struct {
	// critical sectioning
	section sync.Mutex

	// packed page-major copy of the most recently pushed frame
	frame []byte

	// whether frame has changed since the last render
	newFrame bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(scale int) (*SdlPlay, error) {
	if scale < 1 {
		scale = defaultScale
	}

	scr := &SdlPlay{
		pixels: make([]byte, raster.Width*raster.Height*pixelDepth),
	}
	scr.crit.frame = make([]byte, raster.NumBytes)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	var err error

	// set up sdl
	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// SDL window. hidden until the first frame arrives
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(raster.Width*scale), int32(raster.Height*scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer does the scaling. logical size is the panel size and
	// integer scaling keeps the pixels square whatever the window size
	err = scr.renderer.SetLogicalSize(int32(raster.Width), int32(raster.Height))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = scr.renderer.SetIntegerScale(true)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the packed frame. we copy the
	// expanded pixels to it every new frame
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(raster.Width), int32(raster.Height))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	return scr, nil
}

// BeginFrame implements the oled.PixelSink interface.
func (scr *SdlPlay) BeginFrame(width int, height int, _ oled.Origin) error {
	if width != raster.Width || height != raster.Height {
		return curated.Errorf("sdlplay: unsupported frame geometry (%dx%d)", width, height)
	}
	return nil
}

// PushBytes implements the oled.PixelSink interface. The frame is
// copied aside for the main thread to render and completed is called
// before returning.
func (scr *SdlPlay) PushBytes(data []byte, completed func()) error {
	if len(data) < raster.NumBytes {
		completed()
		return curated.Errorf("sdlplay: frame data is short")
	}

	scr.crit.section.Lock()
	copy(scr.crit.frame, data)
	scr.crit.newFrame = true
	scr.crit.section.Unlock()

	completed()
	return nil
}

// EndFrame implements the oled.PixelSink interface.
func (scr *SdlPlay) EndFrame() error {
	return nil
}

// UserQuit implements the gui.GUI interface.
func (scr *SdlPlay) UserQuit() bool {
	return scr.quit.Load()
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	err := scr.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	sdl.Quit()
}
