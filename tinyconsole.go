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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/wagiminator/tinyconsole/digest"
	"github.com/wagiminator/tinyconsole/games/muncher"
	"github.com/wagiminator/tinyconsole/gui"
	"github.com/wagiminator/tinyconsole/gui/sdlaudio"
	"github.com/wagiminator/tinyconsole/gui/sdlplay"
	"github.com/wagiminator/tinyconsole/gui/termplay"
	"github.com/wagiminator/tinyconsole/hardware"
	"github.com/wagiminator/tinyconsole/hardware/beeper"
	"github.com/wagiminator/tinyconsole/hardware/joypad"
	"github.com/wagiminator/tinyconsole/hardware/oled"
	"github.com/wagiminator/tinyconsole/logger"
	"github.com/wagiminator/tinyconsole/modalflag"
	"github.com/wagiminator/tinyconsole/performance"
	"github.com/wagiminator/tinyconsole/random"
	"github.com/wagiminator/tinyconsole/statsview"
	"github.com/wagiminator/tinyconsole/version"
	"github.com/wagiminator/tinyconsole/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. the terminal front end never trips this, raw
	// mode turning ctrl-c into a key event instead
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var scr GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if scr != nil {
				scr.Destroy(os.Stderr)
			}
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if scr != nil {
				scr.Destroy(os.Stderr)
			}

			scr, err = creator()
			if err != nil {
				sync.creationError <- err

				// scr is a variable of type interface. a nil concrete value
				// inside it would not equate to nil so make sure the
				// variable itself is nil
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			// each front end paces its own Service() function so this
			// branch never spins. with no gui at all we doze instead
			if scr != nil {
				scr.Service()
			} else {
				time.Sleep(time.Millisecond)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// loadGame returns the named game wired to the supplied beeper and random
// source. with no name the default game is used.
func loadGame(name string, bp beeper.Beeper, rnd *random.Random) (hardware.Game, error) {
	switch strings.ToLower(name) {
	case "", "muncher":
		return muncher.NewGame(bp, rnd), nil
	}
	return nil, fmt.Errorf("no game called %s", name)
}

func play(md *modalflag.Modes, sync *mainSync) (rerr error) {
	md.NewMode()

	display := md.AddString("display", "sdl", "display to use: SDL, TERM, NONE")
	scale := md.AddInt("scale", 4, "window scale (SDL display only)")
	fpsCap := md.AddBool("fpscap", true, "cap tick rate to the native rate")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo. the recent log is echoed too, in case
	// anything interesting happened before now
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	game := ""
	switch len(md.RemainingArgs()) {
	case 0:
		// the default game
	case 1:
		game = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// create gui for the chosen display
	var creator func() (GuiCreator, error)

	switch strings.ToUpper(*display) {
	case "SDL":
		creator = func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay(*scale)
		}
	case "TERM":
		creator = func() (GuiCreator, error) {
			return termplay.NewTermPlay()
		}
	case "NONE":
		creator = func() (GuiCreator, error) {
			return gui.Stub{}, nil
		}
	default:
		return fmt.Errorf("unknown display type (%s) for %s mode", *display, md)
	}

	sync.creator <- creator

	// wait for creator result
	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	// sound for the chosen display. a missing audio device is no reason
	// not to play
	var bp beeper.Beeper = beeper.Null{}
	endMixing := func() error { return nil }

	switch strings.ToUpper(*display) {
	case "SDL":
		aud, err := sdlaudio.NewAudio()
		if err != nil {
			logger.Logf(logger.Allow, "sdlaudio", "%v", err)
		} else {
			bp = aud
			endMixing = aud.EndMixing
		}
	case "TERM":
		spk, err := termplay.NewSpeaker()
		if err != nil {
			logger.Logf(logger.Allow, "termplay", "%v", err)
		} else {
			bp = spk
			endMixing = spk.EndMixing
		}
	}

	// add wavwriter tee if wav argument has been specified
	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}

		live := bp
		bp = beeper.Func(func(tn beeper.Tone) {
			live.Beep(tn)
			aw.Beep(tn)
		})

		prev := endMixing
		endMixing = func() error {
			perr := prev()
			if err := aw.EndMixing(); err != nil {
				return err
			}
			return perr
		}
	}

	defer func() {
		if err := endMixing(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	con, err := hardware.NewConsole(scr, oled.Origin{}, scr, bp)
	if err != nil {
		return err
	}
	con.SetFPSCap(*fpsCap)

	g, err := loadGame(game, bp, con.Random)
	if err != nil {
		return err
	}

	err = con.Plug(g)
	if err != nil {
		return err
	}

	return con.Run(func() (bool, error) {
		return !scr.UserQuit(), nil
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through profiler: NONE, CPU, MEM, TRACE, ALL")
	fpsCap := md.AddBool("fpscap", false, "cap tick rate to the native rate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	game := ""
	switch len(md.RemainingArgs()) {
	case 0:
		// the default game
	case 1:
		game = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	g, err := loadGame(game, beeper.Null{}, random.NewRandom())
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, g, !*fpsCap, *duration)
}

func regress(md *modalflag.Modes) error {
	md.NewMode()

	numTicks := md.AddInt("ticks", 1000, "number of ticks to run")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The regression run plays a fixed input script against the game and fingerprints
everything that would have reached the player: a chained SHA-1 over every composed
frame and another over every tone request. The run is deterministic so the pair of
digests identifies the behaviour of the build exactly.

With no arguments the digests are printed for noting down. With two arguments, the
expected video and audio digests in that order, the run becomes a pass/fail check.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	expVideo := ""
	expAudio := ""
	args := md.RemainingArgs()
	switch len(args) {
	case 0:
		// print-only run
	case 2:
		expVideo = args[0]
		expAudio = args[1]
	default:
		return fmt.Errorf("%s mode takes no arguments, or a video and an audio digest", md)
	}

	vid := digest.NewVideo()
	aud := digest.NewAudio()

	con, err := hardware.NewConsole(vid, oled.Origin{}, &regressScript{}, aud)
	if err != nil {
		return err
	}
	con.SetFPSCap(false)

	g, err := loadGame("", aud, con.Random)
	if err != nil {
		return err
	}

	err = con.Plug(g)
	if err != nil {
		return err
	}

	err = con.RunForTickCount(*numTicks, nil)
	if err != nil {
		return err
	}

	videoHash := vid.Hash()
	audioHash := aud.Hash()

	fmt.Fprintf(md.Output, "ticks: %d  frames: %d\n", *numTicks, vid.Frames())
	fmt.Fprintf(md.Output, "video digest: %s\n", videoHash)
	fmt.Fprintf(md.Output, "audio digest: %s\n", audioHash)

	if expVideo != "" {
		if videoHash != expVideo {
			return fmt.Errorf("video digest mismatch")
		}
		if audioHash != expAudio {
			return fmt.Errorf("audio digest mismatch")
		}
		fmt.Fprintln(md.Output, "digests match")
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vn, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, vn)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}

// regressScript is the fixed input for a regression run: wait out the
// attract screen, press the action button, then sweep the stick through
// each direction in turn.
type regressScript struct {
	polls int
}

// State implements the joypad.Input interface.
func (sc *regressScript) State() joypad.State {
	sc.polls++

	switch {
	case sc.polls < 25:
		return joypad.State{}
	case sc.polls < 30:
		return joypad.State{Act: true}
	}

	switch (sc.polls / 75) % 4 {
	case 0:
		return joypad.State{Left: true}
	case 1:
		return joypad.State{Up: true}
	case 2:
		return joypad.State{Right: true}
	case 3:
		return joypad.State{Down: true}
	}

	return joypad.State{}
}
