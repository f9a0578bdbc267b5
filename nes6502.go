// This file is part of nes6502.
//
// nes6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nes6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nes6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/brokenbeam/nes6502/cartridgeloader"
	"github.com/brokenbeam/nes6502/debugger"
	"github.com/brokenbeam/nes6502/debugger/terminal"
	"github.com/brokenbeam/nes6502/debugger/terminal/colorterm"
	"github.com/brokenbeam/nes6502/debugger/terminal/plainterm"
	"github.com/brokenbeam/nes6502/hardware"
	"github.com/brokenbeam/nes6502/logger"
	"github.com/brokenbeam/nes6502/modalflag"
	"github.com/brokenbeam/nes6502/statsview"
	"github.com/brokenbeam/nes6502/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG")
	ver := md.AddBool("version", false, "print version and quit")

	r, err := md.Parse()
	switch r {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	if *ver {
		fmt.Printf("%s %s\n", version.ApplicationName, version.Version())
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(md)
	case "DEBUG":
		err = debug(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

func emulate(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "program image format: AUTO, RAW or HEX")
	origin := md.AddUint("origin", cartridgeloader.DefaultOrigin, "address raw binaries are copied to")
	entry := md.AddUint("entry", 0, "entry address (default: where the image was loaded)")
	limit := md.AddInt("limit", 0, "stop after this many instructions (0 for no limit)")
	trace := md.AddBool("trace", false, "echo every executed instruction")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	r, err := md.Parse()
	if r != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program image required for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	m, err := hardware.NewMachine()
	if err != nil {
		return err
	}

	if *trace {
		m.SetTrace(os.Stdout)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0), *format)
	cl.Origin = uint16(*origin)

	loaded, err := cl.Load(m.Bus)
	if err != nil {
		return err
	}

	if *entry != 0 {
		m.MC.LoadPC(uint16(*entry))
	} else {
		m.MC.LoadPC(loaded)
	}

	ct, err := m.Run(*limit)
	if err != nil {
		fmt.Printf("%d instructions executed\n", ct)
		return err
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "program image format: AUTO, RAW or HEX")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	r, err := md.Parse()
	if r != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	dbg, err := debugger.NewDebugger()
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		term = &plainterm.PlainTerminal{}
	}

	var cl *cartridgeloader.Loader
	if len(md.RemainingArgs()) > 0 {
		ld := cartridgeloader.NewLoader(md.GetArg(0), *format)
		cl = &ld
	}

	return dbg.Start(term, cl)
}
