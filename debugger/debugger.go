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

// Package debugger provides an interactive command-line interface to the
// emulated machine. One instruction at a time stepping, memory inspection
// and modification, program loading and execution tracing are all available
// through a small command set; see the HELP command.
package debugger

import (
	"io"

	"github.com/brokenbeam/nes6502/cartridgeloader"
	"github.com/brokenbeam/nes6502/curated"
	"github.com/brokenbeam/nes6502/debugger/terminal"
	"github.com/brokenbeam/nes6502/hardware"
	"github.com/brokenbeam/nes6502/logger"
)

// Debugger is the debugging loop around the emulated machine.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal

	// whether the input loop is still wanted
	running bool

	// whether executed instructions are echoed to the terminal
	tracing bool
}

// NewDebugger creates the debugger and the machine it debugs.
func NewDebugger() (*Debugger, error) {
	m, err := hardware.NewMachine()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return &Debugger{
		m:       m,
		tracing: true,
	}, nil
}

// Start the interactive input loop, reading from the given terminal until
// the user quits. The loader, if not nil, is applied before the first
// prompt.
func (dbg *Debugger) Start(tm terminal.Terminal, ld *cartridgeloader.Loader) error {
	dbg.term = tm

	if err := tm.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer tm.CleanUp()

	if ld != nil {
		if err := dbg.load(*ld); err != nil {
			tm.TermPrintLine(terminal.StyleError, "%s", err)
		}
	}

	logger.Log("debugger", "input loop started")

	dbg.running = true
	for dbg.running {
		input, err := tm.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF {
				break // for loop
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseCommand(input); err != nil {
			tm.TermPrintLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// the prompt shows the address of the instruction about to be executed.
func (dbg *Debugger) prompt() string {
	return "[" + dbg.m.MC.PC.String() + "] > "
}

// load a program image and point the program counter at its entry address.
func (dbg *Debugger) load(ld cartridgeloader.Loader) error {
	entry, err := ld.Load(dbg.m.Bus)
	if err != nil {
		return err
	}

	dbg.m.MC.LoadPC(entry)
	dbg.term.TermPrintLine(terminal.StyleFeedback, "%s loaded; entry point %#04x", ld.Filename, entry)

	return nil
}
