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

package debugger

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/brokenbeam/nes6502/cartridgeloader"
	"github.com/brokenbeam/nes6502/curated"
	"github.com/brokenbeam/nes6502/debugger/terminal"
)

// Sentinal errors returned by command parsing.
const (
	UnknownCommandError = "debugger: unknown command (%s)"
	ArgumentError       = "debugger: %s: %v"
)

// the command set and the help line for each command.
var commandHelp = map[string]string{
	"STEP":  "STEP [n] - execute the next n instructions (default 1)",
	"RUN":   "RUN [n] - run until an error or until n instructions have executed",
	"REGS":  "REGS - show the CPU registers",
	"PEEK":  "PEEK addr [n] - show n bytes of memory from addr (default 1)",
	"POKE":  "POKE addr v [v...] - write bytes to memory starting at addr",
	"LOAD":  "LOAD file [format] - load a program image (format RAW, HEX or AUTO)",
	"TRACE": "TRACE [ON|OFF] - echo executed instructions (toggles without an argument)",
	"VIZ":   "VIZ [file] - write a graphviz visualisation of the CPU state",
	"HELP":  "HELP - this message",
	"QUIT":  "QUIT - leave the debugger",
}

// default file for the VIZ command.
const vizFilename = "nes6502.dot"

func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case "STEP":
		n, err := parseCount(command, args, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if !dbg.step() {
				break // for loop
			}
		}

	case "RUN":
		n, err := parseCount(command, args, 0)
		if err != nil {
			return err
		}
		ct := 0
		for n == 0 || ct < n {
			if !dbg.step() {
				break // for loop
			}
			ct++
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, "%d instructions executed", ct)

	case "REGS":
		dbg.term.TermPrintLine(terminal.StyleInstrument, "%s", dbg.m.MC.String())

	case "PEEK":
		if len(args) < 1 {
			return curated.Errorf(ArgumentError, command, "address required")
		}
		addr, err := parseAddress(command, args[0])
		if err != nil {
			return err
		}
		n := 1
		if len(args) > 1 {
			n, err = parseCount(command, args[1:], 1)
			if err != nil {
				return err
			}
		}
		if n < 1 {
			n = 1
		}

		// the range read is clamped to the device mapped at addr, so a window
		// reaching past the device's top simply shows fewer bytes
		end := addr + uint16(n-1)
		if end < addr {
			end = 0xffff
		}
		b, err := dbg.m.Bus.ReadRange(addr, end)
		if err != nil {
			return err
		}

		s := strings.Builder{}
		for _, v := range b {
			fmt.Fprintf(&s, "%02x ", v)
		}
		dbg.term.TermPrintLine(terminal.StyleInstrument, "%04x: %s", addr, strings.TrimSpace(s.String()))

	case "POKE":
		if len(args) < 2 {
			return curated.Errorf(ArgumentError, command, "address and at least one value required")
		}
		addr, err := parseAddress(command, args[0])
		if err != nil {
			return err
		}
		for i, a := range args[1:] {
			v, err := parseByte(command, a)
			if err != nil {
				return err
			}
			if err := dbg.m.Bus.Write(addr+uint16(i), v); err != nil {
				return err
			}
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, "%d bytes written to %#04x", len(args)-1, addr)

	case "LOAD":
		if len(args) < 1 {
			return curated.Errorf(ArgumentError, command, "filename required")
		}
		format := "AUTO"
		if len(args) > 1 {
			format = args[1]
		}
		return dbg.load(cartridgeloader.NewLoader(args[0], format))

	case "TRACE":
		switch {
		case len(args) == 0:
			dbg.tracing = !dbg.tracing
		case strings.ToUpper(args[0]) == "ON":
			dbg.tracing = true
		case strings.ToUpper(args[0]) == "OFF":
			dbg.tracing = false
		default:
			return curated.Errorf(ArgumentError, command, "expected ON or OFF")
		}
		if dbg.tracing {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "tracing on")
		} else {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "tracing off")
		}

	case "VIZ":
		fn := vizFilename
		if len(args) > 0 {
			fn = args[0]
		}
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf(ArgumentError, command, err)
		}
		defer f.Close()
		memviz.Map(f, dbg.m.MC)
		dbg.term.TermPrintLine(terminal.StyleFeedback, "CPU state visualisation written to %s (render with graphviz)", fn)

	case "HELP":
		keys := make([]string, 0, len(commandHelp))
		for k := range commandHelp {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dbg.term.TermPrintLine(terminal.StyleHelp, "%s", commandHelp[k])
		}

	case "QUIT", "Q":
		dbg.running = false

	default:
		return curated.Errorf(UnknownCommandError, command)
	}

	return nil
}

// step the machine one instruction, reporting any error through the
// terminal. returns false if the input loop should stop stepping.
func (dbg *Debugger) step() bool {
	res, err := dbg.m.MC.Step()
	if err != nil {
		dbg.term.TermPrintLine(terminal.StyleError, "%s", err)
		return false
	}

	if dbg.tracing {
		dbg.term.TermPrintLine(terminal.StyleCPUStep, "%s", res.String())
	}

	return true
}

func parseCount(command string, args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, curated.Errorf(ArgumentError, command, "bad count ("+args[0]+")")
	}
	return n, nil
}

func parseAddress(command string, arg string) (uint16, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(arg), "0x"), "$")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, curated.Errorf(ArgumentError, command, "bad address ("+arg+")")
	}
	return uint16(v), nil
}

func parseByte(command string, arg string) (uint8, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(arg), "0x"), "$")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, curated.Errorf(ArgumentError, command, "bad value ("+arg+")")
	}
	return uint8(v), nil
}
