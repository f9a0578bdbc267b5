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

// Package colorterm implements the Terminal interface for a posix colour
// terminal. Input is read a character at a time in cbreak mode so the prompt
// can be managed directly; output is coloured according to the line's style.
package colorterm

import (
	"io"
	"os"

	"github.com/brokenbeam/nes6502/debugger/terminal"
	"github.com/brokenbeam/nes6502/debugger/terminal/colorterm/easyterm"
	"github.com/brokenbeam/nes6502/debugger/terminal/colorterm/easyterm/ansi"
)

// control characters we care about during input.
const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	backspace = 0x7f
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.Terminal
}

// Initialise the colour terminal.
func (ct *ColorTerminal) Initialise() error {
	return ct.Terminal.Initialise(os.Stdin, os.Stdout)
}

// CleanUp restores the terminal to canonical mode.
func (ct *ColorTerminal) CleanUp() {
	ct.Terminal.CleanUp()
}

// TermRead presents the prompt and gathers a line of input a character at a
// time. Returns io.EOF when the user types ctrl-c or ctrl-d.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	ct.Print("%s%s%s", ansi.PenBold, prompt, ansi.NormalRet)

	input := make([]byte, 0, 32)
	for {
		b, err := ct.ReadByte()
		if err != nil {
			return "", err
		}

		switch b {
		case ctrlC, ctrlD:
			ct.Print("\n")
			return "", io.EOF

		case '\n', '\r':
			ct.Print("\n")
			return string(input), nil

		case backspace, 0x08:
			if len(input) > 0 {
				input = input[:len(input)-1]
				ct.Print("\b \b")
			}

		default:
			// printable characters only; escape sequences from cursor keys
			// etc. are swallowed
			if b >= 0x20 && b < 0x7f {
				input = append(input, b)
				ct.Print("%c", b)
			}
		}
	}
}

// TermPrintLine prints a coloured line to the terminal.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string, a ...interface{}) {
	switch style {
	case terminal.StyleHelp:
		ct.Print(ansi.PenDim)
	case terminal.StyleFeedback:
		ct.Print(ansi.PenGreen)
	case terminal.StyleCPUStep:
		ct.Print(ansi.PenYellow)
	case terminal.StyleInstrument:
		ct.Print(ansi.PenCyan)
	case terminal.StyleError:
		ct.Print(ansi.PenRed)
		ct.Print("* ")
	}

	ct.Print(s, a...)
	ct.Print(ansi.NormalRet)
	ct.Print("\n")
}
