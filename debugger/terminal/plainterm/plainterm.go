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

// Package plainterm implements the Terminal interface in the most basic way
// possible: line buffered input from stdin and unstyled output to stdout. It
// works everywhere, including inside pipelines and scripts.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/brokenbeam/nes6502/debugger/terminal"
)

// PlainTerminal is the default, fallback terminal for the debugger.
type PlainTerminal struct {
	input  *bufio.Reader
	output io.Writer
}

// Initialise the plain terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = bufio.NewReader(os.Stdin)
	pt.output = os.Stdout
	return nil
}

// CleanUp has nothing to do in the plain terminal.
func (pt *PlainTerminal) CleanUp() {
}

// TermRead presents the prompt and reads a line from stdin.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	fmt.Fprint(pt.output, prompt)
	s, err := pt.input.ReadString('\n')
	if err != nil {
		return "", err
	}
	return s, nil
}

// TermPrintLine prints a styled line to stdout. Styles are ignored.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string, a ...interface{}) {
	fmt.Fprintf(pt.output, s, a...)
	fmt.Fprintln(pt.output)
}
