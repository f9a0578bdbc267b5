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

// Package terminal defines the operations required for user interaction with
// the debugger. Implementations decide how lines are read and how styled
// output is rendered; the debugger itself does not care.
package terminal

// Style is used to hint at the semantics of a line of output. How the styles
// are rendered, if at all, is up to the Terminal implementation.
type Style int

// List of terminal styles.
const (
	// input echoed back or other neutral output
	StylePlain Style = iota

	// help text
	StyleHelp

	// acknowledgements and confirmations from the debugger
	StyleFeedback

	// the one line trace of an executed instruction
	StyleCPUStep

	// register and machine state reports
	StyleInstrument

	// non-fatal error messages
	StyleError
)

// Terminal is the interface the debugger talks to the user through. TermRead
// returns io.EOF when the user closes the session.
type Terminal interface {
	// Initialise the terminal. memory or system resources are acquired here
	Initialise() error

	// CleanUp any resources and restore the terminal to its original state
	CleanUp()

	// TermRead presents the prompt and returns the user's input line
	TermRead(prompt string) (string, error)

	// TermPrintLine formats and prints a single line
	TermPrintLine(style Style, s string, a ...interface{})
}
