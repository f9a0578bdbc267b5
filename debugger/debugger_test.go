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

package debugger_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/brokenbeam/nes6502/debugger"
	"github.com/brokenbeam/nes6502/debugger/terminal"
	"github.com/brokenbeam/nes6502/test"
)

// mockTerm feeds a scripted list of commands to the debugger and keeps
// everything that is printed.
type mockTerm struct {
	input  []string
	output strings.Builder
}

func (m *mockTerm) Initialise() error {
	return nil
}

func (m *mockTerm) CleanUp() {
}

func (m *mockTerm) TermRead(prompt string) (string, error) {
	if len(m.input) == 0 {
		return "", io.EOF
	}
	s := m.input[0]
	m.input = m.input[1:]
	return s, nil
}

func (m *mockTerm) TermPrintLine(style terminal.Style, s string, a ...interface{}) {
	fmt.Fprintf(&m.output, s, a...)
	m.output.WriteString("\n")
}

func runScript(t *testing.T, commands ...string) string {
	t.Helper()

	dbg, err := debugger.NewDebugger()
	test.ExpectedSuccess(t, err)

	tm := &mockTerm{input: commands}
	test.ExpectedSuccess(t, dbg.Start(tm, nil))

	return tm.output.String()
}

func TestDebugger_pokePeek(t *testing.T) {
	out := runScript(t,
		"poke 0600 a9 42",
		"peek $0600 2",
		"quit",
	)
	test.Equate(t, strings.Contains(out, "2 bytes written to 0x0600"), true)
	test.Equate(t, strings.Contains(out, "0600: a9 42"), true)
}

func TestDebugger_peekDeviceEdge(t *testing.T) {
	// a peek window reaching past the top of the internal RAM is clamped to
	// the device rather than spilling into the work RAM
	out := runScript(t,
		"poke 1fff 11",
		"poke 2000 22",
		"peek $1fff 4",
		"quit",
	)
	test.Equate(t, strings.Contains(out, "1fff: 11\n"), true)
}

func TestDebugger_regs(t *testing.T) {
	out := runScript(t,
		"regs",
		"quit",
	)
	test.Equate(t, strings.Contains(out, "PC=0x0000"), true)
	test.Equate(t, strings.Contains(out, "SP=0xfd"), true)
}

func TestDebugger_traceToggle(t *testing.T) {
	out := runScript(t,
		"trace off",
		"trace",
		"quit",
	)
	test.Equate(t, strings.Contains(out, "tracing off"), true)
	test.Equate(t, strings.Contains(out, "tracing on"), true)
}

func TestDebugger_stepTrace(t *testing.T) {
	out := runScript(t,
		"poke 0600 a9 42",
		"poke 0000 4c 00 06", // JMP $0600 at the reset PC
		"step 2",
		"quit",
	)
	test.Equate(t, strings.Contains(out, "0000  JMP $0600"), true)
	test.Equate(t, strings.Contains(out, "0600  LDA #$42"), true)
}

func TestDebugger_unknownCommand(t *testing.T) {
	out := runScript(t,
		"wibble",
		"quit",
	)
	test.Equate(t, strings.Contains(out, "unknown command (WIBBLE)"), true)
}

func TestDebugger_help(t *testing.T) {
	out := runScript(t,
		"help",
		"quit",
	)
	test.Equate(t, strings.Contains(out, "STEP"), true)
	test.Equate(t, strings.Contains(out, "QUIT"), true)
}
