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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/brokenbeam/nes6502/modalflag"
	"github.com/brokenbeam/nes6502/test"
)

func TestModalFlag_defaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})
	md.AddSubModes("RUN", "DEBUG")

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, r == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "RUN")
}

func TestModalFlag_selectedMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"debug", "program.hex"})
	md.AddSubModes("RUN", "DEBUG")

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, r == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "DEBUG")

	// the mode's own arguments remain for the next layer
	md.NewMode()
	trace := md.AddBool("trace", false, "trace execution")
	r, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, r == modalflag.ParseContinue, true)
	test.Equate(t, *trace, false)
	test.Equate(t, md.GetArg(0), "program.hex")
}

func TestModalFlag_modeFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"run", "-limit", "100", "program.bin"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	limit := md.AddInt("limit", 0, "maximum number of instructions")
	_, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, *limit, 100)
	test.Equate(t, md.GetArg(0), "program.bin")
}
