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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brokenbeam/nes6502/cartridgeloader"
	"github.com/brokenbeam/nes6502/hardware"
	"github.com/brokenbeam/nes6502/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.ExpectedSuccess(t, os.WriteFile(fn, data, 0644))
	return fn
}

func TestLoader_raw(t *testing.T) {
	m, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	fn := writeFile(t, "prog.bin", []byte{0xa9, 0x01, 0xea})

	cl := cartridgeloader.NewLoader(fn, "AUTO")
	test.Equate(t, cl.Format, "RAW")

	entry, err := cl.Load(m.Bus)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry, 0xc000)

	v, err := m.Bus.Read(0xc000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xa9)
	v, err = m.Bus.Read(0xc002)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xea)
}

func TestLoader_inesHeaderSkipped(t *testing.T) {
	m, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	// a minimal iNES file: 16 byte header then PRG data
	data := append([]byte("NES\x1a"), make([]byte, 12)...)
	data = append(data, 0x4c, 0x00, 0xc0)
	fn := writeFile(t, "prog.nes", data)

	cl := cartridgeloader.NewLoader(fn, "AUTO")
	entry, err := cl.Load(m.Bus)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry, 0xc000)

	v, err := m.Bus.Read(0xc000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x4c)
}

func TestLoader_hexdump(t *testing.T) {
	m, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	dump := "0600: a9 01 8d 00 02\n0610: ea\n\n"
	fn := writeFile(t, "prog.hex", []byte(dump))

	cl := cartridgeloader.NewLoader(fn, "AUTO")
	test.Equate(t, cl.Format, "HEX")

	entry, err := cl.Load(m.Bus)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry, 0x0600)

	v, err := m.Bus.Read(0x0603)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
	v, err = m.Bus.Read(0x0610)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xea)
}

func TestLoader_hexdumpBadByte(t *testing.T) {
	m, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	fn := writeFile(t, "prog.hex", []byte("0600: a9 zz\n"))

	cl := cartridgeloader.NewLoader(fn, "AUTO")
	_, err = cl.Load(m.Bus)
	test.ExpectedFailure(t, err)
}

func TestLoader_missingFile(t *testing.T) {
	m, err := hardware.NewMachine()
	test.ExpectedSuccess(t, err)

	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "nosuch.bin"), "")
	_, err = cl.Load(m.Bus)
	test.ExpectedFailure(t, err)
}
