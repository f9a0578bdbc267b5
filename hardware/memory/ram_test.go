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

package memory_test

import (
	"testing"

	"github.com/brokenbeam/nes6502/curated"
	"github.com/brokenbeam/nes6502/hardware/memory"
	"github.com/brokenbeam/nes6502/test"
)

func TestRAM_invalidRange(t *testing.T) {
	_, err := memory.NewRAM("bad", 0x2000, 0x1fff)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.InvalidRangeError), true)
}

func TestRAM_offsetIndexing(t *testing.T) {
	ram, err := memory.NewRAM("ram", 0x8000, 0x80ff)
	test.ExpectedSuccess(t, err)

	// index is address minus origin; the first byte of the store is at the
	// origin, not at address zero
	test.ExpectedSuccess(t, ram.Write(0x8000, 0x01))
	test.ExpectedSuccess(t, ram.Write(0x80ff, 0x02))

	v, _ := ram.Read(0x8000)
	test.Equate(t, v, 0x01)
	v, _ = ram.Read(0x80ff)
	test.Equate(t, v, 0x02)
}

func TestRAM_fullAddressSpace(t *testing.T) {
	// a device claiming the entire 16-bit address space. the span does not
	// fit in uint16 so this catches any arithmetic done at that width
	ram, err := memory.NewRAM("ram", 0x0000, 0xffff)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, ram.Write(0x0000, 0x01))
	test.ExpectedSuccess(t, ram.Write(0x01fd, 0x42))
	test.ExpectedSuccess(t, ram.Write(0xffff, 0x02))

	v, _ := ram.Read(0x0000)
	test.Equate(t, v, 0x01)
	v, _ = ram.Read(0x01fd)
	test.Equate(t, v, 0x42)
	v, _ = ram.Read(0xffff)
	test.Equate(t, v, 0x02)

	// a range covering the whole device
	b, err := ram.ReadRange(0x0000, 0xffff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(b), 0x10000)
	test.Equate(t, b[0x01fd], 0x42)
	test.Equate(t, b[0xffff], 0x02)
}

func TestMirroredRAM_sizes(t *testing.T) {
	// physical size must be a power of two
	_, err := memory.NewMirroredRAM("bad", 0x0000, 0x1fff, 2000)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.MirrorSizeError), true)

	// and must fit inside the claimed range
	_, err = memory.NewMirroredRAM("bad", 0x0000, 0x00ff, 512)
	test.ExpectedFailure(t, err)

	// physical size equal to the range is allowed (degenerate single mirror)
	_, err = memory.NewMirroredRAM("ok", 0x0000, 0x07ff, 2048)
	test.ExpectedSuccess(t, err)
}

func TestMirroredRAM_aliasing(t *testing.T) {
	// 2KB of physical storage across an 8KB window
	ram, err := memory.NewMirroredRAM("cpu ram", 0x0000, 0x1fff, 2048)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, ram.Write(0x0000, 0x42))

	v, _ := ram.Read(0x0800)
	test.Equate(t, v, 0x42)
	v, _ = ram.Read(0x1800)
	test.Equate(t, v, 0x42)

	// aliasing is symmetric. writing through a mirror is visible at the
	// physical address
	test.ExpectedSuccess(t, ram.Write(0x1001, 0x99))
	v, _ = ram.Read(0x0001)
	test.Equate(t, v, 0x99)

	// round-trip holds modulo the mirror mask for every k that stays in range
	test.ExpectedSuccess(t, ram.Write(0x0123, 0x55))
	for k := uint16(0); k < 4; k++ {
		v, _ = ram.Read(0x0123 + k*2048)
		test.Equate(t, v, 0x55)
	}
}

func TestMirroredRAM_readRange(t *testing.T) {
	ram, err := memory.NewMirroredRAM("cpu ram", 0x0000, 0x1fff, 2048)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, ram.Write(0x0000, 0xa9))
	test.ExpectedSuccess(t, ram.Write(0x0001, 0x01))

	// the window crosses a mirror boundary. bytes wrap back to the start of
	// the physical store
	b, err := ram.ReadRange(0x07ff, 0x0801)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(b), 3)
	test.Equate(t, b[1], 0xa9)
	test.Equate(t, b[2], 0x01)
}

func TestMirroredRAM_fullAddressSpace(t *testing.T) {
	// mirrors across the entire 16-bit address space. as with the flat RAM
	// the span overflows uint16 arithmetic
	ram, err := memory.NewMirroredRAM("ram", 0x0000, 0xffff, 2048)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, ram.Write(0x0000, 0xa9))

	b, err := ram.ReadRange(0x0000, 0xffff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(b), 0x10000)
	test.Equate(t, b[0], 0xa9)
	test.Equate(t, b[0xf800], 0xa9)
}
