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

func mustRAM(t *testing.T, label string, origin uint16, memtop uint16) *memory.RAM {
	t.Helper()
	ram, err := memory.NewRAM(label, origin, memtop)
	if err != nil {
		t.Fatal(err)
	}
	return ram
}

func TestBus_disjointRanges(t *testing.T) {
	bus := memory.NewBus()

	test.ExpectedSuccess(t, bus.AddDevice(mustRAM(t, "a", 0x0000, 0x01ff)))
	test.ExpectedSuccess(t, bus.AddDevice(mustRAM(t, "b", 0x0200, 0x03ff)))
}

func TestBus_overlapRejected(t *testing.T) {
	bus := memory.NewBus()

	// one byte of intersection at 0x0200/0x0201
	test.ExpectedSuccess(t, bus.AddDevice(mustRAM(t, "a", 0x0000, 0x0201)))
	err := bus.AddDevice(mustRAM(t, "b", 0x0200, 0x0200))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.OverlapError), true)

	// enclosure. the candidate range sits wholly inside an existing range
	bus = memory.NewBus()
	test.ExpectedSuccess(t, bus.AddDevice(mustRAM(t, "a", 0x0000, 0x0300)))
	err = bus.AddDevice(mustRAM(t, "b", 0x0200, 0x0200))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.OverlapError), true)

	// rejected registration must not have mutated the bus. the range left
	// free by the first device is still free
	_, err = bus.Read(0x0400)
	test.Equate(t, curated.Is(err, memory.UnmappedAddressError), true)
}

func TestBus_unmappedAddress(t *testing.T) {
	bus := memory.NewBus()
	test.ExpectedSuccess(t, bus.AddDevice(mustRAM(t, "a", 0x1000, 0x1fff)))

	_, err := bus.Read(0x0fff)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.UnmappedAddressError), true)

	err = bus.Write(0x2000, 0xff)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.UnmappedAddressError), true)

	_, err = bus.ReadRange(0x0000, 0x0002)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.UnmappedAddressError), true)
}

func TestBus_readWriteRoundTrip(t *testing.T) {
	bus := memory.NewBus()
	test.ExpectedSuccess(t, bus.AddDevice(mustRAM(t, "a", 0x0000, 0x01ff)))
	test.ExpectedSuccess(t, bus.AddDevice(mustRAM(t, "b", 0x0200, 0x03ff)))

	// write/read round-trip across both devices, including range edges
	for _, addr := range []uint16{0x0000, 0x01ff, 0x0200, 0x03ff} {
		test.ExpectedSuccess(t, bus.Write(addr, uint8(addr)))
	}
	for _, addr := range []uint16{0x0000, 0x01ff, 0x0200, 0x03ff} {
		v, err := bus.Read(addr)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, int(uint8(addr)))
	}
}

func TestBus_readRange(t *testing.T) {
	bus := memory.NewBus()
	test.ExpectedSuccess(t, bus.AddDevice(mustRAM(t, "a", 0x0100, 0x01ff)))

	test.ExpectedSuccess(t, bus.Write(0x0150, 0xa9))
	test.ExpectedSuccess(t, bus.Write(0x0151, 0x42))
	test.ExpectedSuccess(t, bus.Write(0x0152, 0xea))

	b, err := bus.ReadRange(0x0150, 0x0152)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(b), 3)
	test.Equate(t, b[0], 0xa9)
	test.Equate(t, b[1], 0x42)
	test.Equate(t, b[2], 0xea)

	// a range reaching past the device's top is clamped, not an error
	b, err = bus.ReadRange(0x01fe, 0x0201)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(b), 2)
}
