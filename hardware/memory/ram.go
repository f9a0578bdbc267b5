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

package memory

import (
	"fmt"
	"strings"

	"github.com/brokenbeam/nes6502/curated"
)

// RAM is a flat block of random access memory. The backing store is exactly
// as large as the claimed address range.
type RAM struct {
	DeviceInfo
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory device.
func NewRAM(label string, origin uint16, memtop uint16) (*RAM, error) {
	if origin > memtop {
		return nil, curated.Errorf(InvalidRangeError, origin, memtop)
	}

	ram := &RAM{
		DeviceInfo: DeviceInfo{
			label:  label,
			origin: origin,
			memtop: memtop,
		},
	}

	// allocate the minimal amount of memory. the span is computed in uint32
	// because a device covering the full 16-bit address space would overflow
	// uint16 arithmetic
	ram.memory = make([]uint8, uint32(memtop-origin)+1)

	return ram, nil
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%#04x-%#04x] %d bytes", ram.label, ram.origin, ram.memtop, len(ram.memory)))
	return s.String()
}

// Read an 8-bit value from the RAM.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address-ram.origin], nil
}

// ReadRange reads the inclusive range [begin, end], clamped to the top of the
// RAM's own address range.
func (ram *RAM) ReadRange(begin uint16, end uint16) ([]uint8, error) {
	end = ram.clamp(end)
	b := make([]uint8, uint32(end-begin)+1)
	copy(b, ram.memory[begin-ram.origin:])
	return b, nil
}

// Write an 8-bit value to the RAM.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address-ram.origin] = data
	return nil
}
