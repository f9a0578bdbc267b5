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

	"github.com/brokenbeam/nes6502/curated"
)

// error patterns returned by NewMirroredRAM().
const (
	// MirrorSizeError is returned when the physical size is not a power of
	// two or does not fit inside the claimed address range.
	MirrorSizeError = "memory: bad physical size for mirrored ram (%d bytes over %d byte range)"
)

// MirroredRAM is a block of random access memory that is physically smaller
// than the address range it claims. The physical store repeats across the
// range: address bits above the physical size are simply ignored, so the same
// byte is visible at every mirror. Masking is applied to reads and writes
// alike, meaning that aliasing is symmetric.
type MirroredRAM struct {
	DeviceInfo
	memory []uint8

	// physical size is a power of two. mask is physical size minus one
	mask uint16
}

// NewMirroredRAM is the preferred method of initialisation for the
// MirroredRAM memory device. physSize is the size of the backing store in
// bytes and must be a power of two no larger than the claimed range.
func NewMirroredRAM(label string, origin uint16, memtop uint16, physSize uint32) (*MirroredRAM, error) {
	if origin > memtop {
		return nil, curated.Errorf(InvalidRangeError, origin, memtop)
	}

	span := uint32(memtop-origin) + 1
	if physSize == 0 || physSize > span || physSize&(physSize-1) != 0 {
		return nil, curated.Errorf(MirrorSizeError, physSize, span)
	}

	ram := &MirroredRAM{
		DeviceInfo: DeviceInfo{
			label:  label,
			origin: origin,
			memtop: memtop,
		},
		memory: make([]uint8, physSize),
		mask:   uint16(physSize - 1),
	}

	return ram, nil
}

func (ram *MirroredRAM) String() string {
	return fmt.Sprintf("%s [%#04x-%#04x] %d bytes mirrored", ram.label, ram.origin, ram.memtop, len(ram.memory))
}

// Read an 8-bit value from the RAM. The address is masked to the physical
// store.
func (ram *MirroredRAM) Read(address uint16) (uint8, error) {
	return ram.memory[(address-ram.origin)&ram.mask], nil
}

// ReadRange reads the inclusive range [begin, end], clamped to the top of the
// RAM's own address range. Each byte is read through the mirror mask.
func (ram *MirroredRAM) ReadRange(begin uint16, end uint16) ([]uint8, error) {
	end = ram.clamp(end)
	b := make([]uint8, uint32(end-begin)+1)
	for i := range b {
		b[i] = ram.memory[(begin+uint16(i)-ram.origin)&ram.mask]
	}
	return b, nil
}

// Write an 8-bit value to the RAM. The address is masked to the physical
// store, so the write is visible at every mirror of the address.
func (ram *MirroredRAM) Write(address uint16, data uint8) error {
	ram.memory[(address-ram.origin)&ram.mask] = data
	return nil
}
