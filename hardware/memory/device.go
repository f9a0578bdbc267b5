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

// error pattern returned by device constructors.
const (
	// InvalidRangeError is returned when a device is given an address range
	// whose origin is above its memtop.
	InvalidRangeError = "memory: invalid address range (origin %#04x above memtop %#04x)"
)

// Device defines the operations the bus requires of every memory device: the
// address range it claims and byte/range access within that range. Devices
// are exclusively owned by the bus; no device is ever notified of another
// device's activity.
type Device interface {
	Label() string
	Origin() uint16
	Memtop() uint16
	Read(address uint16) (uint8, error)
	ReadRange(begin uint16, end uint16) ([]uint8, error)
	Write(address uint16, data uint8) error
}

// DeviceInfo provides the basic info needed to define a memory device. All
// devices in this package embed DeviceInfo alongside their implementation of
// the Device interface.
type DeviceInfo struct {
	label  string
	origin uint16
	memtop uint16
}

// Label returns the canonical name for the device.
func (inf DeviceInfo) Label() string {
	return inf.label
}

// Origin is the address of the first byte of the device's range.
func (inf DeviceInfo) Origin() uint16 {
	return inf.origin
}

// Memtop is the address of the last byte of the device's range. The range is
// inclusive at both ends.
func (inf DeviceInfo) Memtop() uint16 {
	return inf.memtop
}

// clamp limits a range-end address to the device's memtop.
func (inf DeviceInfo) clamp(end uint16) uint16 {
	if end > inf.memtop {
		return inf.memtop
	}
	return end
}
