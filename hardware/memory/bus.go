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

// error patterns returned by the Bus type.
const (
	// OverlapError is returned by AddDevice() when the new device's address
	// range intersects a range already claimed by another device.
	OverlapError = "bus: address range %s overlaps with %s"

	// UnmappedAddressError is returned by Read(), ReadRange() and Write()
	// when no device claims the address.
	UnmappedAddressError = "bus: unmapped address (%#04x)"
)

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The Bus type implements this interface and maps the read/write address
// to the correct device - meaning that CPU access need not care which part of
// memory it is reading or writing.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	ReadRange(begin uint16, end uint16) ([]uint8, error)
	Write(address uint16, data uint8) error
}

// Bus is the address bus of the machine. It owns an ordered collection of
// devices and routes accesses to the device claiming the address.
//
// Because device ranges are disjoint, "first device whose range contains the
// address" is the same as "the unique device for the address".
type Bus struct {
	devices []Device
}

// NewBus is the preferred method of initialisation for the Bus type. The bus
// is created empty; use AddDevice() to populate it.
func NewBus() *Bus {
	return &Bus{
		devices: make([]Device, 0),
	}
}

// AddDevice attaches a device to the bus. The device's address range must not
// intersect the range of any device already attached; on failure the bus is
// left unchanged.
func (bus *Bus) AddDevice(dev Device) error {
	for _, d := range bus.devices {
		if d.Origin() <= dev.Memtop() && dev.Origin() <= d.Memtop() {
			return curated.Errorf(OverlapError,
				fmt.Sprintf("[%#04x-%#04x]", dev.Origin(), dev.Memtop()),
				fmt.Sprintf("[%#04x-%#04x] (%s)", d.Origin(), d.Memtop(), d.Label()),
			)
		}
	}

	bus.devices = append(bus.devices, dev)

	return nil
}

// mappedDevice returns the device claiming the address.
func (bus *Bus) mappedDevice(address uint16) (Device, error) {
	for _, d := range bus.devices {
		if address >= d.Origin() && address <= d.Memtop() {
			return d, nil
		}
	}
	return nil, curated.Errorf(UnmappedAddressError, address)
}

// Read a byte from the device mapped at address.
func (bus *Bus) Read(address uint16) (uint8, error) {
	d, err := bus.mappedDevice(address)
	if err != nil {
		return 0, err
	}
	return d.Read(address)
}

// ReadRange reads the bytes in the inclusive range [begin, end]. The device
// is resolved with the begin address and the read never strays outside that
// device; a range reaching past the device's top is clamped. The debugger's
// memory view is the main user of this function - instruction fetch reads
// byte-by-byte because its window can cross a device boundary.
func (bus *Bus) ReadRange(begin uint16, end uint16) ([]uint8, error) {
	d, err := bus.mappedDevice(begin)
	if err != nil {
		return nil, err
	}
	return d.ReadRange(begin, end)
}

// Write a byte to the device mapped at address.
func (bus *Bus) Write(address uint16, data uint8) error {
	d, err := bus.mappedDevice(address)
	if err != nil {
		return err
	}
	return d.Write(address, data)
}

// String returns the memory map of the bus as a string, one device per line.
func (bus *Bus) String() string {
	s := strings.Builder{}
	for _, d := range bus.devices {
		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", d.Origin(), d.Memtop(), d.Label()))
	}
	return strings.TrimRight(s.String(), "\n")
}
