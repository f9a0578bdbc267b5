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

// Package hardware assembles the components of the console: the address bus,
// the memory devices attached to it and the CPU that drives them.
package hardware

import (
	"fmt"
	"io"

	"github.com/brokenbeam/nes6502/hardware/cpu"
	"github.com/brokenbeam/nes6502/hardware/memory"
	"github.com/brokenbeam/nes6502/logger"
)

// the standard memory map. 2KB of internal RAM mirrored across the bottom
// 8KB of the address space; the remainder is flat RAM standing in for the
// cartridge and IO space of the real console.
const (
	internalRAMOrigin   = 0x0000
	internalRAMMemtop   = 0x1fff
	internalRAMPhysical = 2048

	workRAMOrigin = 0x2000
	workRAMMemtop = 0xffff
)

// Machine is the emulated console.
type Machine struct {
	Bus *memory.Bus
	MC  *cpu.CPU

	// instruction traces are written here when not nil. see SetTrace()
	trace io.Writer
}

// NewMachine creates the console with the standard memory map attached to
// the bus.
func NewMachine() (*Machine, error) {
	m := &Machine{
		Bus: memory.NewBus(),
	}

	iram, err := memory.NewMirroredRAM("internal RAM", internalRAMOrigin, internalRAMMemtop, internalRAMPhysical)
	if err != nil {
		return nil, err
	}
	if err := m.Bus.AddDevice(iram); err != nil {
		return nil, err
	}

	wram, err := memory.NewRAM("work RAM", workRAMOrigin, workRAMMemtop)
	if err != nil {
		return nil, err
	}
	if err := m.Bus.AddDevice(wram); err != nil {
		return nil, err
	}

	m.MC = cpu.NewCPU(m.Bus)

	logger.Logf("machine", "memory map\n%s", m.Bus)

	return m, nil
}

// Reset the machine. Memory contents are left alone; only the CPU state is
// affected.
func (m *Machine) Reset() {
	m.MC.Reset()
}

// SetTrace directs a one line trace of every executed instruction to w. A
// value of nil switches tracing off.
func (m *Machine) SetTrace(w io.Writer) {
	m.trace = w
}

// Step executes a single instruction.
func (m *Machine) Step() error {
	res, err := m.MC.Step()
	if err != nil {
		return err
	}

	if m.trace != nil {
		fmt.Fprintln(m.trace, res.String())
	}

	return nil
}

// Run the machine until an error occurs or limit instructions have been
// executed. A limit of zero means no limit. Returns the number of
// instructions executed.
func (m *Machine) Run(limit int) (int, error) {
	ct := 0
	for limit == 0 || ct < limit {
		if err := m.Step(); err != nil {
			return ct, err
		}
		ct++
	}
	return ct, nil
}
