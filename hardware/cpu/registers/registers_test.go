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

package registers_test

import (
	"testing"

	"github.com/brokenbeam/nes6502/hardware/cpu/registers"
	"github.com/brokenbeam/nes6502/test"
)

func TestRegister_addCarry(t *testing.T) {
	r := registers.NewRegister(0xff, "A")

	carry, overflow := r.Add(0x01, false)
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// signed overflow without unsigned carry
	r.Load(0x50)
	carry, overflow = r.Add(0x50, false)
	test.Equate(t, r.Value(), 0xa0)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)

	// carry-in contributes to the sum
	r.Load(0x00)
	carry, _ = r.Add(0xff, true)
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)
}

func TestRegister_subtract(t *testing.T) {
	// carry set means no borrow
	r := registers.NewRegister(0x50, "A")
	carry, overflow := r.Subtract(0xb0, true)
	test.Equate(t, r.Value(), 0xa0)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)

	r.Load(0x05)
	carry, overflow = r.Subtract(0x03, true)
	test.Equate(t, r.Value(), 0x02)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
}

func TestRegister_shiftsAndRotates(t *testing.T) {
	r := registers.NewRegister(0x81, "A")

	carry := r.ASL()
	test.Equate(t, r.Value(), 0x02)
	test.Equate(t, carry, true)

	r.Load(0x01)
	carry = r.LSR()
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)

	// ROL shifts the old carry into bit 0
	r.Load(0x80)
	carry = r.ROL(true)
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, carry, true)

	// ROR shifts the old carry into bit 7
	r.Load(0x01)
	carry = r.ROR(true)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, carry, true)
}

func TestProgramCounter_wrap(t *testing.T) {
	pc := registers.NewProgramCounter(0xffff)
	pc.Add(0x0002)
	test.Equate(t, pc.Address(), 0x0001)

	// a negative relative offset is a large uint16. addition wraps back
	pc.Load(0x0602)
	pc.Add(0xfffe)
	test.Equate(t, pc.Address(), 0x0600)
}

func TestStackPointer_page(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.Equate(t, sp.Address(), 0x01fd)

	// decrementing past $00 wraps within the stack page
	sp.Load(0x00)
	sp.Add(0xff, false)
	test.Equate(t, sp.Address(), 0x01ff)
}

func TestStatusRegister_roundTrip(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.Sign = true
	sr.Carry = true
	sr.InterruptDisable = true

	v := sr.Value()
	test.Equate(t, v, 0x85)

	sr2 := registers.NewStatusRegister()
	sr2.FromValue(v)
	test.Equate(t, sr2.String(), sr.String())
	test.Equate(t, sr2.String(), "Sv--dIzC")
}
