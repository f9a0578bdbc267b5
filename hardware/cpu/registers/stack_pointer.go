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

package registers

// the stack occupies a fixed page of the address space.
const stackOrigin = 0x0100

// StackPointer is an 8-bit register that addresses the fixed stack page
// [$0100-$01ff]. Incrementing past $ff or decrementing past $00 wraps within
// the page; the 6502 has no stack overflow detection and neither do we.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{
		Register: NewRegister(val, "SP"),
	}
}

// Address returns the full 16-bit address in the stack page that the stack
// pointer currently points to.
func (sp StackPointer) Address() uint16 {
	return stackOrigin | uint16(sp.value)
}
