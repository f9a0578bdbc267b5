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

// Package registers implements the registers of the 6502: the general
// purpose 8-bit Register type used for the accumulator and index registers;
// the 16-bit ProgramCounter; the StackPointer, which is an 8-bit register
// addressing the fixed stack page; and the StatusRegister, which keeps the
// processor flags as named booleans and converts to and from the packed
// status byte when the stack is involved.
//
// All arithmetic on these types wraps the way the silicon does. The Add()
// function reports carry and overflow out so that the CPU can derive the C
// and V flags without re-implementing two's-complement analysis at every
// call site.
package registers
