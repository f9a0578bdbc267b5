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

// Package cpu implements the 6502 instruction interpreter. The CPU owns its
// register file and drives the address bus it was created with; one call to
// Step() fetches, decodes and executes exactly one instruction.
//
// Timing is instruction-level. There is no cycle counting and there are no
// interrupts; executing BRK is fatal.
//
// Errors returned by Step() are recoverable in the sense that the CPU is left
// in a consistent state and the caller can decide whether to carry on. A
// mismatch between an instruction and its addressing mode on the other hand
// means the instruction table itself is broken, so execution panics rather
// than limping on.
package cpu
