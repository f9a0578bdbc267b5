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

// Package instructions defines the instruction set of the 6502 and the
// decoder that turns raw bytes into executable instructions.
//
// The instruction set is expressed as a fixed table of Definition values,
// one for each defined opcode; see GetDefinitions(). Decoding is a pure
// lookup in that table plus the gathering of the operand bytes: Decode()
// takes a short window of memory (opcode first) and returns an ephemeral
// Instruction value. The CPU creates one of these on every fetch and throws
// it away after execution.
//
// Only the 151 documented opcodes are defined. The undocumented opcodes are
// deliberately absent; decoding one of them is an error.
package instructions
