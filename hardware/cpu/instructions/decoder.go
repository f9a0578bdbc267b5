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

package instructions

import (
	"fmt"

	"github.com/brokenbeam/nes6502/curated"
)

// Sentinal errors returned by the Decode() function.
const (
	IllegalOpcodeError        = "decoder: illegal opcode (%#02x)"
	TruncatedInstructionError = "decoder: truncated instruction (%s: %d of %d bytes)"
)

// the decoder works off a single copy of the instruction set.
var definitions = GetDefinitions()

// Instruction is the result of decoding a window of memory. It is ephemeral;
// the CPU builds one per fetch, executes it and discards it.
type Instruction struct {
	Defn *Definition

	// Operand is the decoded operand value. for one byte operands only the
	// low byte is significant. meaningless for implied and accumulator
	// addressing.
	Operand uint16
}

// Decode interprets the leading bytes of the window as an instruction. The
// opcode is the first byte in the window; for multi-byte instructions the
// operand follows in little-endian order. Surplus bytes in the window are
// ignored.
func Decode(window []uint8) (Instruction, error) {
	if len(window) == 0 {
		return Instruction{}, curated.Errorf(TruncatedInstructionError, "empty window", 0, 1)
	}

	defn := definitions[window[0]]
	if defn == nil {
		return Instruction{}, curated.Errorf(IllegalOpcodeError, window[0])
	}

	if len(window) < defn.Bytes {
		return Instruction{}, curated.Errorf(TruncatedInstructionError, defn.Operator, len(window), defn.Bytes)
	}

	ins := Instruction{Defn: defn}
	switch defn.Bytes {
	case 2:
		ins.Operand = uint16(window[1])
	case 3:
		ins.Operand = uint16(window[1]) | (uint16(window[2]) << 8)
	}

	return ins, nil
}

// String returns the disassembly of the instruction.
func (ins Instruction) String() string {
	if ins.Defn == nil {
		return "???"
	}

	operator := ins.Defn.Operator.String()

	switch ins.Defn.AddressingMode {
	case Implied:
		return operator
	case Accumulator:
		return fmt.Sprintf("%s A", operator)
	case Immediate:
		return fmt.Sprintf("%s #$%02x", operator, ins.Operand)
	case Relative:
		return fmt.Sprintf("%s $%02x", operator, ins.Operand)
	case Absolute:
		return fmt.Sprintf("%s $%04x", operator, ins.Operand)
	case ZeroPage:
		return fmt.Sprintf("%s $%02x", operator, ins.Operand)
	case Indirect:
		return fmt.Sprintf("%s ($%04x)", operator, ins.Operand)
	case IndexedIndirect:
		return fmt.Sprintf("%s ($%02x,X)", operator, ins.Operand)
	case IndirectIndexed:
		return fmt.Sprintf("%s ($%02x),Y", operator, ins.Operand)
	case AbsoluteIndexedX:
		return fmt.Sprintf("%s $%04x,X", operator, ins.Operand)
	case AbsoluteIndexedY:
		return fmt.Sprintf("%s $%04x,Y", operator, ins.Operand)
	case ZeroPageIndexedX:
		return fmt.Sprintf("%s $%02x,X", operator, ins.Operand)
	case ZeroPageIndexedY:
		return fmt.Sprintf("%s $%02x,Y", operator, ins.Operand)
	}

	return operator
}
