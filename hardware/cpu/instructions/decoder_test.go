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

package instructions_test

import (
	"testing"

	"github.com/brokenbeam/nes6502/curated"
	"github.com/brokenbeam/nes6502/hardware/cpu/instructions"
	"github.com/brokenbeam/nes6502/test"
)

func TestTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.Equate(t, len(defs), 256)

	// every defined entry agrees with its own index and carries a sane
	// byte count
	n := 0
	for opcode, defn := range defs {
		if defn == nil {
			continue
		}
		n++
		test.Equate(t, int(defn.OpCode), opcode)
		if defn.Bytes < 1 || defn.Bytes > 3 {
			t.Errorf("opcode %02x has byte count of %d", opcode, defn.Bytes)
		}
	}

	// the documented 6502 instruction set
	test.Equate(t, n, 151)
}

func TestDecode(t *testing.T) {
	// LDA #$44
	ins, err := instructions.Decode([]uint8{0xa9, 0x44})
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operator.String(), "LDA")
	test.Equate(t, ins.Defn.AddressingMode == instructions.Immediate, true)
	test.Equate(t, ins.Operand, 0x44)

	// operands are little-endian: JMP $1234 is 4c 34 12
	ins, err = instructions.Decode([]uint8{0x4c, 0x34, 0x12})
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operator.String(), "JMP")
	test.Equate(t, ins.Operand, 0x1234)

	// single byte instructions
	ins, err = instructions.Decode([]uint8{0xea})
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Bytes, 1)
	test.Equate(t, ins.Operand, 0)
}

func TestDecode_surplusBytesIgnored(t *testing.T) {
	// the window may be longer than the instruction
	ins, err := instructions.Decode([]uint8{0xe8, 0xff, 0xff})
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operator.String(), "INX")
	test.Equate(t, ins.Operand, 0)
}

func TestDecode_illegalOpcode(t *testing.T) {
	_, err := instructions.Decode([]uint8{0x02})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, instructions.IllegalOpcodeError), true)

	// a truncated window still reports the illegal opcode first
	_, err = instructions.Decode([]uint8{0xff})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, instructions.IllegalOpcodeError), true)
}

func TestDecode_truncated(t *testing.T) {
	_, err := instructions.Decode([]uint8{})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, instructions.TruncatedInstructionError), true)

	// LDA immediate with no operand byte
	_, err = instructions.Decode([]uint8{0xa9})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, instructions.TruncatedInstructionError), true)

	// JMP absolute with only one of its two operand bytes
	_, err = instructions.Decode([]uint8{0x4c, 0x34})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, instructions.TruncatedInstructionError), true)
}

func TestInstruction_disassembly(t *testing.T) {
	disasm := func(window ...uint8) string {
		ins, err := instructions.Decode(window)
		test.ExpectedSuccess(t, err)
		return ins.String()
	}

	test.Equate(t, disasm(0xa9, 0x44), "LDA #$44")
	test.Equate(t, disasm(0xa5, 0x44), "LDA $44")
	test.Equate(t, disasm(0xb5, 0x44), "LDA $44,X")
	test.Equate(t, disasm(0xad, 0x00, 0x44), "LDA $4400")
	test.Equate(t, disasm(0xbd, 0x00, 0x44), "LDA $4400,X")
	test.Equate(t, disasm(0xb9, 0x00, 0x44), "LDA $4400,Y")
	test.Equate(t, disasm(0xa1, 0x20), "LDA ($20,X)")
	test.Equate(t, disasm(0xb1, 0x20), "LDA ($20),Y")
	test.Equate(t, disasm(0x6c, 0x97, 0x55), "JMP ($5597)")
	test.Equate(t, disasm(0xb6, 0x44), "LDX $44,Y")
	test.Equate(t, disasm(0x0a), "ASL A")
	test.Equate(t, disasm(0xd0, 0xfe), "BNE $fe")
	test.Equate(t, disasm(0xea), "NOP")
}
