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

package cpu

import (
	"fmt"

	"github.com/brokenbeam/nes6502/curated"
	"github.com/brokenbeam/nes6502/hardware/cpu/execution"
	"github.com/brokenbeam/nes6502/hardware/cpu/instructions"
	"github.com/brokenbeam/nes6502/hardware/cpu/registers"
	"github.com/brokenbeam/nes6502/hardware/memory"
)

// error patterns the CPU panics with. These conditions are invariant
// violations, not runtime conditions - if one of them fires the instruction
// table itself is wrong and there is nothing sensible to return to.
const (
	IllegalAddressingModeError    = "cpu: illegal addressing mode (%s for %s)"
	UnimplementedInstructionError = "cpu: unimplemented instruction (%s) at %#04x"
)

// CPU implements the 6502 found in the NES console.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem memory.CPUBus

	// LastResult records the most recently executed instruction. Useful for
	// tracing and debugging.
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem memory.CPUBus) *CPU {
	mc := &CPU{mem: mem}
	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewStackPointer(0)
	mc.Status = registers.NewStatusRegister()
	mc.Reset()
	return mc
}

// Reset the CPU to its power-on state. The program counter is not touched;
// use LoadPC() to set the entry point.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
}

// LoadPC sets the program counter to the address of the next instruction to
// be executed.
func (mc *CPU) LoadPC(addr uint16) {
	mc.PC.Load(addr)
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%s SR=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Step executes the instruction at the current program counter. It returns a
// record of what was executed; on error the record describes the failing
// fetch address.
//
// The program counter always advances by the executed instruction's byte
// length. Control transfer instructions compensate for that in advance, see
// redirectPC().
func (mc *CPU) Step() (execution.Result, error) {
	addr := mc.PC.Address()

	// fetch a window of up to three bytes. the opcode read must succeed;
	// trailing bytes that run off the edge of mapped memory just shorten the
	// window and the decoder decides whether anything is missing. address
	// arithmetic wraps at the top of the address space
	window := make([]uint8, 0, 3)
	for i := uint16(0); i < 3; i++ {
		v, err := mc.mem.Read(addr + i)
		if err != nil {
			if i == 0 {
				return execution.Result{Address: addr}, err
			}
			break
		}
		window = append(window, v)
	}

	ins, err := instructions.Decode(window)
	if err != nil {
		return execution.Result{Address: addr}, err
	}

	res := execution.Result{
		Address:     addr,
		Instruction: ins,
		A:           mc.A.Value(),
		X:           mc.X.Value(),
		Y:           mc.Y.Value(),
		SP:          mc.SP.Value(),
		Status:      mc.Status.Value(),
	}

	if err := mc.execute(ins); err != nil {
		return res, err
	}

	mc.PC.Add(uint16(ins.Defn.Bytes))
	mc.LastResult = res

	return res, nil
}

// redirectPC loads the program counter with the target address, compensated
// for the byte length of the executing instruction. Step() adds the length
// back after execute() returns so the net effect lands exactly on target.
//
// Every control transfer instruction goes through this helper; after it has
// run, the uniform post-execute advance is correct for every instruction.
func (mc *CPU) redirectPC(target uint16, ins instructions.Instruction) {
	mc.PC.Load(target - uint16(ins.Defn.Bytes))
}

// push a byte onto the stack. the stack pointer wraps within the stack page.
func (mc *CPU) push(val uint8) error {
	if err := mc.mem.Write(mc.SP.Address(), val); err != nil {
		return err
	}
	mc.SP.Add(0xff, false)
	return nil
}

// pop a byte from the stack.
func (mc *CPU) pop() (uint8, error) {
	mc.SP.Add(1, false)
	return mc.mem.Read(mc.SP.Address())
}

// push a 16-bit value onto the stack, high byte first.
func (mc *CPU) push16(val uint16) error {
	if err := mc.push(uint8(val >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(val))
}

// pop a 16-bit value from the stack, low byte first.
func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.pop()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pop()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// effectiveAddress resolves the instruction's addressing mode to a bus
// address. Modes that do not name a bus address (implied, accumulator,
// immediate, relative) are invariant violations here and panic.
func (mc *CPU) effectiveAddress(ins instructions.Instruction) (uint16, error) {
	switch ins.Defn.AddressingMode {
	case instructions.ZeroPage:
		return ins.Operand & 0x00ff, nil

	case instructions.ZeroPageIndexedX:
		// index addition wraps within the zero page
		return uint16(uint8(ins.Operand) + mc.X.Value()), nil

	case instructions.ZeroPageIndexedY:
		return uint16(uint8(ins.Operand) + mc.Y.Value()), nil

	case instructions.Absolute:
		return ins.Operand, nil

	case instructions.AbsoluteIndexedX:
		return ins.Operand + mc.X.Address(), nil

	case instructions.AbsoluteIndexedY:
		return ins.Operand + mc.Y.Address(), nil

	case instructions.Indirect:
		lo, err := mc.mem.Read(ins.Operand)
		if err != nil {
			return 0, err
		}
		hi, err := mc.mem.Read(ins.Operand + 1)
		if err != nil {
			return 0, err
		}
		return (uint16(hi) << 8) | uint16(lo), nil

	case instructions.IndexedIndirect:
		// the pointer lives in the zero page and both of its bytes wrap
		// within it
		ptr := uint8(ins.Operand) + mc.X.Value()
		lo, err := mc.mem.Read(uint16(ptr))
		if err != nil {
			return 0, err
		}
		hi, err := mc.mem.Read(uint16(ptr + 1))
		if err != nil {
			return 0, err
		}
		return (uint16(hi) << 8) | uint16(lo), nil

	case instructions.IndirectIndexed:
		ptr := uint8(ins.Operand)
		lo, err := mc.mem.Read(uint16(ptr))
		if err != nil {
			return 0, err
		}
		hi, err := mc.mem.Read(uint16(ptr + 1))
		if err != nil {
			return 0, err
		}
		return ((uint16(hi) << 8) | uint16(lo)) + mc.Y.Address(), nil
	}

	panic(curated.Errorf(IllegalAddressingModeError, ins.Defn.AddressingMode, ins.Defn.Operator))
}

// resolveOperand returns the effective 8-bit value of the instruction's
// operand.
func (mc *CPU) resolveOperand(ins instructions.Instruction) (uint8, error) {
	switch ins.Defn.AddressingMode {
	case instructions.Accumulator:
		return mc.A.Value(), nil
	case instructions.Immediate:
		return uint8(ins.Operand), nil
	}

	addr, err := mc.effectiveAddress(ins)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(addr)
}

// setNZ updates the sign and zero flags from the register.
func (mc *CPU) setNZ(r registers.Register) {
	mc.Status.Sign = r.IsNegative()
	mc.Status.Zero = r.IsZero()
}

// branch redirects the program counter when taken is true. The operand is a
// signed offset relative to the address of the next instruction.
func (mc *CPU) branch(ins instructions.Instruction, taken bool) {
	if !taken {
		return
	}
	offset := uint16(int16(int8(uint8(ins.Operand))))
	target := mc.PC.Address() + uint16(ins.Defn.Bytes) + offset
	mc.redirectPC(target, ins)
}

// execute the instruction. mutates registers, flags and - through the bus -
// memory. the program counter is only changed here by the control transfer
// instructions, and always through redirectPC().
func (mc *CPU) execute(ins instructions.Instruction) error {
	switch ins.Defn.Operator {
	// load instructions
	case instructions.Lda:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.setNZ(mc.A)

	case instructions.Ldx:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		mc.X.Load(v)
		mc.setNZ(mc.X)

	case instructions.Ldy:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		mc.Y.Load(v)
		mc.setNZ(mc.Y)

	// store instructions. effectiveAddress() panics for the addressing
	// modes that make no sense for a store
	case instructions.Sta:
		addr, err := mc.effectiveAddress(ins)
		if err != nil {
			return err
		}
		return mc.mem.Write(addr, mc.A.Value())

	case instructions.Stx:
		addr, err := mc.effectiveAddress(ins)
		if err != nil {
			return err
		}
		return mc.mem.Write(addr, mc.X.Value())

	case instructions.Sty:
		addr, err := mc.effectiveAddress(ins)
		if err != nil {
			return err
		}
		return mc.mem.Write(addr, mc.Y.Value())

	// arithmetic
	case instructions.Adc:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
		mc.setNZ(mc.A)

	case instructions.Sbc:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
		mc.setNZ(mc.A)

	// logical
	case instructions.And:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		mc.A.AND(v)
		mc.setNZ(mc.A)

	case instructions.Ora:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		mc.A.ORA(v)
		mc.setNZ(mc.A)

	case instructions.Eor:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		mc.A.EOR(v)
		mc.setNZ(mc.A)

	case instructions.Bit:
		v, err := mc.resolveOperand(ins)
		if err != nil {
			return err
		}
		r := registers.NewRegister(v, "bit")
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()

	// shifts and rotates. operate on the accumulator or read-modify-write
	// on a bus address, selected by the addressing mode
	case instructions.Asl:
		if ins.Defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ASL()
			mc.setNZ(mc.A)
			break
		}
		return mc.modify(ins, func(r *registers.Register) {
			mc.Status.Carry = r.ASL()
		})

	case instructions.Lsr:
		if ins.Defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.LSR()
			mc.setNZ(mc.A)
			break
		}
		return mc.modify(ins, func(r *registers.Register) {
			mc.Status.Carry = r.LSR()
		})

	case instructions.Rol:
		if ins.Defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
			mc.setNZ(mc.A)
			break
		}
		return mc.modify(ins, func(r *registers.Register) {
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		})

	case instructions.Ror:
		if ins.Defn.AddressingMode == instructions.Accumulator {
			mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
			mc.setNZ(mc.A)
			break
		}
		return mc.modify(ins, func(r *registers.Register) {
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		})

	// compare instructions
	case instructions.Cmp:
		return mc.compare(ins, mc.A)

	case instructions.Cpx:
		return mc.compare(ins, mc.X)

	case instructions.Cpy:
		return mc.compare(ins, mc.Y)

	// increment and decrement
	case instructions.Inc:
		return mc.modify(ins, func(r *registers.Register) {
			r.Add(1, false)
		})

	case instructions.Dec:
		return mc.modify(ins, func(r *registers.Register) {
			r.Subtract(1, true)
		})

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setNZ(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setNZ(mc.Y)

	case instructions.Dex:
		mc.X.Subtract(1, true)
		mc.setNZ(mc.X)

	case instructions.Dey:
		mc.Y.Subtract(1, true)
		mc.setNZ(mc.Y)

	// branches
	case instructions.Bcc:
		mc.branch(ins, !mc.Status.Carry)
	case instructions.Bcs:
		mc.branch(ins, mc.Status.Carry)
	case instructions.Beq:
		mc.branch(ins, mc.Status.Zero)
	case instructions.Bne:
		mc.branch(ins, !mc.Status.Zero)
	case instructions.Bmi:
		mc.branch(ins, mc.Status.Sign)
	case instructions.Bpl:
		mc.branch(ins, !mc.Status.Sign)
	case instructions.Bvc:
		mc.branch(ins, !mc.Status.Overflow)
	case instructions.Bvs:
		mc.branch(ins, mc.Status.Overflow)

	// jumps, subroutines and returns
	case instructions.Jmp:
		target, err := mc.effectiveAddress(ins)
		if err != nil {
			return err
		}
		mc.redirectPC(target, ins)

	case instructions.Jsr:
		// the return address on the stack is one less than the address of
		// the next instruction; RTS adds the one back
		if err := mc.push16(mc.PC.Address() + 2); err != nil {
			return err
		}
		target, err := mc.effectiveAddress(ins)
		if err != nil {
			return err
		}
		mc.redirectPC(target, ins)

	case instructions.Rts:
		ret, err := mc.pop16()
		if err != nil {
			return err
		}
		mc.redirectPC(ret+1, ins)

	case instructions.Rti:
		status, err := mc.pop()
		if err != nil {
			return err
		}
		mc.Status.FromValue(status)
		ret, err := mc.pop16()
		if err != nil {
			return err
		}
		mc.redirectPC(ret, ins)

	// stack instructions
	case instructions.Pha:
		return mc.push(mc.A.Value())

	case instructions.Php:
		return mc.push(mc.Status.Value())

	case instructions.Pla:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.setNZ(mc.A)

	case instructions.Plp:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		mc.Status.FromValue(v)

	// flag instructions
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Clv:
		mc.Status.Overflow = false

	// register transfers
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X)
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y)
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A)
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A)
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X)
	case instructions.Txs:
		// TXS is the one transfer that does not affect the flags
		mc.SP.Load(mc.X.Value())

	case instructions.Nop:
		// does nothing, slowly

	case instructions.Brk:
		// interrupts are not emulated
		panic(curated.Errorf(UnimplementedInstructionError, ins.Defn.Operator, mc.PC.Address()))

	default:
		panic(curated.Errorf(UnimplementedInstructionError, ins.Defn.Operator, mc.PC.Address()))
	}

	return nil
}

// compare subtracts the operand from the register without storing the result,
// updating the carry, zero and sign flags.
func (mc *CPU) compare(ins instructions.Instruction, reg registers.Register) error {
	v, err := mc.resolveOperand(ins)
	if err != nil {
		return err
	}

	// subtracting with carry set means "no borrow in"
	r := registers.NewRegister(reg.Value(), "cmp")
	carry, _ := r.Subtract(v, true)
	mc.Status.Carry = carry
	mc.setNZ(r)

	return nil
}

// modify performs a read-modify-write cycle on the operand's effective
// address, updating the sign and zero flags from the written value.
func (mc *CPU) modify(ins instructions.Instruction, f func(*registers.Register)) error {
	addr, err := mc.effectiveAddress(ins)
	if err != nil {
		return err
	}

	v, err := mc.mem.Read(addr)
	if err != nil {
		return err
	}

	r := registers.NewRegister(v, "rmw")
	f(&r)
	mc.setNZ(r)

	return mc.mem.Write(addr, r.Value())
}
