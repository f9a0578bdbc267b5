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

// Package execution tracks the result of instruction execution. The Result
// type records what was executed and the register state immediately before
// execution, which is everything a trace or a debugger needs to show.
package execution

import (
	"fmt"

	"github.com/brokenbeam/nes6502/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// the decoded instruction
	Instruction instructions.Instruction

	// register state at the moment of fetch, before the instruction took
	// effect
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

// String returns a one line trace of the executed instruction, in the
// traditional 6502 log format.
//
//	C000  LDA #$01  A:00 X:00 Y:00 P:24 SP:fd
func (r Result) String() string {
	return fmt.Sprintf("%04X  %-11s A:%02x X:%02x Y:%02x P:%02x SP:%02x",
		r.Address, r.Instruction.String(), r.A, r.X, r.Y, r.Status, r.SP)
}
