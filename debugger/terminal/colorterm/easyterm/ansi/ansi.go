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

// Package ansi defines the ANSI escape sequences used by the colour
// terminal.
package ansi

// NormalRet returns the terminal to its normal state.
const NormalRet = "\033[0m"

// Pens alter the appearance of subsequent output.
const (
	PenBold   = "\033[1m"
	PenDim    = "\033[2m"
	PenRed    = "\033[31m"
	PenGreen  = "\033[32m"
	PenYellow = "\033[33m"
	PenCyan   = "\033[36m"
)
