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

// Package memory implements the address bus of the emulated machine and the
// memory devices that hang off it.
//
// The Bus type routes byte reads and writes over a 16-bit address space to
// whichever Device claims the address. Devices are added once, during machine
// setup, and the bus guarantees at AddDevice() time that no two devices claim
// overlapping address ranges. An address that no device claims is an error at
// access time, not at setup time; sparse maps are legitimate.
//
// Two device implementations are provided. RAM is a flat allocation covering
// its address range exactly. MirroredRAM allocates a smaller power-of-two
// sized physical store and repeats it across the full range by masking the
// address; this is how the 2KB of console RAM appears sixteen times over in
// the first 8KB of the address space.
package memory
