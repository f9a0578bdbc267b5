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

// Package cartridgeloader is responsible for getting program images from disk
// into the memory attached to the bus. Two formats are understood:
//
// Raw binaries (including iNES files, whose 16 byte header is skipped) are
// copied byte for byte to a fixed origin address, mirroring the PRG-ROM
// mapping convention of the console.
//
// Text hexdumps in the easy6502 style, one line per run of bytes:
//
//	0600: a9 01 8d 00 02
//
// are written through the bus at the address each line names.
//
// In both cases the loader is glue; every byte travels through the normal
// bus write path.
package cartridgeloader

import (
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/brokenbeam/nes6502/curated"
	"github.com/brokenbeam/nes6502/hardware/memory"
	"github.com/brokenbeam/nes6502/logger"
)

// DefaultOrigin is where raw binary images are copied to unless the Loader
// says otherwise.
const DefaultOrigin = 0xc000

// magic bytes at the start of an iNES file.
const inesMagic = "NES\x1a"
const inesHeaderLen = 16

// Loader describes a program image and how it should be placed into memory.
type Loader struct {
	// filename of the program image to load
	Filename string

	// one of "AUTO", "RAW" or "HEX". "AUTO" selects on file extension
	Format string

	// where raw binary data is copied to. ignored by the hexdump format,
	// which carries its own addresses
	Origin uint16
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// An empty or "AUTO" format argument selects the format from the file
// extension: ".hex" and ".txt" files load as hexdumps, everything else as a
// raw binary.
func NewLoader(filename string, format string) Loader {
	cl := Loader{
		Filename: filename,
		Format:   "RAW",
		Origin:   DefaultOrigin,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	switch format {
	case "", "AUTO":
		ext := strings.ToUpper(path.Ext(filename))
		if ext == ".HEX" || ext == ".TXT" {
			cl.Format = "HEX"
		}
	default:
		cl.Format = format
	}

	return cl
}

// Load the program image into the memory behind bus. Returns the address of
// the first loaded byte, which is the conventional entry point.
func (cl Loader) Load(bus memory.CPUBus) (uint16, error) {
	data, err := os.ReadFile(cl.Filename)
	if err != nil {
		return 0, curated.Errorf("loader: %v", err)
	}

	switch cl.Format {
	case "RAW":
		return cl.loadRaw(bus, data)
	case "HEX":
		return cl.loadHex(bus, string(data))
	}

	return 0, curated.Errorf("loader: %v", "unsupported format ("+cl.Format+")")
}

func (cl Loader) loadRaw(bus memory.CPUBus, data []byte) (uint16, error) {
	if len(data) >= inesHeaderLen && string(data[:len(inesMagic)]) == inesMagic {
		logger.Logf("loader", "iNES header found in %s; skipping %d bytes", cl.Filename, inesHeaderLen)
		data = data[inesHeaderLen:]
	}

	if len(data) > 0x10000-int(cl.Origin) {
		return 0, curated.Errorf("loader: %v", "program image too large for address space")
	}

	for i, v := range data {
		if err := bus.Write(cl.Origin+uint16(i), v); err != nil {
			return 0, err
		}
	}

	logger.Logf("loader", "%d bytes copied to %#04x", len(data), cl.Origin)

	return cl.Origin, nil
}

func (cl Loader) loadHex(bus memory.CPUBus, data string) (uint16, error) {
	var entry uint16
	var entrySet bool

	for _, line := range strings.Split(data, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		addr, err := strconv.ParseUint(strings.TrimSuffix(fields[0], ":"), 16, 16)
		if err != nil {
			return 0, curated.Errorf("loader: %v", err)
		}

		for i, f := range fields[1:] {
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				return 0, curated.Errorf("loader: %v", err)
			}
			if err := bus.Write(uint16(addr)+uint16(i), uint8(v)); err != nil {
				return 0, err
			}
		}

		if !entrySet {
			entry = uint16(addr)
			entrySet = true
		}
	}

	if !entrySet {
		return 0, curated.Errorf("loader: %v", "no data in hexdump")
	}

	return entry, nil
}
