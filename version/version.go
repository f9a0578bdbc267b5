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

// Package version records the version number of the project.
package version

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "nes6502"

// number is set through the linker by the makefile. an empty string means
// the project was built directly with the go command.
var number string

// Version returns the version string for the project.
func Version() string {
	if number == "" {
		return "unreleased"
	}
	return number
}
