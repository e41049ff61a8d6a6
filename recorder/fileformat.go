// This file is part of Spindle.
//
// Spindle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Spindle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Spindle.  If not, see <https://www.gnu.org/licenses/>.

package recorder

// A transcript is a text file. Two header lines followed by any number of
// event lines:
//
//	# spindle trace
//	# v1.0
//	1, 0, 0, 10
//	0, 0, 0, 2
//	reset
//	...
//
// An event line gives the levels of the select, clock and data lines and
// the number of ticks those levels are held for. The special line "reset"
// asserts the peripheral's reset line.

const magic = "# spindle trace"
const version = "# v1.0"

// transcript header format.
const (
	lineMagic int = iota
	lineVersion
	numHeaderLines
)

// fields in a transcript event line.
const (
	fieldNCS int = iota
	fieldSCLK
	fieldSDI
	fieldHold
	numFields
)

const fieldSep = ", "

const resetLine = "reset"
