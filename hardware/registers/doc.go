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

// Package registers implements the peripheral's register file and the
// decoder that guards it. Five byte registers occupy addresses 0x00 to
// 0x04. Writes to any other address in the 7-bit address space select
// nothing and are dropped silently.
//
// The registers are consumed by a pulse generator that is external to this
// project. Reading the file is the business of that consumer; the only
// guarantee made here is that a read observes the last fully committed
// value.
package registers
