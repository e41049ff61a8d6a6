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

// Package hardware ties the sub-packages of the emulated peripheral
// together. The Peripheral type is the root of the emulation: callers
// present raw line levels to Step(), once per tick of the processing
// clock, and observe the results through the register file.
//
// The emulation is single-threaded and entirely synchronous. There are no
// timeouts: a controller that holds the select line low without ever
// completing a frame leaves the peripheral waiting forever, exactly as the
// hardware would. The only escapes are the reset line and a fresh
// transaction start.
package hardware
