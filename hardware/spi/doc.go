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

// Package spi decodes the write-only serial protocol accepted by the
// peripheral. The protocol is carried on three lines: an active-low select
// line, a serial clock and a serial data line.
//
// A transaction begins when the select line falls and ends when it rises.
// Between those two events exactly sixteen bits are clocked in on serial
// clock rising edges, most significant bit first:
//
//	bit 15     write flag (frame has no effect unless set)
//	bits 14-8  register address
//	bits 7-0   data
//
// There is no return path. Malformed frames, short frames and frames
// addressing nothing are absorbed silently; the controller is responsible
// for its own framing.
//
// The three lines are asynchronous relative to the clock that drives
// Step(). Each is sampled into a two-entry history (the Trace type) and
// every edge decision is made from that history. This mirrors the
// synchronising flip-flop pair in the hardware this package models and it
// must not be simplified to a direct level comparison: frame boundaries
// depend on the one-tick delay the history introduces.
package spi
