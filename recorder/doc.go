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

// Package recorder records and replays the activity on the peripheral's
// protocol lines. A recording, or transcript, captures the raw levels of
// the three lines on every tick of the processing clock, so a replay
// reproduces the original run bit-for-bit, including any jitter or
// malformed framing present in the source.
//
// Transcripts are the input to the RUN mode of the main binary and the
// unit of storage for the regression package.
package recorder
