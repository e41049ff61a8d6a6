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

// Package regression records the expected behaviour of the peripheral for
// a library of line transcripts and checks that future versions of the
// emulation still behave the same way. An entry pairs a transcript with
// the register digest produced when the entry was added; REGRESS RUN
// replays the transcript against a fresh peripheral and compares digests.
//
// The database lives in the .spindle directory of the current working
// directory.
package regression
