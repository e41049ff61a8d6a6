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

// Package curated is a helper package for the plain Go language error type.
// Curated errors keep their format pattern after creation, meaning that
// errors can be compared with the Is() and Has() functions without
// resorting to string comparison of formatted messages.
//
// The Error() function normalises the message chain as it is printed,
// removing duplicate adjacent parts. For example, an error placed by the
// playback package inside an error raised by the same package:
//
//	playback: playback: unrecognised line
//
// prints as:
//
//	playback: unrecognised line
//
// For the purposes of this package a message chain is composed of parts
// separated by the sub-string ": " as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// There is no special provision for sentinel errors but they are
// achievable through the Is() and Has() functions. Sentinel patterns
// should be stored as a const string, suitably named and commented.
package curated
