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

// Package digest provides a way of fingerprinting the observable output of
// the peripheral. The Registers type mixes every committed register-file
// state into a chained SHA-1 sum: two runs that produce the same sequence
// of register states produce the same hash. The regression package uses
// this to verify that a replayed transcript behaves as it did when it was
// recorded.
//
// Note that the use of SHA-1 is fine for this purpose; it is cheap and we
// are not doing anything cryptographic.
package digest

// Digest implementations provide a running hash of emulation output.
type Digest interface {
	// Hash returns the current value of the digest as a printable string
	Hash() string

	// ResetDigest resets the digest to its starting value
	ResetDigest()
}
