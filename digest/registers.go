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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/tapeshift/spindle/hardware/registers"
)

// Registers is a register-file observer that fingerprints the sequence of
// committed register states. It implements the registers.Observer and
// digest.Digest interfaces.
type Registers struct {
	file   *registers.File
	digest [sha1.Size]byte

	// buffer contains the previous digest value followed by a snapshot of
	// the register file. rehashed on every commit, chaining the
	// fingerprints together
	buffer []byte

	writes int
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The digest attaches itself to the supplied register file.
func NewRegisters(file *registers.File) *Registers {
	dig := &Registers{
		file:   file,
		buffer: make([]byte, sha1.Size+int(registers.NumRegisters)),
	}
	file.AttachObserver(dig)
	return dig
}

// Hash implements the digest.Digest interface.
func (dig *Registers) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Registers) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.writes = 0
}

// NumWrites returns the number of register writes mixed into the digest
// since the last reset.
func (dig *Registers) NumWrites() int {
	return dig.writes
}

// RegisterWrite implements the registers.Observer interface.
func (dig *Registers) RegisterWrite(_ registers.Register, _ uint8) {
	copy(dig.buffer, dig.digest[:])
	for i := registers.Out0; i < registers.NumRegisters; i++ {
		dig.buffer[sha1.Size+int(i)] = dig.file.Value(i)
	}
	dig.digest = sha1.Sum(dig.buffer)
	dig.writes++
}
