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

package digest_test

import (
	"testing"

	"github.com/tapeshift/spindle/digest"
	"github.com/tapeshift/spindle/hardware/registers"
	"github.com/tapeshift/spindle/test"
)

func TestDigestChaining(t *testing.T) {
	fl := registers.NewFile()
	dig := digest.NewRegisters(fl)

	starting := dig.Hash()
	test.Equate(t, dig.NumWrites(), 0)

	fl.Commit(0x00, 0x01)
	test.Equate(t, dig.NumWrites(), 1)
	test.Equate(t, dig.Hash() == starting, false)

	// the digest depends on the order of writes, not just the final state
	after := dig.Hash()
	fl.Commit(0x00, 0x01)
	test.Equate(t, dig.Hash() == after, false)
}

func TestDigestReproducible(t *testing.T) {
	run := func() string {
		fl := registers.NewFile()
		dig := digest.NewRegisters(fl)
		fl.Commit(0x00, 0x01)
		fl.Commit(0x04, 0x80)
		fl.Commit(0x02, 0x2a)
		return dig.Hash()
	}

	test.Equate(t, run(), run())
}

func TestDigestUnmappedWrites(t *testing.T) {
	fl := registers.NewFile()
	dig := digest.NewRegisters(fl)

	// writes to unmapped addresses never reach the observer
	fl.Commit(0x05, 0xff)
	test.Equate(t, dig.NumWrites(), 0)
}

func TestDigestReset(t *testing.T) {
	fl := registers.NewFile()
	dig := digest.NewRegisters(fl)

	starting := dig.Hash()
	fl.Commit(0x00, 0x01)

	dig.ResetDigest()
	test.Equate(t, dig.Hash(), starting)
	test.Equate(t, dig.NumWrites(), 0)
}
