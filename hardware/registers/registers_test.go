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

package registers_test

import (
	"testing"

	"github.com/tapeshift/spindle/hardware/registers"
	"github.com/tapeshift/spindle/test"
)

func TestCommit(t *testing.T) {
	fl := registers.NewFile()

	for reg := registers.Out0; reg < registers.NumRegisters; reg++ {
		test.Equate(t, fl.Value(reg), 0x00)
	}

	fl.Commit(0x02, 0x2a)
	test.Equate(t, fl.Value(registers.PulseEn0), 0x2a)

	// other registers are unaffected
	test.Equate(t, fl.Value(registers.Out0), 0x00)
	test.Equate(t, fl.Value(registers.Duty), 0x00)

	// writing to the same address replaces the value
	fl.Commit(0x02, 0xff)
	test.Equate(t, fl.Value(registers.PulseEn0), 0xff)
}

func TestUnmappedAddress(t *testing.T) {
	fl := registers.NewFile()

	fl.Commit(0x05, 0xff)
	fl.Commit(0x7f, 0xff)

	for reg := registers.Out0; reg < registers.NumRegisters; reg++ {
		test.Equate(t, fl.Value(reg), 0x00)
	}
}

type observation struct {
	reg  registers.Register
	data uint8
}

type mockObserver struct {
	writes []observation
}

func (obs *mockObserver) RegisterWrite(reg registers.Register, data uint8) {
	obs.writes = append(obs.writes, observation{reg: reg, data: data})
}

func TestObserver(t *testing.T) {
	fl := registers.NewFile()
	obs := &mockObserver{}
	fl.AttachObserver(obs)

	fl.Commit(0x04, 0x80)
	test.Equate(t, len(obs.writes), 1)
	test.Equate(t, obs.writes[0].reg == registers.Duty, true)
	test.Equate(t, obs.writes[0].data, 0x80)

	// unmapped addresses are not observable
	fl.Commit(0x10, 0x80)
	test.Equate(t, len(obs.writes), 1)
}

func TestFileReset(t *testing.T) {
	fl := registers.NewFile()

	fl.Commit(0x00, 0x01)
	fl.Commit(0x04, 0x80)
	fl.Reset()

	for reg := registers.Out0; reg < registers.NumRegisters; reg++ {
		test.Equate(t, fl.Value(reg), 0x00)
	}
}

func TestRegisterString(t *testing.T) {
	test.Equate(t, registers.Out0.String(), "OUT0")
	test.Equate(t, registers.Duty.String(), "DUTY")
	test.Equate(t, registers.Register(99).String(), "unmapped (0x63)")
}
