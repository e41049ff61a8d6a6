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

package hardware_test

import (
	"testing"

	"github.com/tapeshift/spindle/hardware"
	"github.com/tapeshift/spindle/hardware/registers"
	"github.com/tapeshift/spindle/test"
)

// frame builds the 16 bit wire representation of a register write.
func frame(writeFlag bool, address uint8, data uint8) uint16 {
	f := uint16(address&0x7f)<<8 | uint16(data)
	if writeFlag {
		f |= 0x8000
	}
	return f
}

// sendBits performs a complete transaction: select line falls, the most
// significant numBits of f are clocked in, select line rises.
func sendBits(per *hardware.Peripheral, f uint16, numBits int) {
	per.Step(hardware.Lines{})
	for i := 0; i < numBits; i++ {
		bit := f&0x8000 == 0x8000
		per.Step(hardware.Lines{SDI: bit})
		per.Step(hardware.Lines{SCLK: true, SDI: bit})
		f <<= 1
	}
	per.Step(hardware.Lines{})
	per.Step(hardware.IdleLines())
}

func TestRegisterWrite(t *testing.T) {
	per := hardware.NewPeripheral()

	sendBits(per, frame(true, 0x02, 0x2a), 16)

	test.Equate(t, per.Registers.Value(registers.PulseEn0), 0x2a)
	test.Equate(t, per.Registers.Value(registers.Out0), 0x00)
	test.Equate(t, per.Registers.Value(registers.Out1), 0x00)
	test.Equate(t, per.Registers.Value(registers.PulseEn1), 0x00)
	test.Equate(t, per.Registers.Value(registers.Duty), 0x00)
}

func TestClearWriteFlag(t *testing.T) {
	per := hardware.NewPeripheral()

	sendBits(per, frame(false, 0x02, 0x2a), 16)

	for reg := registers.Out0; reg < registers.NumRegisters; reg++ {
		test.Equate(t, per.Registers.Value(reg), 0x00)
	}
}

func TestShortFrame(t *testing.T) {
	per := hardware.NewPeripheral()

	sendBits(per, frame(true, 0x02, 0x2a), 10)

	for reg := registers.Out0; reg < registers.NumRegisters; reg++ {
		test.Equate(t, per.Registers.Value(reg), 0x00)
	}
}

func TestUnmappedAddress(t *testing.T) {
	per := hardware.NewPeripheral()

	sendBits(per, frame(true, 0x7f, 0xff), 16)

	for reg := registers.Out0; reg < registers.NumRegisters; reg++ {
		test.Equate(t, per.Registers.Value(reg), 0x00)
	}
}

func TestResetDuringTransaction(t *testing.T) {
	per := hardware.NewPeripheral()

	// registers hold their values between transactions
	sendBits(per, frame(true, 0x00, 0x11), 16)
	test.Equate(t, per.Registers.Value(registers.Out0), 0x11)

	// begin a second transaction but assert reset before it completes
	per.Step(hardware.Lines{})
	f := frame(true, 0x01, 0x22)
	for i := 0; i < 12; i++ {
		bit := f&0x8000 == 0x8000
		per.Step(hardware.Lines{SDI: bit})
		per.Step(hardware.Lines{SCLK: true, SDI: bit})
		f <<= 1
	}
	per.Reset()

	// reset clears the registers and forgets the partial frame. the select
	// line returning to idle must not cause a dispatch
	per.Step(hardware.IdleLines())
	for reg := registers.Out0; reg < registers.NumRegisters; reg++ {
		test.Equate(t, per.Registers.Value(reg), 0x00)
	}

	// the peripheral accepts new transactions after reset
	sendBits(per, frame(true, 0x01, 0x22), 16)
	test.Equate(t, per.Registers.Value(registers.Out1), 0x22)
	test.Equate(t, per.Registers.Value(registers.Out0), 0x00)
}

func TestConsecutiveTransactions(t *testing.T) {
	per := hardware.NewPeripheral()

	sendBits(per, frame(true, 0x00, 0x01), 16)
	sendBits(per, frame(true, 0x01, 0x02), 16)
	sendBits(per, frame(true, 0x04, 0x80), 16)

	test.Equate(t, per.Registers.Value(registers.Out0), 0x01)
	test.Equate(t, per.Registers.Value(registers.Out1), 0x02)
	test.Equate(t, per.Registers.Value(registers.Duty), 0x80)
}

func TestSnapshot(t *testing.T) {
	per := hardware.NewPeripheral()

	sendBits(per, frame(true, 0x00, 0x11), 16)
	cp := per.Snapshot()

	// the snapshot has the same register values but evolves independently
	sendBits(per, frame(true, 0x00, 0x22), 16)
	test.Equate(t, per.Registers.Value(registers.Out0), 0x22)
	test.Equate(t, cp.Registers.Value(registers.Out0), 0x11)

	sendBits(cp, frame(true, 0x01, 0x33), 16)
	test.Equate(t, cp.Registers.Value(registers.Out1), 0x33)
	test.Equate(t, per.Registers.Value(registers.Out1), 0x00)
}
