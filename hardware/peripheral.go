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

package hardware

import (
	"fmt"

	"github.com/tapeshift/spindle/hardware/registers"
	"github.com/tapeshift/spindle/hardware/spi"
	"github.com/tapeshift/spindle/logger"
)

// Lines represents the raw levels on the three protocol lines for one tick
// of the processing clock. The zero value is not the idle state; use
// IdleLines() for that.
type Lines struct {
	NCS  bool
	SCLK bool
	SDI  bool
}

// IdleLines returns the lines at their idle levels: select high, clock and
// data low.
func IdleLines() Lines {
	return Lines{NCS: true}
}

func (ln Lines) String() string {
	b := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	return fmt.Sprintf("ncs=%d sclk=%d sdi=%d", b(ln.NCS), b(ln.SCLK), b(ln.SDI))
}

// Peripheral is the main container for the emulated components of the
// register peripheral: the SPI decode core and the register file it
// programs.
type Peripheral struct {
	SPI       *spi.SPI
	Registers *registers.File
}

// NewPeripheral creates a new Peripheral and everything associated with
// the hardware.
func NewPeripheral() *Peripheral {
	per := &Peripheral{}
	per.Registers = registers.NewFile()
	per.SPI = spi.NewSPI(per.Registers)
	return per
}

// Snapshot the entire peripheral.
func (per *Peripheral) Snapshot() *Peripheral {
	cp := &Peripheral{
		SPI:       per.SPI.Snapshot(),
		Registers: per.Registers.Snapshot(),
	}
	cp.SPI.Plumb(cp.Registers)
	return cp
}

// Step the peripheral forward one tick of the processing clock, presenting
// the raw levels of the three protocol lines. The entire next state is a
// function of the previous state and the presented lines; no intermediate
// state is observable.
func (per *Peripheral) Step(lines Lines) {
	per.SPI.Step(lines.NCS, lines.SCLK, lines.SDI)
}

// Reset emulates the assertion of the peripheral's reset line. Reset
// overrides everything: line histories return to their idle levels, any
// in-progress transaction is forgotten and every register reads zero.
func (per *Peripheral) Reset() {
	per.SPI.Reset()
	per.Registers.Reset()
	logger.Log("peripheral", "reset")
}

func (per *Peripheral) String() string {
	return fmt.Sprintf("%s\n%s", per.SPI, per.Registers)
}
