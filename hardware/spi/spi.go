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

package spi

import (
	"fmt"
	"strings"

	"github.com/tapeshift/spindle/logger"
)

// RegisterBus defines the register file operations required by the SPI core.
// We keep the bus definition here rather than in the registers package
// because it describes what the core needs, not what the register file
// provides.
type RegisterBus interface {
	// commit a decoded address/data pair. the implementation decides
	// whether the address corresponds to a real register
	Commit(address uint8, data uint8)
}

// layout of a frame. a frame is one complete 16 bit serial transaction
// bounded by the select line falling and rising.
const (
	frameBits = 16
	dataBits  = 8

	// most significant bit of a frame. the frame is discarded if this bit
	// is clear
	writeFlag = 0x8000

	addressMask = 0x7f
	dataMask    = 0xff
)

// SPI decodes the unidirectional serial protocol used to program the
// peripheral's register file. Three lines are monitored: select (active
// low), serial clock and serial data.
//
// All three lines are asynchronous with respect to the processing clock so
// every raw sample passes through a Trace before any framing decision is
// made. The state machine itself is implicit: the peripheral is capturing
// whenever the select line is low and dispatch is evaluated at the moment
// the select line rises.
type SPI struct {
	bus RegisterBus

	// line histories. the select line idles high, the clock and data lines
	// idle low
	NCS  Trace
	SCLK Trace
	SDI  Trace

	// bits are shifted into Shift on each qualifying clock edge, most
	// significant bit first. BitCt counts up to frameBits and then
	// saturates; extra clock edges while the frame is full are no-ops
	Shift uint16
	BitCt int
}

// NewSPI is the preferred method of initialisation for the SPI type.
func NewSPI(bus RegisterBus) *SPI {
	sp := &SPI{
		bus:  bus,
		NCS:  NewTrace("NCS", true),
		SCLK: NewTrace("SCLK", false),
		SDI:  NewTrace("SDI", false),
	}
	return sp
}

// Snapshot the instance of the SPI core.
func (sp *SPI) Snapshot() *SPI {
	cp := *sp
	cp.NCS = *sp.NCS.Snapshot()
	cp.SCLK = *sp.SCLK.Snapshot()
	cp.SDI = *sp.SDI.Snapshot()
	return &cp
}

// Plumb a new RegisterBus into the SPI core.
func (sp *SPI) Plumb(bus RegisterBus) {
	sp.bus = bus
}

// Reset the core to its power-on state. The select history is set to
// logic-high, meaning a select falling edge is required before any capture
// can begin. Clock and data histories are set low.
func (sp *SPI) Reset() {
	sp.NCS.Reset(true)
	sp.SCLK.Reset(false)
	sp.SDI.Reset(false)
	sp.Shift = 0
	sp.BitCt = 0
}

func (sp *SPI) String() string {
	s := strings.Builder{}
	s.WriteString("spi: ")
	switch {
	case sp.NCS.Lo() && sp.BitCt < frameBits:
		s.WriteString(fmt.Sprintf("capturing (%d bits)", sp.BitCt))
	case sp.NCS.Lo():
		s.WriteString("frame full (waiting for select)")
	default:
		s.WriteString("idle")
	}
	return s.String()
}

// Step advances the core by one tick of the processing clock, sampling all
// three lines. The transitions below are mutually exclusive and considered
// in a strict priority order. The order only matters when two edges alias
// onto the same tick, which can happen because the lines are asynchronous.
func (sp *SPI) Step(ncs bool, sclk bool, sdi bool) {
	sp.NCS.Tick(ncs)
	sp.SCLK.Tick(sclk)
	sp.SDI.Tick(sdi)

	switch {
	case sp.NCS.Falling():
		// transaction start. any partially captured frame is abandoned
		sp.Shift = 0
		sp.BitCt = 0
		logger.Log("spi", "transaction started")

	case sp.SCLK.Rising() && sp.BitCt < frameBits:
		sp.Shift <<= 1
		if sp.SDI.Hi() {
			sp.Shift |= 0x01
		}
		sp.BitCt++

	case sp.BitCt == frameBits && sp.NCS.Rising():
		sp.dispatch()
	}
}

// dispatch is evaluated when a full frame has been captured and the select
// line rises. frames without the write flag are dropped without comment to
// the controller. there is no read protocol; a clear flag simply means the
// frame has no effect.
func (sp *SPI) dispatch() {
	if sp.Shift&writeFlag != writeFlag {
		logger.Log("spi", "frame dropped (write flag clear)")
		return
	}

	address := uint8(sp.Shift>>dataBits) & addressMask
	data := uint8(sp.Shift & dataMask)
	logger.Log("spi", fmt.Sprintf("write %#02x to address %#02x", data, address))
	sp.bus.Commit(address, data)
}
