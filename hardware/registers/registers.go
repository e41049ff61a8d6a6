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

package registers

import (
	"fmt"
	"strings"

	"github.com/tapeshift/spindle/logger"
)

// Register identifies one of the five byte registers in the file. The
// integer value of a Register is also its address on the wire.
type Register int

// List of valid Register values. The names reflect what the downstream
// pulse generator does with each register; as far as this package is
// concerned they are five independent bytes.
const (
	// level driven onto the primary output port
	Out0 Register = iota

	// level driven onto the auxiliary output port
	Out1

	// pulse-modulation enable mask for the primary output port
	PulseEn0

	// pulse-modulation enable mask for the auxiliary output port
	PulseEn1

	// duty value consumed by the pulse generator
	Duty

	// NumRegisters is the number of registers in the file. addresses at or
	// above this value select nothing
	NumRegisters
)

// RegisterList is a list of all possible string representations of the
// Register type.
var RegisterList = []string{"OUT0", "OUT1", "PLSEN0", "PLSEN1", "DUTY"}

func (reg Register) String() string {
	if reg < 0 || reg >= NumRegisters {
		return fmt.Sprintf("unmapped (%#02x)", int(reg))
	}
	return RegisterList[reg]
}

// Observer implementations are notified of every successful write to the
// register file.
type Observer interface {
	RegisterWrite(reg Register, data uint8)
}

// File is the peripheral's register file: five independently addressable
// byte registers. It is the only externally observable output of the
// peripheral. The file is written only through Commit() and persists
// between transactions until the next write to the same address or a
// reset.
//
// File implements the spi.RegisterBus interface.
type File struct {
	values [NumRegisters]uint8

	observers []Observer
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	return &File{}
}

// Snapshot the instance of the File. Observers are shared with the
// snapshot, not copied.
func (fl *File) Snapshot() *File {
	cp := *fl
	return &cp
}

// AttachObserver to the register file. Every successful Commit() is
// forwarded to all attached observers.
func (fl *File) AttachObserver(obs Observer) {
	fl.observers = append(fl.observers, obs)
}

// Reset all registers to zero.
func (fl *File) Reset() {
	for i := range fl.values {
		fl.values[i] = 0x00
	}
}

// Value of the specified register.
func (fl *File) Value(reg Register) uint8 {
	return fl.values[reg]
}

func (fl *File) String() string {
	s := strings.Builder{}
	for reg := Out0; reg < NumRegisters; reg++ {
		if reg > Out0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%#02x", reg, fl.values[reg]))
	}
	return s.String()
}

// Commit a decoded address/data pair to the file. Addresses outside the
// file are dropped without error; there is no way of signalling a bad
// address to the controller. Implements the spi.RegisterBus interface.
func (fl *File) Commit(address uint8, data uint8) {
	if Register(address) >= NumRegisters {
		logger.Log("registers", fmt.Sprintf("write to unmapped address %#02x ignored", address))
		return
	}

	reg := Register(address)
	fl.values[reg] = data

	for _, obs := range fl.observers {
		obs.RegisterWrite(reg, data)
	}
}
