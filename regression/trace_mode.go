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

package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tapeshift/spindle/curated"
	"github.com/tapeshift/spindle/database"
	"github.com/tapeshift/spindle/digest"
	"github.com/tapeshift/spindle/hardware"
	"github.com/tapeshift/spindle/recorder"
)

const traceEntryType = "trace"

const (
	traceFieldTranscript int = iota
	traceFieldWrites
	traceFieldDigest
	traceFieldNotes
	numTraceFields
)

// TraceRegression runs a transcript against a fresh peripheral and
// compares the register digest with the digest recorded when the entry was
// added.
type TraceRegression struct {
	Transcript string
	Notes      string

	// expected results of the run
	Writes int
	Digest string
}

func deserialiseTraceEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &TraceRegression{}

	// basic sanity check
	if len(fields) > numTraceFields {
		return nil, curated.Errorf("trace: too many fields")
	}
	if len(fields) < numTraceFields {
		return nil, curated.Errorf("trace: too few fields")
	}

	var err error

	reg.Transcript = fields[traceFieldTranscript]
	reg.Writes, err = strconv.Atoi(fields[traceFieldWrites])
	if err != nil {
		return nil, curated.Errorf("trace: invalid writes field [%s]", fields[traceFieldWrites])
	}
	reg.Digest = fields[traceFieldDigest]
	reg.Notes = fields[traceFieldNotes]

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg TraceRegression) EntryType() string {
	return traceEntryType
}

// Serialise implements the database.Entry interface.
func (reg *TraceRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Transcript,
		strconv.Itoa(reg.Writes),
		reg.Digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg TraceRegression) CleanUp() {
}

func (reg TraceRegression) String() string {
	s := fmt.Sprintf("[%s] %s", reg.EntryType(), reg.Transcript)
	if reg.Notes != "" {
		s = fmt.Sprintf("%s [%s]", s, reg.Notes)
	}
	return s
}

// regress implements the Regressor interface.
func (reg *TraceRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	output.Write([]byte(message))

	plb, err := recorder.NewPlayback(reg.Transcript)
	if err != nil {
		return false, curated.Errorf("trace: %v", err)
	}

	per := hardware.NewPeripheral()
	dig := digest.NewRegisters(per.Registers)

	plb.Run(per)

	if newRegression {
		reg.Writes = dig.NumWrites()
		reg.Digest = dig.Hash()
		return true, nil
	}

	if dig.NumWrites() != reg.Writes {
		return false, nil
	}

	return dig.Hash() == reg.Digest, nil
}
