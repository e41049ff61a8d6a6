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

package recorder

import (
	"fmt"
	"os"

	"github.com/tapeshift/spindle/curated"
	"github.com/tapeshift/spindle/hardware"
)

// Recorder writes line activity to a transcript. Ticks with unchanged line
// levels are coalesced into a single event line with a hold count.
type Recorder struct {
	output *os.File

	last    hardware.Lines
	hold    int
	pending bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The transcript file is created and the header written immediately.
func NewRecorder(transcript string) (*Recorder, error) {
	rec := &Recorder{}

	var err error
	rec.output, err = os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	_, err = fmt.Fprintf(rec.output, "%s\n%s\n", magic, version)
	if err != nil {
		rec.output.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	return rec, nil
}

// Tick records the line levels for one tick of the processing clock.
func (rec *Recorder) Tick(lines hardware.Lines) error {
	if rec.pending && lines == rec.last {
		rec.hold++
		return nil
	}

	err := rec.flush()
	if err != nil {
		return err
	}

	rec.last = lines
	rec.hold = 1
	rec.pending = true

	return nil
}

// Reset records an assertion of the peripheral's reset line.
func (rec *Recorder) Reset() error {
	err := rec.flush()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(rec.output, "%s\n", resetLine)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return nil
}

// End the recording, flushing any pending event and closing the
// transcript.
func (rec *Recorder) End() error {
	err := rec.flush()
	if err != nil {
		rec.output.Close()
		return err
	}

	err = rec.output.Close()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return nil
}

func (rec *Recorder) flush() error {
	if !rec.pending {
		return nil
	}

	l := func(v bool) string {
		if v {
			return "1"
		}
		return "0"
	}

	_, err := fmt.Fprintf(rec.output, "%s%s%s%s%s%s%d\n",
		l(rec.last.NCS), fieldSep, l(rec.last.SCLK), fieldSep, l(rec.last.SDI), fieldSep, rec.hold)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	rec.pending = false

	return nil
}
