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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tapeshift/spindle/curated"
	"github.com/tapeshift/spindle/hardware"
)

type playbackEntry struct {
	lines hardware.Lines
	hold  int
	reset bool

	// the line in the transcript the playback entry appears
	line int
}

// Playback reperforms the line activity recorded in a previously recorded
// transcript.
type Playback struct {
	transcript string
	sequence   []playbackEntry

	// the number of ticks one pass over the sequence takes
	numTicks int
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	plb := &Playback{
		transcript: transcript,
		sequence:   make([]playbackEntry, 0),
	}

	tf, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	buffer, err := io.ReadAll(tf)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	err = tf.Close()
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(string(buffer), "\n")

	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}

		entry := playbackEntry{line: i + 1}

		if lines[i] == resetLine {
			entry.reset = true
			entry.hold = 1
			plb.sequence = append(plb.sequence, entry)
			plb.numTicks++
			continue
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		entry.lines.NCS, err = parseLevel(toks[fieldNCS])
		if err != nil {
			return nil, curated.Errorf("playback: %v at line %d", err, i+1)
		}
		entry.lines.SCLK, err = parseLevel(toks[fieldSCLK])
		if err != nil {
			return nil, curated.Errorf("playback: %v at line %d", err, i+1)
		}
		entry.lines.SDI, err = parseLevel(toks[fieldSDI])
		if err != nil {
			return nil, curated.Errorf("playback: %v at line %d", err, i+1)
		}

		entry.hold, err = strconv.Atoi(toks[fieldHold])
		if err != nil || entry.hold < 1 {
			return nil, curated.Errorf("playback: bad hold count at line %d", i+1)
		}

		plb.sequence = append(plb.sequence, entry)
		plb.numTicks += entry.hold
	}

	return plb, nil
}

func parseLevel(tok string) (bool, error) {
	switch tok {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, curated.Errorf("bad line level [%s]", tok)
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf("playback: transcript is too short to be valid")
	}
	if lines[lineMagic] != magic {
		return curated.Errorf("playback: not a transcript (%s)", plb.transcript)
	}
	if lines[lineVersion] != version {
		return curated.Errorf("playback: unsupported transcript version (%s)", lines[lineVersion])
	}
	return nil
}

// NumTicks returns the number of processing clock ticks one pass over the
// transcript takes.
func (plb *Playback) NumTicks() int {
	return plb.numTicks
}

// Run the transcript against the supplied peripheral from beginning to
// end. A transcript can be run any number of times; against a freshly
// reset peripheral the results will be identical each time.
func (plb *Playback) Run(per *hardware.Peripheral) {
	for _, entry := range plb.sequence {
		if entry.reset {
			per.Reset()
			continue
		}
		for i := 0; i < entry.hold; i++ {
			per.Step(entry.lines)
		}
	}
}
