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

// Package playmode provides an interactive terminal session with the
// emulated peripheral. The keyboard drives the protocol lines directly,
// one tick per keypress, which is a convenient way of exploring the
// framing rules (and of producing deliberately malformed frames).
//
// The session can optionally be recorded to a transcript for later
// replay with the recorder package.
package playmode

import (
	"fmt"
	"io"
	"os"

	"github.com/tapeshift/spindle/curated"
	"github.com/tapeshift/spindle/hardware"
	"github.com/tapeshift/spindle/playmode/easyterm"
	"github.com/tapeshift/spindle/recorder"
)

const helpText = `keys:
  s     toggle the select line
  c     pulse the serial clock (one tick high, one tick low)
  0, 1  set the serial data line
  r     assert the reset line
  p     print peripheral state
  h     this help
  q     quit
`

// Play starts an interactive session on the controlling terminal. If
// transcript is not the empty string the session is recorded.
func Play(output io.Writer, transcript string) error {
	var rec *recorder.Recorder
	var err error

	if transcript != "" {
		rec, err = recorder.NewRecorder(transcript)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	term := &easyterm.Terminal{}
	err = term.Initialise(os.Stdin.Fd())
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer term.CanonicalMode()

	err = term.CbreakMode()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	per := hardware.NewPeripheral()
	lines := hardware.IdleLines()

	// one step of the peripheral, echoed to the recording if there is one
	step := func() error {
		per.Step(lines)
		if rec != nil {
			return rec.Tick(lines)
		}
		return nil
	}

	output.Write([]byte(helpText))

	done := false
	for !done {
		key := make([]byte, 1)
		_, err := os.Stdin.Read(key)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		switch key[0] {
		case 's':
			lines.NCS = !lines.NCS
			err = step()

		case 'c':
			lines.SCLK = true
			err = step()
			if err == nil {
				lines.SCLK = false
				err = step()
			}

		case '0':
			lines.SDI = false
			err = step()

		case '1':
			lines.SDI = true
			err = step()

		case 'r':
			per.Reset()
			if rec != nil {
				err = rec.Reset()
			}

		case 'p':
			output.Write([]byte(fmt.Sprintf("%s\n", per)))

		case 'h':
			output.Write([]byte(helpText))

		case 'q':
			done = true
		}

		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		if !done && key[0] != 'p' && key[0] != 'h' {
			output.Write([]byte(fmt.Sprintf("%s  [%s]\r\n", lines, per.SPI)))
		}
	}

	if rec != nil {
		err = rec.End()
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		output.Write([]byte(fmt.Sprintf("recorded to %s\n", transcript)))
	}

	return nil
}
