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

package recorder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tapeshift/spindle/hardware"
	"github.com/tapeshift/spindle/hardware/registers"
	"github.com/tapeshift/spindle/recorder"
	"github.com/tapeshift/spindle/test"
)

// transaction returns the tick-by-tick line levels for a complete register
// write over the wire.
func transaction(f uint16) []hardware.Lines {
	seq := make([]hardware.Lines, 0, 36)
	seq = append(seq, hardware.Lines{})
	for i := 0; i < 16; i++ {
		bit := f&0x8000 == 0x8000
		seq = append(seq, hardware.Lines{SDI: bit})
		seq = append(seq, hardware.Lines{SCLK: true, SDI: bit})
		f <<= 1
	}
	seq = append(seq, hardware.Lines{})
	seq = append(seq, hardware.IdleLines())
	return seq
}

func TestRoundTrip(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "roundtrip")

	rec, err := recorder.NewRecorder(transcript)
	test.ExpectedSuccess(t, err)

	// record a session and drive a live peripheral with the same levels
	live := hardware.NewPeripheral()

	seq := make([]hardware.Lines, 0, 80)
	seq = append(seq, transaction(0x822a)...)
	seq = append(seq, transaction(0x8480)...)

	for _, lines := range seq {
		err = rec.Tick(lines)
		test.ExpectedSuccess(t, err)
		live.Step(lines)
	}

	err = rec.End()
	test.ExpectedSuccess(t, err)

	// replaying the transcript must reproduce the live session exactly
	plb, err := recorder.NewPlayback(transcript)
	test.ExpectedSuccess(t, err)
	test.Equate(t, plb.NumTicks(), len(seq))

	replay := hardware.NewPeripheral()
	plb.Run(replay)

	for reg := registers.Out0; reg < registers.NumRegisters; reg++ {
		test.Equate(t, replay.Registers.Value(reg), live.Registers.Value(reg))
	}
	test.Equate(t, replay.Registers.Value(registers.PulseEn0), 0x2a)
	test.Equate(t, replay.Registers.Value(registers.Duty), 0x80)
}

func TestRecordedReset(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "reset")

	rec, err := recorder.NewRecorder(transcript)
	test.ExpectedSuccess(t, err)

	for _, lines := range transaction(0x8011) {
		err = rec.Tick(lines)
		test.ExpectedSuccess(t, err)
	}
	err = rec.Reset()
	test.ExpectedSuccess(t, err)
	err = rec.End()
	test.ExpectedSuccess(t, err)

	plb, err := recorder.NewPlayback(transcript)
	test.ExpectedSuccess(t, err)

	per := hardware.NewPeripheral()
	plb.Run(per)

	// the write happened but the recorded reset wiped it
	test.Equate(t, per.Registers.Value(registers.Out0), 0x00)
}

func TestNotATranscript(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "notatranscript")

	err := os.WriteFile(transcript, []byte("not a transcript\n"), 0644)
	test.ExpectedSuccess(t, err)

	_, err = recorder.NewPlayback(transcript)
	test.ExpectedFailure(t, err)
}
