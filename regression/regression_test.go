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

package regression_test

import (
	"os"
	"strings"
	"testing"

	"github.com/tapeshift/spindle/hardware"
	"github.com/tapeshift/spindle/recorder"
	"github.com/tapeshift/spindle/regression"
	"github.com/tapeshift/spindle/test"
)

// the regression database lives in the working directory so every test
// runs from a fresh temporary directory.
func tempWorkingDir(t *testing.T) {
	t.Helper()

	cwd, err := os.Getwd()
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
}

// record a transcript containing one complete register write.
func recordTranscript(t *testing.T, transcript string, f uint16) {
	t.Helper()

	rec, err := recorder.NewRecorder(transcript)
	test.ExpectedSuccess(t, err)

	tick := func(lines hardware.Lines) {
		test.ExpectedSuccess(t, rec.Tick(lines))
	}

	tick(hardware.Lines{})
	for i := 0; i < 16; i++ {
		bit := f&0x8000 == 0x8000
		tick(hardware.Lines{SDI: bit})
		tick(hardware.Lines{SCLK: true, SDI: bit})
		f <<= 1
	}
	tick(hardware.Lines{})
	tick(hardware.IdleLines())

	test.ExpectedSuccess(t, rec.End())
}

func TestRegressionDatabase(t *testing.T) {
	tempWorkingDir(t)
	recordTranscript(t, "transcript", 0x822a)

	output := &strings.Builder{}

	// adding in a directory with no database yet must create everything
	reg := &regression.TraceRegression{
		Transcript: "transcript",
		Notes:      "pulse enable write",
	}
	err := regression.RegressAdd(output, reg)
	test.ExpectedSuccess(t, err)
	test.Equate(t, reg.Writes, 1)
	test.Equate(t, reg.Digest == "", false)

	output.Reset()
	err = regression.RegressList(output)
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Contains(output.String(), "transcript"), true)
	test.Equate(t, strings.Contains(output.String(), "pulse enable write"), true)

	// replaying the unchanged transcript succeeds
	output.Reset()
	err = regression.RegressRun(output, []string{})
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Contains(output.String(), "1 succeed, 0 fail"), true)

	// delete the entry and confirm the database is empty
	output.Reset()
	err = regression.RegressDelete(output, strings.NewReader("y\n"), "0")
	test.ExpectedSuccess(t, err)

	output.Reset()
	err = regression.RegressList(output)
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Contains(output.String(), "database is empty"), true)
}

func TestRegressionFailure(t *testing.T) {
	tempWorkingDir(t)
	recordTranscript(t, "transcript", 0x822a)

	output := &strings.Builder{}

	reg := &regression.TraceRegression{Transcript: "transcript"}
	err := regression.RegressAdd(output, reg)
	test.ExpectedSuccess(t, err)

	// a transcript that no longer produces the recorded digest fails
	recordTranscript(t, "transcript", 0x8401)

	output.Reset()
	err = regression.RegressRun(output, []string{"0"})
	test.ExpectedFailure(t, err)
	test.Equate(t, strings.Contains(output.String(), "0 succeed, 1 fail"), true)
}
