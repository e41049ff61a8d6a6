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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/tapeshift/spindle/modalflag"
	"github.com/tapeshift/spindle/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.Equate(t, *testFlag, false)

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")

	test.Equate(t, *testFlag, true)
	test.Equate(t, len(md.RemainingArgs()), 2)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"play", "transcript"})
	md.AddSubModes("run", "play", "regress")

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "PLAY")
	test.Equate(t, md.Path(), "PLAY")

	// the mode selector is consumed; the argument remains
	md.NewMode()
	p, err = md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.GetArg(0), "transcript")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"transcript"})
	md.AddSubModes("run", "play")

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)

	// an unrecognised first argument selects the default mode and is not
	// consumed
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, md.GetArg(0), "transcript")
}
