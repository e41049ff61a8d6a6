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

package spi_test

import (
	"testing"

	"github.com/tapeshift/spindle/hardware/spi"
	"github.com/tapeshift/spindle/test"
)

func TestTraceEdges(t *testing.T) {
	tr := spi.NewTrace("NCS", true)

	// a freshly initialised trace reports no edges
	test.Equate(t, tr.Rising(), false)
	test.Equate(t, tr.Falling(), false)
	test.Equate(t, tr.Changed(), false)
	test.Equate(t, tr.Hi(), true)

	// line goes low. edge is visible for exactly one tick
	tr.Tick(false)
	test.Equate(t, tr.Falling(), true)
	test.Equate(t, tr.Rising(), false)
	test.Equate(t, tr.Lo(), true)

	tr.Tick(false)
	test.Equate(t, tr.Falling(), false)
	test.Equate(t, tr.Changed(), false)

	// and back high again
	tr.Tick(true)
	test.Equate(t, tr.Rising(), true)
	test.Equate(t, tr.Falling(), false)
	test.Equate(t, tr.Hi(), true)

	tr.Tick(true)
	test.Equate(t, tr.Rising(), false)
}

func TestTraceReset(t *testing.T) {
	tr := spi.NewTrace("SCLK", false)

	tr.Tick(true)
	test.Equate(t, tr.Rising(), true)

	// resetting while the line appears high must not leave a phantom edge
	tr.Reset(false)
	test.Equate(t, tr.Rising(), false)
	test.Equate(t, tr.Falling(), false)
	test.Equate(t, tr.Lo(), true)
}

func TestTraceSnapshot(t *testing.T) {
	tr := spi.NewTrace("SDI", false)
	tr.Tick(true)

	cp := tr.Snapshot()
	test.Equate(t, cp.Rising(), true)

	// the copy must not be affected by further ticks of the original
	tr.Tick(true)
	test.Equate(t, tr.Rising(), false)
	test.Equate(t, cp.Rising(), true)
}
