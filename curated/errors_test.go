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

package curated_test

import (
	"fmt"
	"testing"

	"github.com/tapeshift/spindle/curated"
	"github.com/tapeshift/spindle/test"
)

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("playback: %v", "no such file")
	test.Equate(t, e.Error(), "playback: no such file")

	// wrapping an error of the same pattern next to itself causes one of
	// them to be dropped
	f := curated.Errorf("playback: %v", e)
	test.Equate(t, f.Error(), "playback: no such file")
}

func TestSentinels(t *testing.T) {
	const pattern = "playback: %v"

	e := curated.Errorf(pattern, "no such file")
	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, pattern), true)
	test.Equate(t, curated.Is(e, "regression: %v"), false)

	// plain errors are not curated
	p := fmt.Errorf("plain")
	test.Equate(t, curated.IsAny(p), false)
	test.Equate(t, curated.Is(p, pattern), false)

	// Has() walks the chain of wrapped errors
	f := curated.Errorf("regression: %v", e)
	test.Equate(t, curated.Is(f, pattern), false)
	test.Equate(t, curated.Has(f, pattern), true)

	test.Equate(t, curated.IsAny(nil), false)
	test.Equate(t, curated.Has(nil, pattern), false)
}
