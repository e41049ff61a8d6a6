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

package spi

// Trace records the state of an electrical line, whether it is high or low,
// and also whether the immediately previous state is high or low.
//
// Moving from one state to the other is done with Tick(bool) where a boolean
// value of true indicates a high voltage state.
//
// The function Falling() returns true if the line voltage has moved from a
// high state to a low state; and Rising() returns true if the opposite is
// true. Note that this means edges are reported one tick after the raw line
// changed. The peripheral's framing depends on that delay so all line
// conditions must be expressed through a Trace, never on the raw sample.
//
// Deriving conditions from two traces is convenient. For example, given two
// traces A and B, a condition for event E might be:
//
//	 if A.Hi() && B.Rising() {
//			E()
//	 }
type Trace struct {
	Label string

	// new values are added to the end of the array
	Activity []bool

	from bool
	to   bool
}

const (
	activityLength = 64
)

// NewTrace is the preferred method of initialisation for the Trace type. The
// idle argument gives the starting level for the line, which is also the
// level the Activity history is filled with.
func NewTrace(label string, idle bool) Trace {
	tr := Trace{
		Label: label,
	}
	tr.Reset(idle)
	return tr
}

// Reset the trace to the specified idle level. Both samples of the history
// are set to the idle level, meaning no edge will be reported on the next
// tick unless the raw line has really moved.
func (tr *Trace) Reset(idle bool) {
	tr.from = idle
	tr.to = idle
	tr.Activity = make([]bool, activityLength)
	for i := range tr.Activity {
		tr.Activity[i] = idle
	}
}

// Snapshot makes a copy of the Trace.
func (tr *Trace) Snapshot() *Trace {
	cp := *tr
	cp.Activity = make([]bool, len(tr.Activity))
	copy(cp.Activity, tr.Activity)
	return &cp
}

// Changed returns true if the two samples of the history differ.
func (tr *Trace) Changed() bool {
	return tr.from != tr.to
}

// Falling returns true if the line has moved from a high state to a low state.
func (tr *Trace) Falling() bool {
	return tr.from && !tr.to
}

// Rising returns true if the line has moved from a low state to a high state.
func (tr *Trace) Rising() bool {
	return !tr.from && tr.to
}

// Hi returns true if the most recent sample of the line is high.
func (tr *Trace) Hi() bool {
	return tr.to
}

// Lo returns true if the most recent sample of the line is low.
func (tr *Trace) Lo() bool {
	return !tr.to
}

// Tick advances the trace history by one sample.
func (tr *Trace) Tick(v bool) {
	tr.from = tr.to
	tr.to = v
	tr.Activity = append(tr.Activity[1:], v)
}
