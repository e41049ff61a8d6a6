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

// Package performance measures the tick rate of the emulated peripheral.
// A transcript is replayed over and over for a requested wall-clock
// duration and the number of processing clock ticks is reported. The run
// can optionally be wrapped in the CPU and memory profilers.
package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tapeshift/spindle/curated"
	"github.com/tapeshift/spindle/hardware"
	"github.com/tapeshift/spindle/recorder"
)

// sentinel error returned by the measurement loop.
var timedOut = errors.New("performance timed out")

// number of transcript passes between checks of the timer channel.
// checking the channel is relatively expensive.
const performanceBrake = 100

// Check the performance of the emulation using the supplied transcript.
//
// The transcript is replayed repeatedly for the specified duration and
// will create a cpu profile, a memory profile, or both, as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, transcript string, duration string) error {
	plb, err := recorder.NewPlayback(transcript)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	per := hardware.NewPeripheral()

	numTicks := 0

	runner := func() error {
		// setup trigger that expires when duration has elapsed
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		}()

		brake := 0

		for {
			plb.Run(per)
			numTicks += plb.NumTicks()

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return timedOut
				default:
				}
			}
		}
	}

	// launch runner directly or through the profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	rate := float64(numTicks) / dur.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f ticks/sec (%d ticks in %.2f seconds)\n", rate, numTicks, dur.Seconds())))

	return nil
}
