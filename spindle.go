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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/tapeshift/spindle/digest"
	"github.com/tapeshift/spindle/hardware"
	"github.com/tapeshift/spindle/logger"
	"github.com/tapeshift/spindle/modalflag"
	"github.com/tapeshift/spindle/performance"
	"github.com/tapeshift/spindle/playmode"
	"github.com/tapeshift/spindle/recorder"
	"github.com/tapeshift/spindle/regression"
	"github.com/tapeshift/spindle/statsview"
	"github.com/tapeshift/spindle/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PLAY", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PLAY":
		err = play(md)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// run decodes a previously recorded transcript and reports the final state
// of the peripheral.
func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	dump := md.AddString("dump", "", "write a graph of the peripheral state to file (graphviz format)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	logger.SetEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
		plb, err := recorder.NewPlayback(md.GetArg(0))
		if err != nil {
			return err
		}

		per := hardware.NewPeripheral()
		dig := digest.NewRegisters(per.Registers)

		plb.Run(per)

		fmt.Fprintln(md.Output, per.String())
		fmt.Fprintf(md.Output, "writes: %d\n", dig.NumWrites())
		fmt.Fprintf(md.Output, "digest: %s\n", dig.Hash())

		if *dump != "" {
			f, err := os.Create(*dump)
			if err != nil {
				return err
			}
			defer f.Close()
			memviz.Map(f, per)
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// play starts an interactive session, driving the bus lines from the
// keyboard. optionally recording the session to a transcript.
func play(md *modalflag.Modes) error {
	md.NewMode()

	record := md.AddString("record", "", "record session to transcript file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	logger.SetEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		err = playmode.Play(md.Output, *record)
		if err != nil {
			return err
		}

		if *record != "" {
			fmt.Println("! recording completed")
		}

	default:
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, ALL, NONE")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run live statistics view (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
		err = performance.Check(md.Output, prf, md.GetArg(0), *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		err = regression.RegressRun(md.Output, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	notes := md.AddString("notes", "", "additional annotation for the database")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The regression test to be added must be a previously recorded transcript
file. The transcript is run once when added and the resulting register digest
is stored as the expected outcome.

Note that asking for log output will suppress regression progress meters.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	logger.SetEcho(*log)
	if *log {
		md.Output = &nopWriter{}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
		reg := &regression.TraceRegression{
			Transcript: md.GetArg(0),
			Notes:      *notes,
		}
		err := regression.RegressAdd(md.Output, reg)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
