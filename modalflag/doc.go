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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package,
// with some differences. Whereas with flag.FlagSet you call Parse() with
// the array of strings as the only argument, with modalflag you first call
// NewArgs() with the array of arguments and then Parse() with no
// arguments. For example (no error handling shown):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be
// retrieved with the RemainingArgs() or GetArg() functions.
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	echo := md.AddBool("log", false, "echo log to stdout")
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". In
// this context, a mode is a special command line argument that when
// specified puts the program into a different mode of operation, in the
// manner of the go command (build, doc, test, etc.). Each mode can have a
// different set of flags and expected arguments.
//
// Modes are declared with the AddSubModes() function. The first mode in
// the list is the default, selected when the user specifies no mode at
// all. Mode comparisons are case insensitive.
//
//	md.AddSubModes("run", "play", "regress")
//
// After a successful Parse(), the selected mode is available through the
// Mode() function. Call NewMode() to begin declaring flags for the
// sub-mode and Parse() again to parse them. The Path() function returns
// the full series of modes encountered, separated with "/".
package modalflag
