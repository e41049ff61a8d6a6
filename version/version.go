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

// Package version records the version number of the project.
package version

import (
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Spindle"

// Version contains the version string for the current build. If the
// project was not built from a tagged revision then the string will be
// suffixed with the vcs revision, if available.
var Version = "unreleased"

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Version += " (" + revision
		if modified {
			Version += "+dirty"
		}
		Version += ")"
	}
}
