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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it
// wraps termios methods in functions with friendlier names.
package easyterm

import (
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. usually embedded in
// other struct types.
type Terminal struct {
	fd uintptr

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct. The fd argument should be
// the file descriptor of the input terminal (usually os.Stdin.Fd()).
func (pt *Terminal) Initialise(fd uintptr) error {
	pt.fd = fd

	// prepare the attributes for the different terminal modes we'll be
	// using
	err := termios.Tcgetattr(pt.fd, &pt.canAttr)
	if err != nil {
		return err
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CanonicalMode puts the terminal into the mode it was in when
// Initialise() was called. Should always be called before the program
// ends.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.fd, termios.TCSANOW, &pt.canAttr)
}

// CbreakMode puts the terminal into cbreak mode: input is available
// character by character, echoing is disabled.
func (pt *Terminal) CbreakMode() error {
	return termios.Tcsetattr(pt.fd, termios.TCSANOW, &pt.cbreakAttr)
}
