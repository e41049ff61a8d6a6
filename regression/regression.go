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

package regression

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tapeshift/spindle/curated"
	"github.com/tapeshift/spindle/database"
)

// the location of the regression database.
const regressionDir = ".spindle"
const regressionDBFile = regressionDir + "/regressionDB"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the
	// newRegression flag causes the entry to record the result of the run
	// as the expected result, rather than compare against it
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we
// will find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(traceEntryType, deserialiseTraceEntry)
}

// startDBSession makes sure the regression directory exists before the
// database file inside it is opened.
func startDBSession(activity database.Activity) (*database.Session, error) {
	if err := os.MkdirAll(regressionDir, 0755); err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}
	return database.StartSession(regressionDBFile, activity, initDBSession)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	db, err := startDBSession(database.ActivityCreating)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression entry to the database. The regression
// is run once to record the expected result.
func RegressAdd(output io.Writer, reg Regressor) error {
	db, err := startDBSession(database.ActivityCreating)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if !ok || err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressDelete removes an entry from the regression database. The
// confirmation reader is used to prompt before deletion; pass a reader
// primed with "y" to skip the interaction.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key [%s]", key)
	}

	db, err := startDBSession(database.ActivityModifying)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressRun runs the specified regression tests. An empty keys list runs
// every entry in the database.
func RegressRun(output io.Writer, keys []string) error {
	db, err := startDBSession(database.ActivityCreating)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	keyList := make([]int, 0, len(keys))
	for _, key := range keys {
		v, err := strconv.Atoi(key)
		if err != nil {
			return curated.Errorf("regression: invalid key [%s]", key)
		}
		keyList = append(keyList, v)
	}
	if len(keyList) == 0 {
		keyList = db.SortedKeyList()
	}

	numSucceed := 0
	numFail := 0

	for _, key := range keyList {
		ent, err := db.Get(key)
		if err != nil {
			return err
		}

		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: entry #%03d is not a regression test", key)
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err = reg.regress(false, output, msg)
		if err != nil {
			return err
		}

		if ok {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %s\n", reg)))
		} else {
			numFail++
			output.Write([]byte(fmt.Sprintf("\rfail: %s\n", reg)))
		}
	}

	output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail\n", numSucceed, numFail)))

	if numFail > 0 {
		return curated.Errorf("regression: %d tests failed", numFail)
	}

	return nil
}
