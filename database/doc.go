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

// Package database is a very simple way of storing structured but
// arbitrary entry types. It's as simple as simple can be but is still
// useful in helping to organise what is essentially a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done.
// For example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file on the local disk.
// The second argument describes the type of activity that will be
// happening during the session. ActivityCreating sessions create the
// database file if it does not already exist; ActivityReading sessions
// cannot commit changes.
//
// The third argument is the database initialisation function, used to
// register the entry types the database may contain:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("trace", deserialiseTraceEntry)
//	}
//
// On reading, the database calls the registered deserialisation function
// for each record, passing the record's fields. Errors from the
// deserialiser cause StartSession() to fail and propagate outwards.
package database
