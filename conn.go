// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite0

/*
#include "sqlite-shim.h"
*/
import "C"
import (
	"fmt"
	"runtime"
	"time"
)

// Connection owns a database handle. It must be used by a single goroutine
// at a time, though it may be handed off between goroutines. Close releases
// the handle; after that every other method is invalid.
type Connection struct {
	Conn
	hasAuthorizer bool
}

// Open acquires a new database handle for path. flags == 0 means
// OpenReadWrite|OpenCreate|OpenURI. The engine's internal mutex and shared
// cache are always disabled: thread exclusion is the caller's job.
//
// On failure the partially opened handle, if any, is torn down before
// returning.
func Open(path string, flags OpenFlags) (*Connection, error) {
	if initErr != nil {
		return nil, initErr
	}
	if flags == 0 {
		flags = OpenReadWrite | OpenCreate | OpenURI
	}

	var db *C.sqlite3
	path = ensureZeroTermStr(path)
	rc := ResultCode(C.sqlite3_open_v2(unsafeStringCPtr(path), &db, C.int(flags|openNoMutex|openPrivateCache), nil)) //nolint:gocritic // nonsense
	runtime.KeepAlive(path)
	if db == nil {
		// Allocation failure: there is no handle to read diagnostics from.
		return nil, ResultNoMem.ToError()
	}
	conn := &Connection{Conn: Conn{db: db}}
	stat.opens.Inc()
	if rc != ResultOK {
		err := conn.LastError()
		if err == nil {
			err = rc.ToError()
		}
		_ = conn.Close()
		return nil, err
	}

	C.sqlite3_extended_result_codes(db, 1)

	// Legacy double-quoted string literals are never welcome.
	// The DQS verbs only exist since 3.29.
	if VersionNumber >= 3029000 {
		for _, flag := range []ConfigFlag{ConfigDQSDML, ConfigDQSDDL} {
			if err := conn.Config(flag, false); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
	}

	return conn, nil
}

// View returns the borrowed, read-only view of the handle.
// The view must not be used after the Connection is closed.
func (c *Connection) View() *Conn {
	return &c.Conn
}

// Config writes one boolean configuration flag.
func (c *Connection) Config(flag ConfigFlag, value bool) error {
	v := C.int(0)
	if value {
		v = 1
	}
	rc := ResultCode(C._sqlite0_db_config(c.db, C.int(flag), v, nil))
	return rc.ToError()
}

// Exec runs sql to completion, discarding any result rows.
func (c *Connection) Exec(sql string) error {
	sql = ensureZeroTermStr(sql)
	rc := ResultCode(C.sqlite3_exec(c.db, unsafeStringCPtr(sql), nil, nil, nil))
	runtime.KeepAlive(sql)
	if rc != ResultOK {
		if err := c.LastError(); err != nil {
			return err
		}
		return rc.ToError()
	}
	return nil
}

// SetBusyTimeout installs the engine's built-in busy handler with the given
// total wait budget.
func (c *Connection) SetBusyTimeout(dt time.Duration) error {
	rc := ResultCode(C.sqlite3_busy_timeout(c.db, C.int(dt/time.Millisecond)))
	return rc.ToError()
}

// SetAutoCheckpoint configures the WAL auto-checkpoint threshold in pages.
// n <= 0 disables auto-checkpointing.
func (c *Connection) SetAutoCheckpoint(n int) error {
	rc := ResultCode(C.sqlite3_wal_autocheckpoint(c.db, C.int(n)))
	return rc.ToError()
}

// Close releases the handle. The installed authorizer, if any, is cleared
// first; a failure to clear it never blocks the release. A second Close
// returns errAlreadyClosed.
//
// A non-OK result from the release itself means a collaborator leaked a child
// resource (an unfinalized statement, an open blob handle). That is a
// programming error the connection cannot repair, so it panics instead of
// returning the code as an ordinary error.
func (c *Connection) Close() error {
	if c.db == nil {
		return errAlreadyClosed
	}
	if c.hasAuthorizer {
		_ = c.ClearAuthorizer()
	}
	rc := ResultCode(C.sqlite3_close(c.db))
	if rc != ResultOK {
		panic(fmt.Sprintf("sqlite0: close failed with %#v: a statement or blob handle outlived its connection", rc))
	}
	c.db = nil
	stat.closes.Inc()
	return nil
}
