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
)

// Conn is a borrowed, read-only view of a Connection's handle. It carries no
// ownership: it cannot release the handle and must not outlive the Connection
// it was obtained from.
type Conn struct {
	db *C.sqlite3
}

// ReadOnly reports whether the named attached schema (for example "main") is
// read-only. ok is false if no schema with that name is attached.
func (c *Conn) ReadOnly(schema string) (readonly, ok bool) {
	schema = ensureZeroTermStr(schema)
	res := C.sqlite3_db_readonly(c.db, unsafeStringCPtr(schema))
	runtime.KeepAlive(schema)
	switch res {
	case -1:
		return false, false
	case 0:
		return false, true
	case 1:
		return true, true
	default:
		// The engine documents exactly three outcomes.
		panic(fmt.Sprintf("sqlite0: unhandled result %d from sqlite3_db_readonly", int(res)))
	}
}

// TxnState returns the transaction state of the named schema. An empty schema
// name queries the highest state across all attached schemas. ok is false if
// no schema with that name is attached (or, before SQLite 3.34, always).
func (c *Conn) TxnState(schema string) (state TransactionState, ok bool) {
	var cSchema *C.char
	if schema != "" {
		schema = ensureZeroTermStr(schema)
		cSchema = unsafeStringCPtr(schema)
	}
	res := C._sqlite0_txn_state(c.db, cSchema)
	runtime.KeepAlive(schema)
	switch res {
	case -1:
		return 0, false
	case C.SQLITE_TXN_NONE:
		return TxnNone, true
	case C.SQLITE_TXN_READ:
		return TxnRead, true
	case C.SQLITE_TXN_WRITE:
		return TxnWrite, true
	default:
		panic(fmt.Sprintf("sqlite0: unknown transaction state %d", int(res)))
	}
}

// GetConfig reads the current value of a boolean configuration flag.
func (c *Conn) GetConfig(flag ConfigFlag) (bool, error) {
	var out C.int
	rc := ResultCode(C._sqlite0_db_config(c.db, C.int(flag), -1, &out))
	if err := rc.ToError(); err != nil {
		return false, err
	}
	return out != 0, nil
}

// Autocommit reports whether the connection is in autocommit mode.
// Autocommit is on by default, off after BEGIN, and back on after a COMMIT
// or ROLLBACK.
func (c *Conn) Autocommit() bool {
	return C.sqlite3_get_autocommit(c.db) != 0
}

// LastError returns the connection's last recorded failure as a *Error, or
// nil if the last call on this handle succeeded. It must be called before any
// other call on the same handle: the engine's message buffer is only valid
// until the handle's state changes again, so the text is copied out here.
func (c *Conn) LastError() error {
	e := c.extractError()
	if e == nil {
		return nil
	}
	stat.errors.Inc()
	return e
}

func (c *Conn) extractError() *Error {
	rc := ResultCode(C.sqlite3_extended_errcode(c.db))
	if rc.IsSuccess() {
		return nil
	}
	offset := int(C._sqlite0_error_offset(c.db))
	msg := C.GoString(C.sqlite3_errmsg(c.db))
	return &Error{code: rc, msg: msg, offset: offset}
}
