// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite0

/*
#cgo CFLAGS: -std=gnu99
#cgo LDFLAGS: -lsqlite3

#include "sqlite-shim.h"
*/
import "C"
import "sync"

var (
	initErr error
)

func init() {
	rc := C._sqlite0_enable_logging()
	if rc != C.SQLITE_OK {
		initErr = NewError(ResultCode(rc), "sqlite0: failed to install log callback")
	}
	rc = C.sqlite3_initialize()
	if rc != C.SQLITE_OK {
		initErr = NewError(ResultCode(rc), "sqlite0: failed to initialize library")
	}
}

// LogFunc receives log lines emitted by the SQLite core itself.
type LogFunc func(code ResultCode, msg string)

var (
	logFuncMu sync.Mutex
	logFunc   LogFunc = func(code ResultCode, msg string) {}
)

// SetLogf routes the engine's internal log output to fn.
// fn may be called from any thread the engine runs on.
func SetLogf(fn LogFunc) {
	logFuncMu.Lock()
	defer logFuncMu.Unlock()

	logFunc = fn
}

// Version returns the run-time SQLite library version ("3.x.y").
func Version() string {
	if initErr != nil {
		return ""
	}
	return C.GoString(C.sqlite3_libversion())
}
