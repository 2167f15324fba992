// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite0

/*
#include <sqlite3.h>
*/
import "C"
import "unsafe"

//export _sqlite0LogFunc
func _sqlite0LogFunc(_ unsafe.Pointer, cCode C.int, cMsg *C.char) {
	msg := ""
	if cMsg != nil {
		msg = C.GoString(cMsg)
	}

	logFuncMu.Lock()
	defer logFuncMu.Unlock()

	logFunc(ResultCode(cCode), msg)
}

//export _sqlite0Authorize
func _sqlite0Authorize(arg unsafe.Pointer, op C.int, cArg1, cArg2, cDB, cTrigger *C.char) C.int {
	fn := lookupAuthorizer(uintptr(arg))
	if fn == nil {
		// The slot was cleared while a prepare was in flight; fail closed.
		return C.SQLITE_DENY
	}
	res := fn(AuthAction(op), goStr(cArg1), goStr(cArg2), goStr(cDB), goStr(cTrigger))
	return C.int(res)
}

func goStr(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
