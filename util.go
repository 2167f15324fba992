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
import (
	"reflect"
	"unsafe"
)

func ensureZeroTermStr(s string) string {
	if len(s) == 0 || s[len(s)-1] != 0 {
		s += "\x00"
	}
	return s
}

func unsafeStringPtr(s string) unsafe.Pointer {
	return unsafe.Pointer((*reflect.StringHeader)(unsafe.Pointer(&s)).Data)
}

func unsafeStringCPtr(s string) *C.char {
	return (*C.char)(unsafeStringPtr(s))
}
