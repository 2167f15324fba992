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
	"sync"
	"unsafe"
)

// AuthAction identifies the operation an authorizer is consulted about.
//
// https://www.sqlite.org/c3ref/c_alter_table.html
type AuthAction int32

const (
	AuthCopy              AuthAction = 0
	AuthCreateIndex       AuthAction = 1
	AuthCreateTable       AuthAction = 2
	AuthCreateTempIndex   AuthAction = 3
	AuthCreateTempTable   AuthAction = 4
	AuthCreateTempTrigger AuthAction = 5
	AuthCreateTempView    AuthAction = 6
	AuthCreateTrigger     AuthAction = 7
	AuthCreateView        AuthAction = 8
	AuthDelete            AuthAction = 9
	AuthDropIndex         AuthAction = 10
	AuthDropTable         AuthAction = 11
	AuthDropTempIndex     AuthAction = 12
	AuthDropTempTable     AuthAction = 13
	AuthDropTempTrigger   AuthAction = 14
	AuthDropTempView      AuthAction = 15
	AuthDropTrigger       AuthAction = 16
	AuthDropView          AuthAction = 17
	AuthInsert            AuthAction = 18
	AuthPragma            AuthAction = 19
	AuthRead              AuthAction = 20
	AuthSelect            AuthAction = 21
	AuthTransaction       AuthAction = 22
	AuthUpdate            AuthAction = 23
	AuthAttach            AuthAction = 24
	AuthDetach            AuthAction = 25
	AuthAlterTable        AuthAction = 26
	AuthReindex           AuthAction = 27
	AuthAnalyze           AuthAction = 28
	AuthCreateVTable      AuthAction = 29
	AuthDropVTable        AuthAction = 30
	AuthFunction          AuthAction = 31
	AuthSavepoint         AuthAction = 32
	AuthRecursive         AuthAction = 33
)

// AuthResult is an authorizer's verdict on a single action.
type AuthResult int32

const (
	// AuthOK allows the action.
	AuthOK AuthResult = 0
	// AuthDeny fails the whole statement with an authorization error.
	AuthDeny AuthResult = 1
	// AuthIgnore silently disallows the specific action: the statement
	// proceeds, but e.g. a read resolves to NULL.
	AuthIgnore AuthResult = 2
)

// Authorizer is consulted by the engine while statements are being prepared
// on the connection. The string arguments depend on action; absent ones are
// empty.
type Authorizer func(action AuthAction, arg1, arg2, database, trigger string) AuthResult

// The engine hands the callback only an opaque pointer, so installed
// authorizers are kept here keyed by the handle address.
var authorizers struct {
	mu sync.Mutex
	m  map[uintptr]Authorizer
}

func lookupAuthorizer(key uintptr) Authorizer {
	authorizers.mu.Lock()
	defer authorizers.mu.Unlock()
	return authorizers.m[key]
}

// SetAuthorizer installs fn as the connection's authorizer, retiring any
// previously installed one. SetAuthorizer(nil) is equivalent to
// ClearAuthorizer. The slot is cleared automatically when the Connection is
// closed.
func (c *Connection) SetAuthorizer(fn Authorizer) error {
	if fn == nil {
		return c.ClearAuthorizer()
	}
	key := uintptr(unsafe.Pointer(c.db))
	authorizers.mu.Lock()
	if authorizers.m == nil {
		authorizers.m = make(map[uintptr]Authorizer)
	}
	authorizers.m[key] = fn
	authorizers.mu.Unlock()
	rc := ResultCode(C._sqlite0_set_authorizer(c.db, 1))
	if err := rc.ToError(); err != nil {
		authorizers.mu.Lock()
		delete(authorizers.m, key)
		authorizers.mu.Unlock()
		return err
	}
	c.hasAuthorizer = true
	return nil
}

// ClearAuthorizer removes the installed authorizer, if any. Safe to call
// repeatedly.
func (c *Connection) ClearAuthorizer() error {
	if !c.hasAuthorizer {
		return nil
	}
	rc := ResultCode(C._sqlite0_set_authorizer(c.db, 0))
	key := uintptr(unsafe.Pointer(c.db))
	authorizers.mu.Lock()
	delete(authorizers.m, key)
	authorizers.mu.Unlock()
	c.hasAuthorizer = false
	return rc.ToError()
}
