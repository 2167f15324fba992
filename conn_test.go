// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite0

import (
	"encoding/hex"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rand"
)

func openMemory(t *testing.T) *Connection {
	t.Helper()
	conn, err := Open(":memory:", OpenReadWrite|OpenCreate|OpenMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestVersion(t *testing.T) {
	require.NotEmpty(t, Version())
	require.Greater(t, VersionNumber, 3000000)
}

func TestOpenMissingDatabase(t *testing.T) {
	dir := t.TempDir()
	for _, flags := range []OpenFlags{OpenReadOnly, OpenReadWrite} {
		_, err := Open(filepath.Join(dir, "missing.db"), flags)
		require.Error(t, err, "flags %#x", int32(flags))
		var e *Error
		require.ErrorAs(t, err, &e)
		require.Equal(t, ResultCantOpen, e.Code().Primary())
		require.NotEmpty(t, e.Message())
	}
}

func TestOpenMemoryIgnoresPath(t *testing.T) {
	var garbage [8]byte
	_, _ = rand.New().Read(garbage[:])
	conn, err := Open("nonsense-"+hex.EncodeToString(garbage[:]), OpenReadWrite|OpenCreate|OpenMemory)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}

func TestReadOnly(t *testing.T) {
	conn := openMemory(t)
	ro, ok := conn.ReadOnly("main")
	require.True(t, ok)
	require.False(t, ro)
	_, ok = conn.ReadOnly("no_such_schema")
	require.False(t, ok)

	path := filepath.Join(t.TempDir(), "ro.db")
	w, err := Open(path, 0)
	require.NoError(t, err)
	require.NoError(t, w.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)"))
	require.NoError(t, w.Close())

	r, err := Open(path, OpenReadOnly)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	ro, ok = r.ReadOnly("main")
	require.True(t, ok)
	require.True(t, ro)
}

func TestAutocommit(t *testing.T) {
	conn := openMemory(t)
	require.True(t, conn.Autocommit())
	require.NoError(t, conn.Exec("BEGIN"))
	require.False(t, conn.Autocommit())
	require.NoError(t, conn.Exec("COMMIT"))
	require.True(t, conn.Autocommit())
	require.NoError(t, conn.Exec("BEGIN"))
	require.NoError(t, conn.Exec("ROLLBACK"))
	require.True(t, conn.Autocommit())
}

func TestTxnState(t *testing.T) {
	if VersionNumber < 3034000 {
		t.Skip("transaction-state queries need SQLite 3.34+")
	}
	conn := openMemory(t)
	state, ok := conn.TxnState("")
	require.True(t, ok)
	require.Equal(t, TxnNone, state)

	require.NoError(t, conn.Exec("BEGIN IMMEDIATE"))
	state, ok = conn.TxnState("main")
	require.True(t, ok)
	require.Equal(t, TxnWrite, state)
	require.NoError(t, conn.Exec("ROLLBACK"))

	require.NoError(t, conn.Exec("BEGIN; SELECT count(*) FROM sqlite_schema"))
	state, ok = conn.TxnState("main")
	require.True(t, ok)
	require.Equal(t, TxnRead, state)
	require.NoError(t, conn.Exec("COMMIT"))

	state, ok = conn.TxnState("main")
	require.True(t, ok)
	require.Equal(t, TxnNone, state)

	_, ok = conn.TxnState("no_such_schema")
	require.False(t, ok)
}

func TestConfigFlags(t *testing.T) {
	conn := openMemory(t)
	on, err := conn.GetConfig(ConfigEnableFKey)
	require.NoError(t, err)
	require.False(t, on)

	require.NoError(t, conn.Config(ConfigEnableFKey, true))
	on, err = conn.GetConfig(ConfigEnableFKey)
	require.NoError(t, err)
	require.True(t, on)

	require.NoError(t, conn.Config(ConfigEnableFKey, false))
	on, err = conn.GetConfig(ConfigEnableFKey)
	require.NoError(t, err)
	require.False(t, on)
}

func TestOpenDisablesDoubleQuotedStrings(t *testing.T) {
	if VersionNumber < 3029000 {
		t.Skip("DQS config verbs need SQLite 3.29+")
	}
	conn := openMemory(t)
	for _, flag := range []ConfigFlag{ConfigDQSDML, ConfigDQSDDL} {
		on, err := conn.GetConfig(flag)
		require.NoError(t, err)
		require.False(t, on, "flag %d", int32(flag))
	}
}

func TestConfigUnknownFlag(t *testing.T) {
	conn := openMemory(t)
	err := conn.Config(ConfigFlag(12345), true)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.False(t, e.Code().IsSuccess())
	require.NotEmpty(t, e.Message())
}

func TestLastError(t *testing.T) {
	conn := openMemory(t)
	require.NoError(t, conn.Exec("CREATE TABLE t (x INTEGER)"))
	require.NoError(t, conn.LastError())

	require.Error(t, conn.Exec("SELECT * FROM missing_table"))
	err := conn.LastError()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.False(t, e.Code().IsSuccess())
	require.NotEmpty(t, e.Message())
}

func TestErrorOffset(t *testing.T) {
	conn := openMemory(t)
	require.NoError(t, conn.Exec("CREATE TABLE t (x INTEGER)"))
	execErr := conn.Exec("SELECT * FRO t")
	require.Error(t, execErr)
	var e *Error
	require.ErrorAs(t, execErr, &e)
	if VersionNumber >= 3038000 {
		_, ok := e.ErrorOffset()
		require.True(t, ok)
	}
	e.ClearErrorOffset()
	_, ok := e.ErrorOffset()
	require.False(t, ok)
}

func TestCloseTwice(t *testing.T) {
	conn, err := Open(":memory:", OpenReadWrite|OpenCreate|OpenMemory)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	require.ErrorIs(t, conn.Close(), errAlreadyClosed)
}

func TestAuthorizer(t *testing.T) {
	conn := openMemory(t)
	require.NoError(t, conn.Exec("CREATE TABLE secrets (x INTEGER)"))

	err := conn.SetAuthorizer(func(action AuthAction, arg1, _, _, _ string) AuthResult {
		if action == AuthRead && arg1 == "secrets" {
			return AuthDeny
		}
		return AuthOK
	})
	require.NoError(t, err)
	execErr := conn.Exec("SELECT x FROM secrets")
	require.Error(t, execErr)
	require.Equal(t, ResultAuth, ErrCode(execErr).Primary())

	require.NoError(t, conn.ClearAuthorizer())
	require.NoError(t, conn.Exec("SELECT x FROM secrets"))
	require.NoError(t, conn.ClearAuthorizer())
}

func TestAuthorizerReplace(t *testing.T) {
	conn := openMemory(t)
	require.NoError(t, conn.SetAuthorizer(func(AuthAction, string, string, string, string) AuthResult {
		return AuthDeny
	}))
	require.Error(t, conn.Exec("SELECT 1"))

	require.NoError(t, conn.SetAuthorizer(func(AuthAction, string, string, string, string) AuthResult {
		return AuthOK
	}))
	require.NoError(t, conn.Exec("SELECT 1"))

	require.NoError(t, conn.SetAuthorizer(nil))
	require.NoError(t, conn.Exec("SELECT 1"))
}

func TestCloseWithAuthorizerInstalled(t *testing.T) {
	conn, err := Open(":memory:", OpenReadWrite|OpenCreate|OpenMemory)
	require.NoError(t, err)
	require.NoError(t, conn.SetAuthorizer(func(AuthAction, string, string, string, string) AuthResult {
		return AuthOK
	}))
	require.NoError(t, conn.Close())
}

func TestBusyTimeoutAndAutoCheckpoint(t *testing.T) {
	conn := openMemory(t)
	require.NoError(t, conn.SetBusyTimeout(250*time.Millisecond))
	require.NoError(t, conn.SetAutoCheckpoint(0))
	require.NoError(t, conn.SetAutoCheckpoint(1000))
}

func TestView(t *testing.T) {
	conn := openMemory(t)
	v := conn.View()
	require.True(t, v.Autocommit())
	ro, ok := v.ReadOnly("main")
	require.True(t, ok)
	require.False(t, ro)
}

func TestStats(t *testing.T) {
	before := ReadStats()
	conn, err := Open(":memory:", OpenReadWrite|OpenCreate|OpenMemory)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	after := ReadStats()
	require.Equal(t, before.Opens+1, after.Opens)
	require.Equal(t, before.Closes+1, after.Closes)
}
