// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqlite0 manages the lifetime of a raw SQLite database handle.
//
// A Connection owns the underlying sqlite3 object: it is opened once,
// configured through Config, and released exactly once by Close. A Conn is a
// non-owning view of the same handle; collaborators that only need to inspect
// connection state (read-only schemas, transaction state, the last recorded
// error) take a *Conn obtained from Connection.View and must not outlive the
// Connection it came from.
//
// The package always opens connections with SQLITE_OPEN_NOMUTEX and
// SQLITE_OPEN_PRIVATECACHE: thread exclusion is the caller's job. A Connection
// may be handed from one goroutine to another, but must never be used from two
// goroutines at the same time.
//
// Builds against the system SQLite library. Transaction-state queries need
// SQLite 3.34+ and error offsets need 3.38+; on older libraries those probes
// report "not available" instead of failing.
package sqlite0
