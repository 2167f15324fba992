// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite0

import "go.uber.org/atomic"

// Stats is a snapshot of process-wide handle accounting.
type Stats struct {
	Opens  int64 // handles acquired, including ones torn down by a failed open
	Closes int64 // handles released
	Errors int64 // errors extracted from handles via LastError
}

var stat struct {
	opens  atomic.Int64
	closes atomic.Int64
	errors atomic.Int64
}

// ReadStats returns current handle accounting. Useful for leak checks in
// tests and for surfacing in service metrics.
func ReadStats() Stats {
	return Stats{
		Opens:  stat.opens.Load(),
		Closes: stat.closes.Load(),
		Errors: stat.errors.Load(),
	}
}
