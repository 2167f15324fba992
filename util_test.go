// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite0

import "testing"

func TestUnsafePtrNonNil(t *testing.T) {
	if unsafeStringPtr("\x00") == nil {
		t.Fatalf("got nil from unsafeStringPtr")
	}
	if unsafeStringCPtr("main\x00") == nil {
		t.Fatalf("got nil from unsafeStringCPtr")
	}
}

func TestEnsureZeroTermStr(t *testing.T) {
	if got := ensureZeroTermStr(""); got != "\x00" {
		t.Fatalf("unexpected result %q", got)
	}
	if got := ensureZeroTermStr("main"); got != "main\x00" {
		t.Fatalf("unexpected result %q", got)
	}
	if got := ensureZeroTermStr("main\x00"); got != "main\x00" {
		t.Fatalf("zero-terminated input was modified: %q", got)
	}
}
