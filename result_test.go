// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite0

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIsSuccessExhaustive(t *testing.T) {
	for rc := range resultCodeNames {
		p := int32(rc) & 0xff
		want := p == 0 || p == 100 || p == 101
		require.Equal(t, want, rc.IsSuccess(), "code %#v", rc)
	}
}

func TestPrimaryIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rc := ResultCode(rapid.Int32().Draw(t, "rc"))
		require.Equal(t, rc.Primary(), rc.Primary().Primary())
		require.Equal(t, rc.Primary().IsSuccess(), rc.IsSuccess())
	})
}

func TestNewErrorRejectsSuccess(t *testing.T) {
	for _, rc := range []ResultCode{ResultOK, ResultRow, ResultDone, ResultOKSymlink, ResultOKLoadPermanently} {
		require.Panics(t, func() { _ = NewError(rc, "boom") }, "code %#v", rc)
	}
}

func TestRenderingRoundTrip(t *testing.T) {
	seen := make(map[string]ResultCode, len(resultCodeNames))
	for rc := range resultCodeNames {
		name := rc.GoString()
		prev, dup := seen[name]
		require.False(t, dup, "codes %d and %d render to the same debug name %q", int32(prev), int32(rc), name)
		seen[name] = rc
		require.NotEmpty(t, rc.String(), "code %q has empty display text", name)
	}
}

func TestRenderingUnknownCode(t *testing.T) {
	rc := ResultCode(424242)
	require.Equal(t, "sqlite0.ResultCode(424242)", rc.GoString())
	require.NotEmpty(t, rc.String())
}

func TestToError(t *testing.T) {
	require.NoError(t, ResultOK.ToError())
	require.NoError(t, ResultRow.ToError())
	require.NoError(t, ResultDone.ToError())

	err := ResultBusy.ToError()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, ResultBusy, e.Code())
	require.Equal(t, ResultBusy.Message(), e.Message())
	_, ok := e.ErrorOffset()
	require.False(t, ok)
}

func TestErrorMessageFallback(t *testing.T) {
	require.Equal(t, ResultBusy.Message(), NewError(ResultBusy, "").Message())
	require.Equal(t, "custom", NewError(ResultBusy, "custom").Message())
	require.NotEmpty(t, NewError(ResultBusy, "").Error())
}

func TestErrCode(t *testing.T) {
	err := NewError(ResultConstraintUnique, "dup")
	require.Equal(t, ResultConstraintUnique, ErrCode(err))
	require.Equal(t, ResultConstraintUnique, ErrCode(fmt.Errorf("insert row: %w", err)))
	require.Equal(t, ResultError, ErrCode(fmt.Errorf("not from the engine")))
}
