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
	"errors"
	"fmt"
)

// ResultCode is the numeric result of a SQLite call. The low 8 bits form the
// primary code (the broad category); the full value is the extended code.
// The numeric values are frozen by the SQLite ABI.
//
// https://www.sqlite.org/rescode.html
type ResultCode int32

// Primary result codes.
const (
	ResultOK         ResultCode = 0
	ResultError      ResultCode = 1
	ResultInternal   ResultCode = 2
	ResultPerm       ResultCode = 3
	ResultAbort      ResultCode = 4
	ResultBusy       ResultCode = 5
	ResultLocked     ResultCode = 6
	ResultNoMem      ResultCode = 7
	ResultReadOnly   ResultCode = 8
	ResultInterrupt  ResultCode = 9
	ResultIOErr      ResultCode = 10
	ResultCorrupt    ResultCode = 11
	ResultNotFound   ResultCode = 12
	ResultFull       ResultCode = 13
	ResultCantOpen   ResultCode = 14
	ResultProtocol   ResultCode = 15
	ResultEmpty      ResultCode = 16
	ResultSchema     ResultCode = 17
	ResultTooBig     ResultCode = 18
	ResultConstraint ResultCode = 19
	ResultMismatch   ResultCode = 20
	ResultMisuse     ResultCode = 21
	ResultNoLFS      ResultCode = 22
	ResultAuth       ResultCode = 23
	ResultFormat     ResultCode = 24
	ResultRange      ResultCode = 25
	ResultNotADB     ResultCode = 26
	ResultNotice     ResultCode = 27
	ResultWarning    ResultCode = 28
	ResultRow        ResultCode = 100
	ResultDone       ResultCode = 101
)

// Extended result codes.
const (
	ResultOKLoadPermanently      ResultCode = ResultOK | (1 << 8)
	ResultOKSymlink              ResultCode = ResultOK | (2 << 8)
	ResultErrorMissingCollSeq    ResultCode = ResultError | (1 << 8)
	ResultErrorRetry             ResultCode = ResultError | (2 << 8)
	ResultErrorSnapshot          ResultCode = ResultError | (3 << 8)
	ResultAbortRollback          ResultCode = ResultAbort | (2 << 8)
	ResultBusyRecovery           ResultCode = ResultBusy | (1 << 8)
	ResultBusySnapshot           ResultCode = ResultBusy | (2 << 8)
	ResultBusyTimeout            ResultCode = ResultBusy | (3 << 8)
	ResultLockedSharedCache      ResultCode = ResultLocked | (1 << 8)
	ResultLockedVTab             ResultCode = ResultLocked | (2 << 8)
	ResultReadOnlyRecovery       ResultCode = ResultReadOnly | (1 << 8)
	ResultReadOnlyCantLock       ResultCode = ResultReadOnly | (2 << 8)
	ResultReadOnlyRollback       ResultCode = ResultReadOnly | (3 << 8)
	ResultReadOnlyDBMoved        ResultCode = ResultReadOnly | (4 << 8)
	ResultReadOnlyCantInit       ResultCode = ResultReadOnly | (5 << 8)
	ResultReadOnlyDirectory      ResultCode = ResultReadOnly | (6 << 8)
	ResultIOErrRead              ResultCode = ResultIOErr | (1 << 8)
	ResultIOErrShortRead         ResultCode = ResultIOErr | (2 << 8)
	ResultIOErrWrite             ResultCode = ResultIOErr | (3 << 8)
	ResultIOErrFsync             ResultCode = ResultIOErr | (4 << 8)
	ResultIOErrDirFsync          ResultCode = ResultIOErr | (5 << 8)
	ResultIOErrTruncate          ResultCode = ResultIOErr | (6 << 8)
	ResultIOErrFstat             ResultCode = ResultIOErr | (7 << 8)
	ResultIOErrUnlock            ResultCode = ResultIOErr | (8 << 8)
	ResultIOErrRDLock            ResultCode = ResultIOErr | (9 << 8)
	ResultIOErrDelete            ResultCode = ResultIOErr | (10 << 8)
	ResultIOErrBlocked           ResultCode = ResultIOErr | (11 << 8)
	ResultIOErrNoMem             ResultCode = ResultIOErr | (12 << 8)
	ResultIOErrAccess            ResultCode = ResultIOErr | (13 << 8)
	ResultIOErrCheckReservedLock ResultCode = ResultIOErr | (14 << 8)
	ResultIOErrLock              ResultCode = ResultIOErr | (15 << 8)
	ResultIOErrClose             ResultCode = ResultIOErr | (16 << 8)
	ResultIOErrDirClose          ResultCode = ResultIOErr | (17 << 8)
	ResultIOErrSHMOpen           ResultCode = ResultIOErr | (18 << 8)
	ResultIOErrSHMSize           ResultCode = ResultIOErr | (19 << 8)
	ResultIOErrSHMLock           ResultCode = ResultIOErr | (20 << 8)
	ResultIOErrSHMMap            ResultCode = ResultIOErr | (21 << 8)
	ResultIOErrSeek              ResultCode = ResultIOErr | (22 << 8)
	ResultIOErrDeleteNoEnt       ResultCode = ResultIOErr | (23 << 8)
	ResultIOErrMMap              ResultCode = ResultIOErr | (24 << 8)
	ResultIOErrGetTempPath       ResultCode = ResultIOErr | (25 << 8)
	ResultIOErrConvPath          ResultCode = ResultIOErr | (26 << 8)
	ResultIOErrVNode             ResultCode = ResultIOErr | (27 << 8)
	ResultIOErrAuth              ResultCode = ResultIOErr | (28 << 8)
	ResultIOErrBeginAtomic       ResultCode = ResultIOErr | (29 << 8)
	ResultIOErrCommitAtomic      ResultCode = ResultIOErr | (30 << 8)
	ResultIOErrRollbackAtomic    ResultCode = ResultIOErr | (31 << 8)
	ResultIOErrData              ResultCode = ResultIOErr | (32 << 8)
	ResultIOErrCorruptFS         ResultCode = ResultIOErr | (33 << 8)
	ResultCorruptVTab            ResultCode = ResultCorrupt | (1 << 8)
	ResultCorruptSequence        ResultCode = ResultCorrupt | (2 << 8)
	ResultCorruptIndex           ResultCode = ResultCorrupt | (3 << 8)
	ResultCantOpenNoTempDir      ResultCode = ResultCantOpen | (1 << 8)
	ResultCantOpenIsDir          ResultCode = ResultCantOpen | (2 << 8)
	ResultCantOpenFullPath       ResultCode = ResultCantOpen | (3 << 8)
	ResultCantOpenConvPath       ResultCode = ResultCantOpen | (4 << 8)
	ResultCantOpenDirtyWAL       ResultCode = ResultCantOpen | (5 << 8)
	ResultCantOpenSymlink        ResultCode = ResultCantOpen | (6 << 8)
	ResultConstraintCheck        ResultCode = ResultConstraint | (1 << 8)
	ResultConstraintCommitHook   ResultCode = ResultConstraint | (2 << 8)
	ResultConstraintForeignKey   ResultCode = ResultConstraint | (3 << 8)
	ResultConstraintFunction     ResultCode = ResultConstraint | (4 << 8)
	ResultConstraintNotNull      ResultCode = ResultConstraint | (5 << 8)
	ResultConstraintPrimaryKey   ResultCode = ResultConstraint | (6 << 8)
	ResultConstraintTrigger      ResultCode = ResultConstraint | (7 << 8)
	ResultConstraintUnique       ResultCode = ResultConstraint | (8 << 8)
	ResultConstraintVTab         ResultCode = ResultConstraint | (9 << 8)
	ResultConstraintRowID        ResultCode = ResultConstraint | (10 << 8)
	ResultConstraintPinned       ResultCode = ResultConstraint | (11 << 8)
	ResultConstraintDataType     ResultCode = ResultConstraint | (12 << 8)
	ResultNoticeRecoverWAL       ResultCode = ResultNotice | (1 << 8)
	ResultNoticeRecoverRollback  ResultCode = ResultNotice | (2 << 8)
	ResultNoticeRBU              ResultCode = ResultNotice | (3 << 8)
	ResultWarningAutoIndex       ResultCode = ResultWarning | (1 << 8)
	ResultAuthUser               ResultCode = ResultAuth | (1 << 8)
)

// Primary masks the code down to its primary (category) code.
func (rc ResultCode) Primary() ResultCode {
	return rc & 0xff
}

// IsSuccess reports whether the primary code is one of OK, ROW or DONE.
// Every other primary code denotes failure.
func (rc ResultCode) IsSuccess() bool {
	switch rc.Primary() {
	case ResultOK, ResultRow, ResultDone:
		return true
	default:
		return false
	}
}

// Message returns the engine's canned English text for the code.
func (rc ResultCode) Message() string {
	return C.GoString(C.sqlite3_errstr(C.int(rc)))
}

// String returns the same human-readable text as Message.
func (rc ResultCode) String() string {
	return rc.Message()
}

// GoString returns the SQLite C constant name for known codes, and a tagged
// numeric form for everything else.
func (rc ResultCode) GoString() string {
	if name, ok := resultCodeNames[rc]; ok {
		return name
	}
	return fmt.Sprintf("sqlite0.ResultCode(%d)", int32(rc))
}

// ToError converts the code to an error: nil for success codes, a *Error with
// the canned message otherwise. Use this at call sites that have no handle to
// read a richer diagnostic from.
func (rc ResultCode) ToError() error {
	if rc.IsSuccess() {
		return nil
	}
	return &Error{code: rc, offset: -1}
}

var resultCodeNames = map[ResultCode]string{
	ResultOK:         "SQLITE_OK",
	ResultError:      "SQLITE_ERROR",
	ResultInternal:   "SQLITE_INTERNAL",
	ResultPerm:       "SQLITE_PERM",
	ResultAbort:      "SQLITE_ABORT",
	ResultBusy:       "SQLITE_BUSY",
	ResultLocked:     "SQLITE_LOCKED",
	ResultNoMem:      "SQLITE_NOMEM",
	ResultReadOnly:   "SQLITE_READONLY",
	ResultInterrupt:  "SQLITE_INTERRUPT",
	ResultIOErr:      "SQLITE_IOERR",
	ResultCorrupt:    "SQLITE_CORRUPT",
	ResultNotFound:   "SQLITE_NOTFOUND",
	ResultFull:       "SQLITE_FULL",
	ResultCantOpen:   "SQLITE_CANTOPEN",
	ResultProtocol:   "SQLITE_PROTOCOL",
	ResultEmpty:      "SQLITE_EMPTY",
	ResultSchema:     "SQLITE_SCHEMA",
	ResultTooBig:     "SQLITE_TOOBIG",
	ResultConstraint: "SQLITE_CONSTRAINT",
	ResultMismatch:   "SQLITE_MISMATCH",
	ResultMisuse:     "SQLITE_MISUSE",
	ResultNoLFS:      "SQLITE_NOLFS",
	ResultAuth:       "SQLITE_AUTH",
	ResultFormat:     "SQLITE_FORMAT",
	ResultRange:      "SQLITE_RANGE",
	ResultNotADB:     "SQLITE_NOTADB",
	ResultNotice:     "SQLITE_NOTICE",
	ResultWarning:    "SQLITE_WARNING",
	ResultRow:        "SQLITE_ROW",
	ResultDone:       "SQLITE_DONE",

	ResultOKLoadPermanently:      "SQLITE_OK_LOAD_PERMANENTLY",
	ResultOKSymlink:              "SQLITE_OK_SYMLINK",
	ResultErrorMissingCollSeq:    "SQLITE_ERROR_MISSING_COLLSEQ",
	ResultErrorRetry:             "SQLITE_ERROR_RETRY",
	ResultErrorSnapshot:          "SQLITE_ERROR_SNAPSHOT",
	ResultAbortRollback:          "SQLITE_ABORT_ROLLBACK",
	ResultBusyRecovery:           "SQLITE_BUSY_RECOVERY",
	ResultBusySnapshot:           "SQLITE_BUSY_SNAPSHOT",
	ResultBusyTimeout:            "SQLITE_BUSY_TIMEOUT",
	ResultLockedSharedCache:      "SQLITE_LOCKED_SHAREDCACHE",
	ResultLockedVTab:             "SQLITE_LOCKED_VTAB",
	ResultReadOnlyRecovery:       "SQLITE_READONLY_RECOVERY",
	ResultReadOnlyCantLock:       "SQLITE_READONLY_CANTLOCK",
	ResultReadOnlyRollback:       "SQLITE_READONLY_ROLLBACK",
	ResultReadOnlyDBMoved:        "SQLITE_READONLY_DBMOVED",
	ResultReadOnlyCantInit:       "SQLITE_READONLY_CANTINIT",
	ResultReadOnlyDirectory:      "SQLITE_READONLY_DIRECTORY",
	ResultIOErrRead:              "SQLITE_IOERR_READ",
	ResultIOErrShortRead:         "SQLITE_IOERR_SHORT_READ",
	ResultIOErrWrite:             "SQLITE_IOERR_WRITE",
	ResultIOErrFsync:             "SQLITE_IOERR_FSYNC",
	ResultIOErrDirFsync:          "SQLITE_IOERR_DIR_FSYNC",
	ResultIOErrTruncate:          "SQLITE_IOERR_TRUNCATE",
	ResultIOErrFstat:             "SQLITE_IOERR_FSTAT",
	ResultIOErrUnlock:            "SQLITE_IOERR_UNLOCK",
	ResultIOErrRDLock:            "SQLITE_IOERR_RDLOCK",
	ResultIOErrDelete:            "SQLITE_IOERR_DELETE",
	ResultIOErrBlocked:           "SQLITE_IOERR_BLOCKED",
	ResultIOErrNoMem:             "SQLITE_IOERR_NOMEM",
	ResultIOErrAccess:            "SQLITE_IOERR_ACCESS",
	ResultIOErrCheckReservedLock: "SQLITE_IOERR_CHECKRESERVEDLOCK",
	ResultIOErrLock:              "SQLITE_IOERR_LOCK",
	ResultIOErrClose:             "SQLITE_IOERR_CLOSE",
	ResultIOErrDirClose:          "SQLITE_IOERR_DIR_CLOSE",
	ResultIOErrSHMOpen:           "SQLITE_IOERR_SHMOPEN",
	ResultIOErrSHMSize:           "SQLITE_IOERR_SHMSIZE",
	ResultIOErrSHMLock:           "SQLITE_IOERR_SHMLOCK",
	ResultIOErrSHMMap:            "SQLITE_IOERR_SHMMAP",
	ResultIOErrSeek:              "SQLITE_IOERR_SEEK",
	ResultIOErrDeleteNoEnt:       "SQLITE_IOERR_DELETE_NOENT",
	ResultIOErrMMap:              "SQLITE_IOERR_MMAP",
	ResultIOErrGetTempPath:       "SQLITE_IOERR_GETTEMPPATH",
	ResultIOErrConvPath:          "SQLITE_IOERR_CONVPATH",
	ResultIOErrVNode:             "SQLITE_IOERR_VNODE",
	ResultIOErrAuth:              "SQLITE_IOERR_AUTH",
	ResultIOErrBeginAtomic:       "SQLITE_IOERR_BEGIN_ATOMIC",
	ResultIOErrCommitAtomic:      "SQLITE_IOERR_COMMIT_ATOMIC",
	ResultIOErrRollbackAtomic:    "SQLITE_IOERR_ROLLBACK_ATOMIC",
	ResultIOErrData:              "SQLITE_IOERR_DATA",
	ResultIOErrCorruptFS:         "SQLITE_IOERR_CORRUPTFS",
	ResultCorruptVTab:            "SQLITE_CORRUPT_VTAB",
	ResultCorruptSequence:        "SQLITE_CORRUPT_SEQUENCE",
	ResultCorruptIndex:           "SQLITE_CORRUPT_INDEX",
	ResultCantOpenNoTempDir:      "SQLITE_CANTOPEN_NOTEMPDIR",
	ResultCantOpenIsDir:          "SQLITE_CANTOPEN_ISDIR",
	ResultCantOpenFullPath:       "SQLITE_CANTOPEN_FULLPATH",
	ResultCantOpenConvPath:       "SQLITE_CANTOPEN_CONVPATH",
	ResultCantOpenDirtyWAL:       "SQLITE_CANTOPEN_DIRTYWAL",
	ResultCantOpenSymlink:        "SQLITE_CANTOPEN_SYMLINK",
	ResultConstraintCheck:        "SQLITE_CONSTRAINT_CHECK",
	ResultConstraintCommitHook:   "SQLITE_CONSTRAINT_COMMITHOOK",
	ResultConstraintForeignKey:   "SQLITE_CONSTRAINT_FOREIGNKEY",
	ResultConstraintFunction:     "SQLITE_CONSTRAINT_FUNCTION",
	ResultConstraintNotNull:      "SQLITE_CONSTRAINT_NOTNULL",
	ResultConstraintPrimaryKey:   "SQLITE_CONSTRAINT_PRIMARYKEY",
	ResultConstraintTrigger:      "SQLITE_CONSTRAINT_TRIGGER",
	ResultConstraintUnique:       "SQLITE_CONSTRAINT_UNIQUE",
	ResultConstraintVTab:         "SQLITE_CONSTRAINT_VTAB",
	ResultConstraintRowID:        "SQLITE_CONSTRAINT_ROWID",
	ResultConstraintPinned:       "SQLITE_CONSTRAINT_PINNED",
	ResultConstraintDataType:     "SQLITE_CONSTRAINT_DATATYPE",
	ResultNoticeRecoverWAL:       "SQLITE_NOTICE_RECOVER_WAL",
	ResultNoticeRecoverRollback:  "SQLITE_NOTICE_RECOVER_ROLLBACK",
	ResultNoticeRBU:              "SQLITE_NOTICE_RBU",
	ResultWarningAutoIndex:       "SQLITE_WARNING_AUTOINDEX",
	ResultAuthUser:               "SQLITE_AUTH_USER",
}

// Error is a structured SQLite failure: a non-success result code, an
// optional engine-supplied message, and an optional byte offset into the
// offending input.
type Error struct {
	code   ResultCode
	msg    string
	offset int // -1 when absent
}

// NewError builds an error from a code and message. An empty message means
// "use the code's canned text". Panics if code represents success: success
// codes are not errors, and constructing one is a contract violation.
func NewError(code ResultCode, msg string) *Error {
	if code.IsSuccess() {
		panic(fmt.Sprintf("sqlite0: NewError called with successful result code %#v", code))
	}
	return &Error{code: code, msg: msg, offset: -1}
}

// Code returns the result code that produced the error.
// Guaranteed to not be a success code.
func (e *Error) Code() ResultCode {
	return e.code
}

// Message returns the error's text: the engine-supplied message if there is
// one, the code's canned text otherwise. Guaranteed non-empty.
func (e *Error) Message() string {
	if e.msg == "" {
		return e.code.Message()
	}
	return e.msg
}

// ErrorOffset returns the byte offset of the token that caused the error
// within the offending input, when the engine could supply one.
func (e *Error) ErrorOffset() (int, bool) {
	if e.offset < 0 {
		return 0, false
	}
	return e.offset, true
}

// ClearErrorOffset discards the offset. Useful when propagating the error to
// a caller that never saw the input text the offset points into.
func (e *Error) ClearErrorOffset() {
	e.offset = -1
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlite0: %s [%d]", e.Message(), int32(e.code))
}

// ErrCode extracts the result code from err. Errors that did not come from
// this package map to the generic ResultError.
func ErrCode(err error) ResultCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return ResultError
}
