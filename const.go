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

// VersionNumber is the compile-time SQLite version as an integer
// (X*1000000 + Y*1000 + Z).
const VersionNumber = C.SQLITE_VERSION_NUMBER

// OpenFlags control how Open acquires the database handle.
// The zero value stands for the default readwrite|create|uri combination.
//
// https://www.sqlite.org/c3ref/open.html
type OpenFlags int32

const (
	// OpenReadOnly opens the database in read-only mode.
	// The database must already exist.
	OpenReadOnly OpenFlags = C.SQLITE_OPEN_READONLY
	// OpenReadWrite opens the database for reading and writing if possible,
	// or reading only if the file is write protected.
	OpenReadWrite OpenFlags = C.SQLITE_OPEN_READWRITE
	// OpenCreate creates the database if it does not already exist.
	// Must be combined with OpenReadWrite.
	OpenCreate OpenFlags = C.SQLITE_OPEN_CREATE
	// OpenURI allows the path argument to be interpreted as a URI.
	OpenURI OpenFlags = C.SQLITE_OPEN_URI
	// OpenMemory opens an in-memory database. The path argument is ignored.
	OpenMemory OpenFlags = C.SQLITE_OPEN_MEMORY

	openNoMutex      OpenFlags = C.SQLITE_OPEN_NOMUTEX
	openPrivateCache OpenFlags = C.SQLITE_OPEN_PRIVATECACHE
)

// ConfigFlag identifies a boolean per-connection configuration option.
// Availability of the later verbs depends on the library version.
//
// https://www.sqlite.org/c3ref/c_dbconfig_defensive.html
type ConfigFlag int32

const (
	ConfigEnableFKey          ConfigFlag = C.SQLITE_DBCONFIG_ENABLE_FKEY
	ConfigEnableTrigger       ConfigFlag = C.SQLITE_DBCONFIG_ENABLE_TRIGGER
	ConfigEnableView          ConfigFlag = C.SQLITE_DBCONFIG_ENABLE_VIEW
	ConfigFTS3Tokenizer       ConfigFlag = C.SQLITE_DBCONFIG_ENABLE_FTS3_TOKENIZER
	ConfigEnableLoadExtension ConfigFlag = C.SQLITE_DBCONFIG_ENABLE_LOAD_EXTENSION
	ConfigNoCheckpointOnClose ConfigFlag = C.SQLITE_DBCONFIG_NO_CKPT_ON_CLOSE
	ConfigEnableQPSG          ConfigFlag = C.SQLITE_DBCONFIG_ENABLE_QPSG
	ConfigTriggerEQP          ConfigFlag = C.SQLITE_DBCONFIG_TRIGGER_EQP
	ConfigResetDatabase       ConfigFlag = C.SQLITE_DBCONFIG_RESET_DATABASE
	ConfigDefensive           ConfigFlag = C.SQLITE_DBCONFIG_DEFENSIVE
	ConfigWritableSchema      ConfigFlag = C.SQLITE_DBCONFIG_WRITABLE_SCHEMA
	ConfigLegacyAlterTable    ConfigFlag = C.SQLITE_DBCONFIG_LEGACY_ALTER_TABLE
	ConfigDQSDML              ConfigFlag = C.SQLITE_DBCONFIG_DQS_DML
	ConfigDQSDDL              ConfigFlag = C.SQLITE_DBCONFIG_DQS_DDL
	ConfigLegacyFileFormat    ConfigFlag = C.SQLITE_DBCONFIG_LEGACY_FILE_FORMAT
	ConfigTrustedSchema       ConfigFlag = C.SQLITE_DBCONFIG_TRUSTED_SCHEMA
	ConfigStmtScanStatus      ConfigFlag = C.SQLITE_DBCONFIG_STMT_SCANSTATUS
	ConfigReverseScanOrder    ConfigFlag = C.SQLITE_DBCONFIG_REVERSE_SCANORDER
)

// TransactionState describes the transaction state of a database file.
type TransactionState int32

const (
	TxnNone  TransactionState = C.SQLITE_TXN_NONE
	TxnRead  TransactionState = C.SQLITE_TXN_READ
	TxnWrite TransactionState = C.SQLITE_TXN_WRITE
)

func (s TransactionState) String() string {
	switch s {
	case TxnNone:
		return "none"
	case TxnRead:
		return "read"
	case TxnWrite:
		return "write"
	default:
		return "unknown"
	}
}
