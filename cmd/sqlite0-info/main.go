// Copyright 2024 The sqlite0 Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// sqlite0-info opens a database and prints what the connection layer can
// tell about it without running any user SQL: library version, autocommit
// and transaction state, schema writability and the boolean config flags.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/dbretro/sqlite0"
)

var argv struct {
	readOnly    bool
	memory      bool
	noURI       bool
	busyTimeout time.Duration
	verbose     bool
}

func main() {
	pflag.BoolVar(&argv.readOnly, "readonly", false, "open the database read-only")
	pflag.BoolVar(&argv.memory, "memory", false, "open an in-memory database (path is ignored)")
	pflag.BoolVar(&argv.noURI, "no-uri", false, "do not interpret the path as a URI")
	pflag.DurationVar(&argv.busyTimeout, "busy-timeout", time.Second, "busy handler wait budget")
	pflag.BoolVar(&argv.verbose, "verbose", false, "log engine diagnostics")
	pflag.Parse()

	level := slog.LevelInfo
	if argv.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	if pflag.NArg() != 1 && !argv.memory {
		fmt.Fprintln(os.Stderr, "usage: sqlite0-info [flags] <database>")
		pflag.PrintDefaults()
		os.Exit(2)
	}
	path := ":memory:"
	if pflag.NArg() > 0 {
		path = pflag.Arg(0)
	}

	if argv.verbose {
		sqlite0.SetLogf(func(code sqlite0.ResultCode, msg string) {
			log.Debug("engine log", "code", fmt.Sprintf("%#v", code), "msg", msg)
		})
	}

	if err := run(log, path); err != nil {
		log.Error("inspection failed", "path", path, "err", err)
		os.Exit(1)
	}
}

func openFlags() sqlite0.OpenFlags {
	var flags sqlite0.OpenFlags
	switch {
	case argv.memory:
		flags = sqlite0.OpenReadWrite | sqlite0.OpenCreate | sqlite0.OpenMemory
	case argv.readOnly:
		flags = sqlite0.OpenReadOnly
	default:
		flags = sqlite0.OpenReadWrite | sqlite0.OpenCreate
	}
	if !argv.noURI && !argv.memory {
		flags |= sqlite0.OpenURI
	}
	return flags
}

var configFlags = []struct {
	name string
	flag sqlite0.ConfigFlag
}{
	{"enable_fkey", sqlite0.ConfigEnableFKey},
	{"enable_trigger", sqlite0.ConfigEnableTrigger},
	{"enable_view", sqlite0.ConfigEnableView},
	{"fts3_tokenizer", sqlite0.ConfigFTS3Tokenizer},
	{"enable_load_extension", sqlite0.ConfigEnableLoadExtension},
	{"no_ckpt_on_close", sqlite0.ConfigNoCheckpointOnClose},
	{"enable_qpsg", sqlite0.ConfigEnableQPSG},
	{"trigger_eqp", sqlite0.ConfigTriggerEQP},
	{"defensive", sqlite0.ConfigDefensive},
	{"writable_schema", sqlite0.ConfigWritableSchema},
	{"legacy_alter_table", sqlite0.ConfigLegacyAlterTable},
	{"dqs_dml", sqlite0.ConfigDQSDML},
	{"dqs_ddl", sqlite0.ConfigDQSDDL},
	{"legacy_file_format", sqlite0.ConfigLegacyFileFormat},
	{"trusted_schema", sqlite0.ConfigTrustedSchema},
}

func run(log *slog.Logger, path string) (err error) {
	conn, openErr := sqlite0.Open(path, openFlags())
	if openErr != nil {
		return errors.Wrapf(openErr, "open %q", path)
	}
	defer func() {
		err = multierr.Append(err, conn.Close())
	}()

	if err := conn.SetBusyTimeout(argv.busyTimeout); err != nil {
		return errors.Wrap(err, "set busy timeout")
	}

	v := conn.View()
	fmt.Printf("library version: %s\n", sqlite0.Version())
	fmt.Printf("autocommit:      %v\n", v.Autocommit())
	if ro, ok := v.ReadOnly("main"); ok {
		fmt.Printf("main read-only:  %v\n", ro)
	}
	if state, ok := v.TxnState("main"); ok {
		fmt.Printf("main txn state:  %s\n", state)
	}
	for _, cf := range configFlags {
		val, err := v.GetConfig(cf.flag)
		if err != nil {
			log.Warn("config flag unavailable", "flag", cf.name, "err", err)
			continue
		}
		fmt.Printf("%-22s %v\n", cf.name+":", val)
	}
	return nil
}
