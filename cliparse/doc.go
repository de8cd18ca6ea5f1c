// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags and configuration.

# Configuration

Register the flags once, then load after parsing:

	cliparse.RegisterFlags(cmd.PersistentFlags())
	cfg, err := cliparse.Load(cmd.Flags())

ParseFlags does both for a plain argument slice:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

	--log-level     APPORTION_LOG_LEVEL    info
	--log-format    APPORTION_LOG_FORMAT   json (or console)
	--log-file      APPORTION_LOG_FILE     stderr when empty
	-o, --output    APPORTION_OUTPUT       stdout when empty
	-f, --format    APPORTION_FORMAT       json (or yaml)
	--tie-break     APPORTION_TIE_BREAK    lot (or votes)
	-p, --parallel  APPORTION_PARALLEL     4
	-c, --config    APPORTION_CONFIG       none
	--env-file                             .env

# Precedence

Flags given on the command line win over environment variables, which win
over the config file, which wins over the defaults above. The dotenv file
is loaded first and never overrides variables already set. A missing
dotenv file is ignored; a missing config file is an error.

# Validation

Load returns every invalid value at once, joined with errors.Join.
*/
package cliparse
