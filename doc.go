// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the apportion command line.

apportion allocates the seats of a municipal council to party lists from
their vote totals and publishes a full, exact trace of every residual seat.

# Running

	apportion run council.json
	apportion run -f yaml -o reports.yaml north.yaml south.yaml
	cat council.json | apportion run -

	apportion verify council.json report.json
	apportion version

# Configuration

Every flag can also come from an APPORTION_* environment variable, a .env
file or a config file (--config). See package cliparse.

# Exit Codes

	0  success
	1  configuration, output or verification failure
	2  invalid election input
	3  a tie the chosen policy could not decide

On failure a single JSON error object is written to stderr:

	{"error":"unresolved_tie","message":"...","file":"council.json","seat":1,"candidates":[1,2]}

Logs are JSON (or console) lines on stderr, or a rotated file with --log-file.

# Architecture

  - apportionment: quota, full seats, residual seat methods, tie policies
  - fraction: exact mixed fractions
  - models: election documents and reports
  - electionio: JSON/YAML reading and writing
  - digest: input fingerprints
  - cliparse: flags, environment and config files
  - logging: zap logger construction

See package documentation for each component.
*/
package main
