// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package electionio reads election documents and writes apportionment reports.

# Reading

Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
The path "-" reads JSON from the supplied reader:

	doc, err := electionio.ReadElection("council.yaml", os.Stdin)

Unknown fields are rejected. Every read failure wraps
apportionment.ErrInvalidInput.

# Writing

	electionio.WriteReports(os.Stdout, models.FormatJSON, reports)

A single report is written as one document; several are written as a list.

# Errors

NewErrorResponse turns an engine error into a models.ErrorResponse. Ties
carry the residual seat and the tied lists:

	{"error":"unresolved_tie","message":"...","file":"council.json","seat":2,"candidates":[3,4]}
*/
package electionio
