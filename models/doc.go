// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the documents the apportion tool reads and writes.

# Input Document

ElectionDocument is the validated output of the data-entry layer:

  - name: optional label for the election
  - total_seats: seats to distribute
  - total_valid_votes: must equal the sum of votes_cast
  - lists: number, optional name, votes_cast
  - draws: optional lot outcomes, one per residual seat number

Input converts it to apportionment.Input and DrawMap indexes the draws.

# Output Documents

  - Report: election, input_digest, tie_break, result
  - ErrorResponse: error, message, and for ties the seat and candidates

Every fraction in a result is written as whole, numerator and denominator,
never as a floating point number.

# Constants

Tie-break policies:

	TieBreakLot   = "lot"
	TieBreakVotes = "votes"

Formats:

	FormatJSON = "json"
	FormatYAML = "yaml"
*/
package models
