// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import (
	"fmt"

	"github.com/danielhkuo/apportion/fraction"
)

// Quota returns total votes / total seats, the vote cost of one full seat.
func Quota(totalVotes uint64, totalSeats int) (fraction.Fraction, error) {
	if totalSeats <= 0 {
		return fraction.Fraction{}, &InputError{Field: "total_seats", Reason: "must be positive"}
	}
	return fraction.New(totalVotes, uint64(totalSeats))
}

// allocateFullSeats awards floor(votes / quota) seats to every list and fixes
// the remainders and threshold flags for the rest of the run.
func (r *run) allocateFullSeats() error {
	var sum uint64
	for i := range r.standings {
		s := &r.standings[i]

		full, err := fraction.FloorDiv(s.VotesCast, r.quota)
		if err != nil {
			return fmt.Errorf("%w: full seats for list %d: %w", ErrInvariantViolation, s.ListNumber, err)
		}
		cost, err := r.quota.MulInt(full)
		if err != nil {
			return fmt.Errorf("%w: cost of %d seats: %w", ErrInvariantViolation, full, err)
		}
		remainder, err := fraction.FromInt(s.VotesCast).Sub(cost)
		if err != nil {
			return fmt.Errorf("%w: remainder of list %d: %w", ErrInvariantViolation, s.ListNumber, err)
		}

		eligibleRemainder, err := meetsRemainderThreshold(s.VotesCast, r.quota)
		if err != nil {
			return fmt.Errorf("%w: remainder threshold: %w", ErrInvariantViolation, err)
		}

		s.FullSeats = int(full)
		s.TotalSeats = s.FullSeats
		s.Remainder = remainder
		s.NextAverage = fraction.NextAverage(s.VotesCast, full)
		s.MeetsRemainderThreshold = eligibleRemainder
		s.MeetsSurplusThreshold = meetsSurplusThreshold(s.VotesCast, r.quota)
		sum += full
	}

	if sum > uint64(r.totalSeats) {
		return invariant("%d full seats exceed %d total seats", sum, r.totalSeats)
	}
	r.fullSeatsTotal = int(sum)
	r.residualSeatsTotal = r.totalSeats - r.fullSeatsTotal

	return nil
}
