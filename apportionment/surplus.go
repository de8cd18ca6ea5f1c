// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import "github.com/danielhkuo/apportion/fraction"

// meetsSurplusThreshold reports whether votes reach the full quota, i.e. the
// list won at least one full seat.
func meetsSurplusThreshold(votes uint64, quota fraction.Fraction) bool {
	return !fraction.FromInt(votes).Less(quota)
}

// allocateLargestSurpluses is the 19-seats-or-more counterpart of
// allocateLargestRemainders.
func (r *run) allocateLargestSurpluses() error {
	return r.allocateByThreshold(LargestSurplus,
		func(s *ListStanding) bool { return s.MeetsSurplusThreshold },
		func(s *ListStanding) fraction.Fraction { return s.Remainder },
	)
}

// allocateByThreshold awards one seat per eligible list, highest value first,
// until the residual seats or the eligible lists run out.
func (r *run) allocateByThreshold(method Method, eligible func(*ListStanding) bool, value func(*ListStanding) fraction.Fraction) error {
	awarded := make(map[int]bool)
	for r.residualSeatsLeft() > 0 {
		best, candidates := r.highest(func(s *ListStanding) bool {
			return eligible(s) && !awarded[s.ListNumber]
		}, value)
		if len(candidates) == 0 {
			return nil
		}

		winner, err := r.choose(method, candidates, best)
		if err != nil {
			return err
		}
		r.award(method, candidates, winner, best)
		awarded[winner] = true
	}
	return nil
}
