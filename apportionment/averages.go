// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import "github.com/danielhkuo/apportion/fraction"

// allocateLargestAverages awards the remaining residual seats one at a time to
// the list with the highest next average. With onePerPass set, a list that
// already won an averages seat sits out until every list with votes has won
// one in the current pass.
func (r *run) allocateLargestAverages(onePerPass bool) error {
	awarded := make(map[int]bool)
	nextAverage := func(s *ListStanding) fraction.Fraction { return s.NextAverage }

	for r.residualSeatsLeft() > 0 {
		best, candidates := r.highest(func(s *ListStanding) bool {
			return s.VotesCast > 0 && !awarded[s.ListNumber]
		}, nextAverage)

		if len(candidates) == 0 {
			if len(awarded) == 0 {
				return invariant("no list can take residual seat %d", len(r.steps)+1)
			}
			r.log.Debug("averages pass complete")
			clear(awarded)
			continue
		}

		winner, err := r.choose(LargestAverage, candidates, best)
		if err != nil {
			return err
		}
		r.award(LargestAverage, candidates, winner, best)
		if onePerPass {
			awarded[winner] = true
		}
	}
	return nil
}
