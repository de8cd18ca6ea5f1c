// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import "github.com/danielhkuo/apportion/fraction"

// meetsRemainderThreshold reports whether votes reach three quarters of the
// quota. The boundary itself is eligible.
func meetsRemainderThreshold(votes uint64, quota fraction.Fraction) (bool, error) {
	threshold, err := quota.MulRatio(3, 4)
	if err != nil {
		return false, err
	}
	return !fraction.FromInt(votes).Less(threshold), nil
}

// allocateLargestRemainders hands residual seats to eligible lists by
// descending remainder, at most one per list. Seats left over fall through
// to the averages phase.
func (r *run) allocateLargestRemainders() error {
	return r.allocateByThreshold(LargestRemainder,
		func(s *ListStanding) bool { return s.MeetsRemainderThreshold },
		func(s *ListStanding) fraction.Fraction { return s.Remainder },
	)
}
