// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apportionment converts per-list vote totals and a seat count into a
fully determined seat assignment with an ordered audit trail.

# Running

	engine := apportionment.New(
		apportionment.WithTieBreaker(apportionment.ByTotalVotes{}),
		apportionment.WithLogger(logger),
	)
	result, err := engine.Apportion(input)

An Engine holds no per-run state and may be shared between goroutines.
RunAll apportions several independent elections concurrently.

# Phases

Every run moves through the same states:

		init → full seats → threshold phase → averages phase → done

	  - Full seats: quota = total votes / total seats; each list gets
	    floor(votes / quota) seats.
	  - Threshold phase, fewer than 19 seats: largest remainders among lists
	    with at least three quarters of the quota, one seat per list.
	  - Threshold phase, 19 seats or more: largest surpluses among lists that
	    reached the quota, one seat per list.
	  - Averages phase: any seats left go one at a time to the highest average
	    votes / (seats + 1). Below 19 seats a list gets at most one averages seat
	    per pass until every list with votes has had one.

When no residual seats remain after the full seats the run goes straight to
done.

# Audit Trail

Each residual seat produces one Step carrying the method, the tied
candidates, the list that was awarded, the decisive value and a snapshot of
all standings after the award. Steps are appended in award order and never
modified afterwards.

# Ties

A tie needs a decision only when more lists share the decisive value than
there are seats left in the phase. The decision is delegated to a
TieBreaker:

  - ExternallyResolved: draws supplied by the caller, keyed by residual seat
  - ByTotalVotes: the tied list with the most votes, then a fallback

An undecided tie aborts the run with a *TieError listing the candidates.

# Errors

  - ErrInvalidInput (as *InputError): rejected before any allocation
  - ErrInvariantViolation: internal consistency check failed
  - ErrUnresolvedTie (as *TieError): external resolution required
*/
package apportionment
