// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/danielhkuo/apportion/fraction"
)

// newAveragesRun builds a run that enters the averages phase directly with
// no full seats.
func newAveragesRun(seats int, votes ...uint64) *run {
	r := &run{
		ties:               Unresolved,
		log:                zap.NewNop(),
		totalSeats:         seats,
		residualSeatsTotal: seats,
		index:              make(map[int]int),
	}
	for i, v := range votes {
		r.standings = append(r.standings, ListStanding{
			ListNumber:  i + 1,
			VotesCast:   v,
			NextAverage: fraction.NextAverage(v, 0),
		})
		r.index[i+1] = i
	}
	return r
}

func winners(r *run) []int {
	out := make([]int, len(r.steps))
	for i, s := range r.steps {
		out[i] = s.AwardedTo
	}
	return out
}

func TestAllocateLargestAverages(t *testing.T) {
	tests := []struct {
		name       string
		onePerPass bool
		votes      []uint64
		seats      int
		want       []int
	}{
		{"plain lets a list win repeatedly", false, []uint64{10, 2}, 3, []int{1, 1, 1}},
		{"one per pass starts a new pass", true, []uint64{10, 2}, 3, []int{1, 2, 1}},
		{"plain follows the averages", false, []uint64{10, 4}, 3, []int{1, 1, 2}},
		{"zero-vote lists never win", true, []uint64{10, 0}, 2, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAveragesRun(tt.seats, tt.votes...)
			require.NoError(t, r.allocateLargestAverages(tt.onePerPass))
			assert.Equal(t, tt.want, winners(r))
		})
	}
}

func TestAllocateLargestAveragesRecordsNextAverage(t *testing.T) {
	r := newAveragesRun(2, 10, 2)
	require.NoError(t, r.allocateLargestAverages(false))

	assert.Equal(t, fraction.Fraction{Whole: 10, Denominator: 1}, r.steps[0].DecisiveValue)
	assert.Equal(t, fraction.Fraction{Whole: 5, Denominator: 2}, r.steps[1].DecisiveValue)
	assert.Equal(t, fraction.Fraction{Whole: 3, Numerator: 1, Denominator: 3}, r.standings[0].NextAverage)
}

func TestAllocateLargestAveragesWithoutVotes(t *testing.T) {
	r := newAveragesRun(1, 0, 0)
	err := r.allocateLargestAverages(true)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "threshold_phase", stateThreshold.String())
	assert.Equal(t, "state(9)", state(9).String())
}
