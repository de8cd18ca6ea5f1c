// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/apportion/apportionment"
	"github.com/danielhkuo/apportion/testutil"
)

func TestSurplusThresholdBoundary(t *testing.T) {
	// 20 seats, quota 100
	res, err := apportionment.New().Apportion(testutil.Election(20, 1801, 100, 99))
	require.NoError(t, err)

	atQuota, _ := res.Standing(2)
	assert.True(t, atQuota.MeetsSurplusThreshold)
	assert.Equal(t, 1, atQuota.FullSeats)

	below, _ := res.Standing(3)
	assert.False(t, below.MeetsSurplusThreshold)
	assert.Equal(t, 0, below.FullSeats)

	for _, s := range res.Steps {
		if s.Method == apportionment.LargestSurplus {
			assert.NotEqual(t, 3, s.AwardedTo, "list below quota won a surplus seat")
		}
	}
	testutil.AssertSeatTotal(t, res)
}

func TestSurplusThenPlainAverages(t *testing.T) {
	// 19 seats, quota 52 12/19: only list 1 reaches the quota, so it takes
	// the single surplus seat and then every averages seat.
	votes := []uint64{700}
	for i := 0; i < 60; i++ {
		votes = append(votes, 5)
	}
	res, err := apportionment.New().Apportion(testutil.Election(19, votes...))
	require.NoError(t, err)

	assert.Equal(t, 13, res.FullSeatsTotal)
	require.Len(t, res.Steps, 6)

	assert.Equal(t, apportionment.LargestSurplus, res.Steps[0].Method)
	assert.Equal(t, "15 15/19", res.Steps[0].DecisiveValue.String())
	for _, s := range res.Steps[1:] {
		assert.Equal(t, apportionment.LargestAverage, s.Method)
		assert.Equal(t, 1, s.AwardedTo)
	}
	assert.Equal(t, "46 10/15", res.Steps[1].DecisiveValue.String())

	first, _ := res.Standing(1)
	assert.Equal(t, 19, first.TotalSeats)
}
