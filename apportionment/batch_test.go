// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/danielhkuo/apportion/apportionment"
	"github.com/danielhkuo/apportion/testutil"
)

func TestRunAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	engine := apportionment.New(apportionment.WithTieBreaker(apportionment.ByTotalVotes{}))
	var jobs []apportionment.Job
	for seats := 10; seats <= 30; seats++ {
		jobs = append(jobs, apportionment.Job{Input: testutil.Election(seats, 4000, 2500, 1700, 900, 450), Engine: engine})
	}

	results, err := apportionment.RunAll(context.Background(), jobs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, res := range results {
		assert.Equal(t, jobs[i].Input.TotalSeats, res.TotalSeats)
		testutil.AssertSeatTotal(t, res)

		sequential, err := engine.Apportion(jobs[i].Input)
		require.NoError(t, err)
		assert.Equal(t, sequential, res)
	}
}

func TestRunAllFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	jobs := []apportionment.Job{
		{Input: testutil.FifteenSeatElection()},
		{Input: testutil.Election(0, 10)},
	}
	results, err := apportionment.RunAll(context.Background(), jobs, 0)
	require.ErrorIs(t, err, apportionment.ErrInvalidInput)
	assert.Contains(t, err.Error(), "job 1")
	assert.Nil(t, results)

	var jobErr *apportionment.JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, 1, jobErr.Index)
}

func TestRunAllNamedFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	jobs := []apportionment.Job{{Name: "council.json", Input: testutil.Election(3, 50, 50)}}
	_, err := apportionment.RunAll(context.Background(), jobs, 1)
	require.ErrorIs(t, err, apportionment.ErrUnresolvedTie)
	assert.Contains(t, err.Error(), "council.json: ")

	var jobErr *apportionment.JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, "council.json", jobErr.Name)
}

func TestRunAllCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := apportionment.RunAll(ctx, []apportionment.Job{{Input: testutil.FifteenSeatElection()}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
