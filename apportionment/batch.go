// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job is one election of a batch. A nil Engine uses New(). Name labels
// errors; jobs without a name are labelled by position.
type Job struct {
	Name   string
	Input  Input
	Engine *Engine
}

// JobError identifies the job of a batch that failed.
type JobError struct {
	Index int
	Name  string
	Err   error
}

func (e *JobError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("job %d: %v", e.Index, e.Err)
}

func (e *JobError) Unwrap() error { return e.Err }

// RunAll apportions independent elections concurrently, at most limit at a
// time (limit <= 0 means no limit). Results keep the order of jobs. The first
// failure cancels jobs that have not started yet.
func RunAll(ctx context.Context, jobs []Job, limit int) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			engine := job.Engine
			if engine == nil {
				engine = New()
			}
			res, err := engine.Apportion(job.Input)
			if err != nil {
				return &JobError{Index: i, Name: job.Name, Err: err}
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
