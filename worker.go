package astar

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Job is one independent search for SolveAll. A zero ID is replaced with a
// fresh random one.
type Job struct {
	ID   uuid.UUID
	Grid *Grid
}

// JobResult pairs a job with its outcome. Err holds per-job failures such as
// an invalid grid; it does not stop the other jobs.
type JobResult struct {
	ID     uuid.UUID
	Result Result
	Err    error
}

// SolveAll solves every job with up to workers concurrent searches. Each
// search owns its own state and each job must carry its own Grid. Results
// come back in job order. Only cancellation of ctx aborts the batch.
// An Observer passed in options is called from several goroutines.
func SolveAll(ctx context.Context, jobs []Job, workers int, options ...Option) ([]JobResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]JobResult, len(jobs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, job := range jobs {
		if job.ID == uuid.Nil {
			job.ID = uuid.New()
		}
		results[i].ID = job.ID
		group.Go(func() error {
			result, err := Solve(groupCtx, job.Grid, options...)
			if groupCtx.Err() != nil {
				return groupCtx.Err()
			}
			results[i].Result = result
			results[i].Err = err
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
