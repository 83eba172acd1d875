package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type Job struct {
	Input  string
	Output string
	Params EditParameters
}

type Result struct {
	Job Job
	Err error
}

// Batch exports jobs concurrently with at most workers in flight. Jobs are
// independent: a failure is recorded in its Result and the rest continue.
// Jobs not yet started when ctx is cancelled report ctx.Err().
func (e *Exporter) Batch(ctx context.Context, jobs []Job, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		results[i].Job = job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			if err := e.ExportFile(job.Input, job.Output, job.Params); err != nil {
				e.log.Warn("Failed to process %s: %s", job.Input, err)
				results[i].Err = err
				return nil
			}
			e.log.Info("Processed %s -> %s", job.Input, job.Output)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
