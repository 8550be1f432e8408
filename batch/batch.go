// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvqsim/circuit"
	"github.com/katalvlaran/lvqsim/history"
	"github.com/katalvlaran/lvqsim/sampler"
)

// Job is one circuit evaluation.
type Job struct {
	// ID labels the result; a random UUID is assigned when empty.
	ID     string
	Qubits int
	Ops    []history.Op
	// Shots > 0 samples the final state; 0 skips measurement.
	Shots int
	// Seed makes sampling reproducible when set.
	Seed *int64
}

// Result is the outcome of one Job.
type Result struct {
	ID         string
	Amplitudes []complex128
	Counts     sampler.Counts
	Err        error
	Elapsed    time.Duration
}

// FromProgram converts a decoded Program into a Job. defaultShots is used
// when the program leaves shots unset.
func FromProgram(p *history.Program, defaultShots int) Job {
	shots := p.Shots
	if shots == 0 {
		shots = defaultShots
	}

	return Job{ID: p.Name, Qubits: p.Qubits, Ops: p.Ops, Shots: shots, Seed: p.Seed}
}

// Run evaluates jobs with at most WithWorkers of them in flight.
//
// The returned slice always has len(jobs) entries in input order. A job
// that fails (bad width, out-of-range op, ...) reports it in Result.Err and
// does not stop the others. If ctx is cancelled, jobs that have not started
// get ctx.Err() in Result.Err and Run returns that error.
func Run(ctx context.Context, jobs []Job, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{ID: job.ID, Err: err}
				return err
			}
			results[i] = runJob(job, o)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}

	return results, nil
}

func runJob(job Job, o options) Result {
	start := time.Now()
	res := Result{ID: job.ID}
	res.Err = evaluate(job, o, &res)
	res.Elapsed = time.Since(start)

	if res.Err != nil {
		o.logger.Warn("job failed", "id", job.ID, "error", res.Err)
	} else {
		o.logger.Info("job done", "id", job.ID, "ops", len(job.Ops), "elapsed", res.Elapsed)
	}

	return res
}

func evaluate(job Job, o options, res *Result) error {
	c, err := circuit.New(job.Qubits, o.circuitOpts...)
	if err != nil {
		return err
	}
	for i, op := range job.Ops {
		if err = op.Apply(c); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op, err)
		}
	}
	res.Amplitudes = c.Amplitudes()

	if job.Shots == 0 {
		return nil
	}
	var sopts []sampler.Option
	if job.Seed != nil {
		sopts = append(sopts, sampler.WithSeed(*job.Seed))
	}
	res.Counts, err = c.Measure(job.Shots, sopts...)

	return err
}
