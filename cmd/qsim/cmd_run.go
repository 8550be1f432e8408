// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqsim/batch"
	"github.com/katalvlaran/lvqsim/circuit"
	"github.com/katalvlaran/lvqsim/cmd/qsim/config"
	"github.com/katalvlaran/lvqsim/history"
	"github.com/katalvlaran/lvqsim/sampler"
	"github.com/katalvlaran/lvqsim/state"
)

var errTooWide = errors.New("qubit count exceeds max_qubits")

type runFlags struct {
	qubits   int
	ops      []string
	shots    int
	seed     int64
	engine   string
	asJSON   bool
	programs []string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply a gate sequence and measure",
		Example: `  qsim run --qubits 2 --op H:0 --op CX:0:1 --shots 1024 --seed 7
  qsim run --program bell.yaml --program ghz.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyRunFlags(cmd, &f); err != nil {
				return err
			}
			if len(f.programs) > 0 {
				return a.runPrograms(cmd.Context(), f.programs)
			}

			return a.runSingle(f.ops)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.qubits, "qubits", "n", config.DefaultQubits, "number of qubits")
	fl.StringArrayVar(&f.ops, "op", nil, "operation, repeatable: H:0, X:1, CX:0:1")
	fl.IntVar(&f.shots, "shots", config.DefaultShots, "measurement shots")
	fl.Int64Var(&f.seed, "seed", 0, "sampling seed (random when unset)")
	fl.StringVar(&f.engine, "engine", config.DefaultEngine, "paired|tensor")
	fl.BoolVar(&f.asJSON, "json", false, "print JSON instead of text")
	fl.StringArrayVar(&f.programs, "program", nil, "YAML program file, repeatable; programs run concurrently")

	return cmd
}

// applyRunFlags lets explicitly set flags override the loaded config.
func (a *app) applyRunFlags(cmd *cobra.Command, f *runFlags) error {
	fl := cmd.Flags()
	if fl.Changed("qubits") {
		a.cfg.Qubits = f.qubits
	}
	if fl.Changed("shots") {
		a.cfg.Shots = f.shots
	}
	if fl.Changed("seed") {
		seed := f.seed
		a.cfg.Seed = &seed
	}
	if fl.Changed("engine") {
		a.cfg.Engine = f.engine
	}
	if fl.Changed("json") && f.asJSON {
		a.cfg.Output = "json"
	}
	if a.cfg.Qubits > a.cfg.MaxQubits {
		return fmt.Errorf("%d qubits: %w (%d)", a.cfg.Qubits, errTooWide, a.cfg.MaxQubits)
	}

	return a.cfg.Validate()
}

func (a *app) circuitOptions() ([]circuit.Option, error) {
	engine, err := circuit.ParseEngine(a.cfg.Engine)
	if err != nil {
		return nil, err
	}

	return []circuit.Option{circuit.WithEngine(engine), circuit.WithLogger(a.logger)}, nil
}

func (a *app) runSingle(texts []string) error {
	var log history.Log
	for _, text := range texts {
		op, err := history.ParseOp(text)
		if err != nil {
			return err
		}
		if err = log.Append(op); err != nil {
			return err
		}
	}

	opts, err := a.circuitOptions()
	if err != nil {
		return err
	}
	c, err := circuit.New(a.cfg.Qubits, opts...)
	if err != nil {
		return err
	}
	if err = history.Replay(c, &log); err != nil {
		return err
	}

	var sopts []sampler.Option
	if a.cfg.Seed != nil {
		sopts = append(sopts, sampler.WithSeed(*a.cfg.Seed))
	}
	counts, err := c.Measure(a.cfg.Shots, sopts...)
	if err != nil {
		return err
	}

	rep := newReport("", &log, c.State(), counts)
	if a.cfg.Output == "json" {
		return writeJSON(a.stdout, rep)
	}

	return rep.writeText(a.stdout)
}

func (a *app) runPrograms(ctx context.Context, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	jobs := make([]batch.Job, 0, len(paths))
	logs := make([]*history.Log, 0, len(paths)) // indexed like jobs and results
	for _, path := range paths {
		p, err := history.LoadProgram(path)
		if err != nil {
			return err
		}
		if p.Qubits > a.cfg.MaxQubits {
			return fmt.Errorf("%s: %d qubits: %w (%d)", path, p.Qubits, errTooWide, a.cfg.MaxQubits)
		}
		if p.Seed == nil {
			p.Seed = a.cfg.Seed
		}
		l, err := p.Log()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logs = append(logs, l)
		jobs = append(jobs, batch.FromProgram(p, a.cfg.Shots))
	}

	copts, err := a.circuitOptions()
	if err != nil {
		return err
	}
	bopts := []batch.Option{batch.WithCircuitOptions(copts...), batch.WithLogger(a.logger)}
	if a.cfg.Workers > 0 {
		bopts = append(bopts, batch.WithWorkers(a.cfg.Workers))
	}
	results, err := batch.Run(ctx, jobs, bopts...)
	if err != nil {
		return err
	}

	reports := make([]report, 0, len(results))
	var failed int
	for i, r := range results {
		if r.Err != nil {
			failed++
			reports = append(reports, report{Name: r.ID, Error: r.Err.Error()})
			continue
		}
		vec, verr := state.FromAmplitudes(r.Amplitudes)
		if verr != nil {
			return verr
		}
		reports = append(reports, newReport(r.ID, logs[i], vec, r.Counts))
	}

	if a.cfg.Output == "json" {
		err = writeJSON(a.stdout, reports)
	} else {
		for i := range reports {
			if err = reports[i].writeText(a.stdout); err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d programs failed", failed, len(results))
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
