package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/spf13/cobra"

	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/internal/workpool"
	"github.com/gogpu/gpures/recording"
)

// stressTarget is the asset type stress bindings are keyed under.
type stressTarget struct{}

type stressConfig struct {
	Workers    int
	Iterations int
	BufferSize uint64
}

func (c stressConfig) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	return nil
}

type stressReport struct {
	Handles    int
	Duplicates int
	Invalid    int
	Failures   map[string]int
	Elapsed    time.Duration
}

func (r stressReport) failed() bool {
	return r.Duplicates > 0 || r.Invalid > 0 || len(r.Failures) > 0
}

// stressWorker is the per-task tally merged into a stressReport.
type stressWorker struct {
	handles  []gpures.ResourceHandle
	failures map[string]int
}

func (w *stressWorker) fail(check string) {
	w.failures[check]++
}

// run performs iterations [from, to) of create, query, bind, resolve and
// remove. Odd iterations use a mapped buffer whose setup creates a nested
// sampler.
func (w *stressWorker) run(ctx gpures.ResourceContext, id, from, to int, size uint64) {
	desc := gputypes.BufferDescriptor{
		Label: "stress-" + strconv.Itoa(id),
		Size:  size,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	}
	for i := from; i < to; i++ {
		var h gpures.ResourceHandle
		if i%2 == 0 {
			h = ctx.CreateBuffer(desc)
		} else {
			var nested gpures.ResourceHandle
			h = ctx.CreateBufferMapped(desc, func(data []byte, inner gpures.ResourceContext) {
				if uint64(len(data)) != size {
					w.fail("mapped length")
				}
				for j := range data {
					data[j] = byte(i)
				}
				nested = inner.CreateSampler(nil)
			})
			w.handles = append(w.handles, nested)
			ctx.RemoveSampler(nested)
		}
		w.handles = append(w.handles, h)

		info, ok := gpures.LookupResourceInfo(ctx, h)
		if got, isBuf := info.AsBuffer(); !ok || !isBuf || got != desc {
			w.fail("round trip")
		}

		asset := gpures.NewHandle[stressTarget]()
		slot := uint32(i % 4)
		gpures.SetAssetResource(ctx, asset, h, slot)
		if got, ok := gpures.GetAssetResource(ctx, asset, slot); !ok || got != h {
			w.fail("binding")
		}

		ctx.RemoveBuffer(h)
		if _, ok := gpures.LookupResourceInfo(ctx, h); ok {
			w.fail("remove")
		}
	}
}

// stressBatch is the number of iterations one pool task performs.
const stressBatch = 64

// runStress splits each worker's iterations into batches, runs them on a
// pool of cfg.Workers goroutines against ctx, and checks that every issued
// handle is valid and unique.
func runStress(ctx gpures.ResourceContext, cfg stressConfig) stressReport {
	start := time.Now()
	pool := workpool.New(cfg.Workers)
	defer pool.Close()

	var (
		workers []*stressWorker
		tasks   []func()
	)
	for id := range cfg.Workers {
		for from := 0; from < cfg.Iterations; from += stressBatch {
			to := min(from+stressBatch, cfg.Iterations)
			w := &stressWorker{
				handles:  make([]gpures.ResourceHandle, 0, (to-from)*3/2+1),
				failures: make(map[string]int),
			}
			workers = append(workers, w)
			tasks = append(tasks, func() { w.run(ctx, id, from, to, cfg.BufferSize) })
		}
	}
	pool.Run(tasks)

	report := stressReport{
		Failures: make(map[string]int),
		Elapsed:  time.Since(start),
	}
	seen := make(map[gpures.ResourceHandle]struct{})
	for _, w := range workers {
		for _, h := range w.handles {
			report.Handles++
			if !h.IsValid() {
				report.Invalid++
				continue
			}
			if _, dup := seen[h]; dup {
				report.Duplicates++
			}
			seen[h] = struct{}{}
		}
		for check, n := range w.failures {
			report.Failures[check] += n
		}
	}
	return report
}

func (c *cli) newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Exercise a backend from concurrent workers",
		Long: `Stress creates, queries, binds and removes buffers from several goroutines
against one context, then checks that every handle was unique and every
round trip held.

With --record the run goes through a recorder and is replayed onto a fresh
context of the same backend.`,
		Args: cobra.NoArgs,
		RunE: c.runStressCmd,
	}

	flags := cmd.Flags()
	flags.Int("workers", 8, "number of concurrent workers")
	flags.Int("iterations", 1000, "iterations per worker")
	flags.Uint64("buffer-size", 256, "size of each buffer in bytes")
	flags.Bool("record", false, "record the run and replay it")
	bindFlag(c.cfg, cfgKeyWorkers, cmd, "workers")
	bindFlag(c.cfg, cfgKeyIterations, cmd, "iterations")
	bindFlag(c.cfg, cfgKeyBufferSize, cmd, "buffer-size")
	bindFlag(c.cfg, cfgKeyRecord, cmd, "record")
	return cmd
}

func (c *cli) runStressCmd(cmd *cobra.Command, args []string) error {
	cfg := stressConfig{
		Workers:    c.cfg.GetInt(cfgKeyWorkers),
		Iterations: c.cfg.GetInt(cfgKeyIterations),
		BufferSize: c.cfg.GetUint64(cfgKeyBufferSize),
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	name, ctx, err := c.openBackend()
	if err != nil {
		return err
	}

	var rec *recording.Recorder
	if c.cfg.GetBool(cfgKeyRecord) {
		rec = recording.NewRecorder(ctx)
		ctx = rec
	}

	gpures.Logger().Info("stress: starting", "backend", name,
		"workers", cfg.Workers, "iterations", cfg.Iterations)
	report := runStress(ctx, cfg)

	t := newTable("CHECK", "RESULT")
	t.Row("backend", name)
	t.Row("workers", strconv.Itoa(cfg.Workers))
	t.Row("iterations", strconv.Itoa(cfg.Iterations))
	t.Row("handles", strconv.Itoa(report.Handles))
	t.Row("duplicates", strconv.Itoa(report.Duplicates)+" "+status(report.Duplicates == 0))
	t.Row("invalid", strconv.Itoa(report.Invalid)+" "+status(report.Invalid == 0))
	for _, check := range slices.Sorted(maps.Keys(report.Failures)) {
		t.Row(check, strconv.Itoa(report.Failures[check])+" "+status(false))
	}
	t.Row("elapsed", report.Elapsed.Round(time.Microsecond).String())

	if rec != nil {
		r := rec.FinishRecording()
		_, target, err := c.openBackend()
		if err != nil {
			return err
		}
		remap := r.Playback(target)
		t.Row("recorded", strconv.Itoa(len(r.Commands())))
		t.Row("replayed handles", strconv.Itoa(len(remap)))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("gpuresctl stress"))
	fmt.Fprintln(out, t.String())

	if report.failed() {
		return errStressFailed
	}
	return nil
}

var errStressFailed = errors.New("stress: checks failed")
