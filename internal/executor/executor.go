package executor

import (
	"context"
	"sync"

	"github.com/vk/composego/internal/composer"
	"github.com/vk/composego/internal/config"
	"github.com/vk/composego/internal/ctxlog"
	"github.com/vk/composego/internal/registry"
)

// Result pairs one target with its resolved config or its terminal error.
type Result struct {
	Target string
	Config *config.BuildTargetConfig
	Err    error
}

// Pool resolves targets concurrently with a bounded number of workers.
type Pool struct {
	workers  int
	registry *registry.Registry
}

// New creates a pool. A worker count below one is clamped to one.
func New(workers int, reg *registry.Registry) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers, registry: reg}
}

// job carries a target and its declaration index so workers can write
// results into a pre-sized slice without coordination.
type job struct {
	index  int
	target *config.Target
}

// ResolveAll resolves every given target and returns one Result per target,
// in declaration order.
func (p *Pool) ResolveAll(ctx context.Context, project *config.Project, targets []*config.Target) []Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolution pool starting.", "targets", len(targets), "workers", p.workers)

	results := make([]Result, len(targets))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for workerID := 0; workerID < p.workers; workerID++ {
		wg.Add(1)
		go p.worker(ctx, &wg, jobs, results, project, workerID)
	}

	for i, target := range targets {
		jobs <- job{index: i, target: target}
	}
	close(jobs)
	wg.Wait()

	logger.Debug("Resolution pool finished.")
	return results
}

// worker is the processing loop for a single concurrent worker.
func (p *Pool) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan job, results []Result, project *config.Project, workerID int) {
	defer wg.Done()
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for j := range jobs {
		workerLogger := logger.With("workerID", workerID, "target", j.target.Name)

		if ctx.Err() != nil {
			results[j.index] = Result{Target: j.target.Name, Err: ctx.Err()}
			continue
		}

		workerLogger.Debug("Worker picked up target for resolution.")
		cfg, err := composer.Resolve(ctx, p.registry, project, j.target)
		if err != nil {
			workerLogger.Error("Target resolution failed.", "error", err)
		} else {
			workerLogger.Debug("Target resolution succeeded.")
		}
		results[j.index] = Result{Target: j.target.Name, Config: cfg, Err: err}
	}

	logger.Debug("Worker finished.", "workerID", workerID)
}
