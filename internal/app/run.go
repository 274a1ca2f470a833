package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/composego/internal/config"
	"github.com/vk/composego/internal/ctxlog"
	"github.com/vk/composego/internal/emit"
	"github.com/vk/composego/internal/executor"
	"github.com/vk/composego/internal/registry"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.Watch {
		return a.watch(ctx, appConfig)
	}
	return a.resolveAndEmit(ctx, appConfig)
}

// resolveAndEmit performs one full pass: load, validate, resolve all
// requested targets concurrently, and emit the result.
func (a *App) resolveAndEmit(ctx context.Context, appConfig *Config) error {
	logger := ctxlog.FromContext(ctx)

	model, err := a.loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	logger.Debug("Manifest loaded and translated into unified model.")

	reg := registry.New()
	if err := reg.PopulateFromModel(ctx, model); err != nil {
		return fmt.Errorf("failed to populate feature registry: %w", err)
	}
	if err := reg.Validate(ctx); err != nil {
		return fmt.Errorf("feature registry validation failed: %w", err)
	}
	logger.Debug("Feature registry populated and validated.", "features", len(reg.Names()))

	targets, err := selectTargets(model, appConfig.Target)
	if err != nil {
		return err
	}

	logger.Info("Starting target resolution.", "targets", len(targets), "workers", appConfig.WorkerCount)
	pool := executor.New(appConfig.WorkerCount, reg)
	results := pool.ResolveAll(ctx, model.Project, targets)

	var errs []error
	cfgs := make([]*config.BuildTargetConfig, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		cfgs = append(cfgs, res.Config)
	}
	if len(errs) > 0 {
		return fmt.Errorf("resolution failed: %w", errors.Join(errs...))
	}
	logger.Info("All targets resolved.", "count", len(cfgs))

	emitter, err := emit.New(appConfig.Format)
	if err != nil {
		return err
	}
	out, err := emitter.Emit(cfgs)
	if err != nil {
		return fmt.Errorf("failed to emit configuration: %w", err)
	}

	if appConfig.OutputPath != "" {
		if err := os.WriteFile(appConfig.OutputPath, out, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("Configuration written.", "path", appConfig.OutputPath)
		return nil
	}

	_, err = a.outW.Write(out)
	return err
}

// selectTargets applies the optional single-target filter against the
// model's declaration-ordered target list.
func selectTargets(model *config.Model, name string) ([]*config.Target, error) {
	if len(model.Targets) == 0 {
		return nil, errors.New("manifest declares no targets")
	}
	if name == "" {
		return model.Targets, nil
	}
	for _, target := range model.Targets {
		if target.Name == name {
			return []*config.Target{target}, nil
		}
	}
	return nil, fmt.Errorf("manifest declares no target named %q", name)
}
