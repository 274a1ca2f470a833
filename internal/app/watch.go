package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/composego/internal/ctxlog"
)

// watch re-resolves the manifest whenever it changes on disk. A failed
// resolution is logged and the loop keeps waiting; only watcher setup
// failures or context cancellation end the loop.
func (a *App) watch(ctx context.Context, appConfig *Config) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create manifest watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify watches directories, not files, reliably across editors that
	// replace files on save. Watch the containing directory.
	watchPath := appConfig.ManifestPath
	if info, statErr := os.Stat(watchPath); statErr == nil && !info.IsDir() {
		watchPath = filepath.Dir(watchPath)
	}
	if err := watcher.Add(watchPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchPath, err)
	}
	logger.Info("Watching for manifest changes.", "path", watchPath)

	if err := a.resolveAndEmit(ctx, appConfig); err != nil {
		logger.Error("Initial resolution failed.", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch loop stopping.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
				continue
			}
			logger.Info("Manifest change detected, re-resolving.", "file", event.Name, "op", event.Op.String())
			if err := a.resolveAndEmit(ctx, appConfig); err != nil {
				logger.Error("Resolution failed.", "error", err)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error.", "error", watchErr)
		}
	}
}
