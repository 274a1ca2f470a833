package composer

import (
	"context"
	"path/filepath"

	"github.com/vk/composego/internal/config"
	"github.com/vk/composego/internal/ctxlog"
	"github.com/vk/composego/internal/fsutil"
	"github.com/vk/composego/internal/registry"
)

// Resolve composes the final build configuration for one target.
//
// Validation is fail-fast: every enabled feature name is checked against the
// registry before the first filesystem probe, so a bad declaration never
// costs a disk access. The returned config is complete or nil; no partial
// result escapes an error path.
func Resolve(ctx context.Context, reg *registry.Registry, project *config.Project, target *config.Target) (*config.BuildTargetConfig, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving target.", "target", target.Name, "enabled_features", len(target.Enables))

	// Declaration validation first, filesystem probing second.
	selected := make([]*config.FeatureDefinition, len(target.Enables))
	for i, sel := range target.Enables {
		def, ok := reg.Lookup(sel.Feature)
		if !ok {
			return nil, &UnrecognizedFeatureError{
				Target:  target.Name,
				Feature: sel.Feature,
				Known:   reg.Names(),
			}
		}
		selected[i] = def
	}

	sibling := project.Sibling
	if !fsutil.DirExists(sibling.Path) {
		return nil, &MissingDependencyError{Target: target.Name, Path: sibling.Path}
	}

	siblingLib := sibling.LibPath()

	cfg := &config.BuildTargetConfig{
		Target:  target.Name,
		BinPath: project.BinPath(),
		LibPath: project.LibPath(),
		IncludePaths: []config.PathVariable{
			{Name: sibling.Name, Path: siblingLib},
		},
		CFlags: append([]string(nil), target.CFlags...),
		Links: config.LinkSet{
			filepath.Join(siblingLib, sibling.CoreArchive),
			filepath.Join(siblingLib, sibling.TestArchive),
		},
	}

	for i, sel := range target.Enables {
		cfg.IncludePaths = append(cfg.IncludePaths, config.PathVariable{
			Name: sel.Feature,
			Path: sel.IncludePath,
		})
		cfg.Links = append(cfg.Links, filepath.Join(sel.LibPath, selected[i].Archive))
	}

	logger.Debug("Target resolved.",
		"target", target.Name,
		"include_paths", len(cfg.IncludePaths),
		"link_entries", len(cfg.Links),
	)
	return cfg, nil
}
