// This file contains the logic for translating decoded HCL schema structs
// into the format-agnostic model defined in the config package, including
// evaluation of path expressions against the project's variables.

package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/composego/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translate merges all decoded file roots into one model. Exactly one
// project block must exist; features and targets merge in discovery order.
func (l *Loader) translate(ctx context.Context, roots []*fileRoot) (*config.Model, error) {
	var projects []*projectBlock
	for _, root := range roots {
		projects = append(projects, root.Projects...)
	}
	if len(projects) == 0 {
		return nil, errors.New("manifest declares no project block")
	}
	if len(projects) > 1 {
		return nil, fmt.Errorf("manifest declares %d project blocks, only one is allowed", len(projects))
	}

	project, err := l.translateProject(projects[0])
	if err != nil {
		return nil, err
	}

	model := &config.Model{Project: project}
	evalCtx := pathEvalContext(project)

	for _, root := range roots {
		for _, f := range root.Features {
			model.Features = append(model.Features, &config.FeatureDefinition{
				Name:        f.Name,
				Description: f.Description,
				Archive:     f.Archive,
			})
		}
		for _, t := range root.Targets {
			target, err := l.translateTarget(t, evalCtx)
			if err != nil {
				return nil, err
			}
			model.Targets = append(model.Targets, target)
		}
	}

	return model, nil
}

// translateProject resolves the project and sibling declarations. The
// sibling path may reference root/bin/lib, so it is evaluated against a
// partial context that excludes the sibling variable itself.
func (l *Loader) translateProject(p *projectBlock) (*config.Project, error) {
	if p.Root == "" {
		return nil, errors.New("project root must not be empty")
	}
	if p.Sibling == nil {
		return nil, errors.New("project declares no sibling block")
	}

	project := &config.Project{Root: p.Root}
	partialCtx := pathEvalContext(project)

	siblingPath, err := evalString(p.Sibling.Path, partialCtx, fmt.Sprintf("path of sibling %q", p.Sibling.Name))
	if err != nil {
		return nil, err
	}

	project.Sibling = &config.Sibling{
		Name:        p.Sibling.Name,
		Path:        siblingPath,
		CoreArchive: p.Sibling.CoreArchive,
		TestArchive: p.Sibling.TestArchive,
	}
	return project, nil
}

// translateTarget resolves one target block, evaluating every enable block's
// path pair in declaration order.
func (l *Loader) translateTarget(t *targetBlock, evalCtx *hcl.EvalContext) (*config.Target, error) {
	target := &config.Target{
		Name:   t.Name,
		CFlags: t.CFlags,
	}
	for _, e := range t.Enables {
		include, err := evalString(e.Include, evalCtx, fmt.Sprintf("include path of feature %q in target %q", e.Feature, t.Name))
		if err != nil {
			return nil, err
		}
		lib, err := evalString(e.Lib, evalCtx, fmt.Sprintf("lib path of feature %q in target %q", e.Feature, t.Name))
		if err != nil {
			return nil, err
		}
		target.Enables = append(target.Enables, &config.FeatureSelection{
			Feature:     e.Feature,
			IncludePath: include,
			LibPath:     lib,
		})
	}
	return target, nil
}

// pathEvalContext exposes the project's path variables to manifest
// expressions. Before the sibling is resolved only root/bin/lib are
// available; afterwards the sibling's path joins them.
func pathEvalContext(project *config.Project) *hcl.EvalContext {
	vars := map[string]cty.Value{
		"root": cty.StringVal(project.Root),
		"bin":  cty.StringVal(project.BinPath()),
		"lib":  cty.StringVal(project.LibPath()),
	}
	if project.Sibling != nil {
		vars["sibling"] = cty.StringVal(project.Sibling.Path)
	}
	return &hcl.EvalContext{Variables: vars}
}

// evalString evaluates an expression to a non-empty string. what names the
// attribute for error messages.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext, what string) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate %s: %w", what, diags)
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%s is not a string: %w", what, err)
	}
	if val.IsNull() || val.AsString() == "" {
		return "", fmt.Errorf("%s must not be empty", what)
	}
	return val.AsString(), nil
}
