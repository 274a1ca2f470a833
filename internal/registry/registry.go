package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/composego/internal/config"
	"github.com/vk/composego/internal/ctxlog"
)

// Registry stores the recognized feature definitions keyed by name, plus
// their declaration order for stable reporting.
type Registry struct {
	features map[string]*config.FeatureDefinition
	order    []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		features: make(map[string]*config.FeatureDefinition),
	}
}

// PopulateFromModel copies every feature definition from the loaded model
// into the registry in declaration order.
func (r *Registry) PopulateFromModel(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	for _, def := range model.Features {
		if _, exists := r.features[def.Name]; exists {
			return fmt.Errorf("feature %q declared more than once", def.Name)
		}
		logger.Debug("Registering feature definition.", "name", def.Name)
		r.features[def.Name] = def
		r.order = append(r.order, def.Name)
	}
	return nil
}

// Validate checks the integrity of the registered definitions. Every feature
// must name the archive it links; a feature without one can never contribute
// to a link set and indicates a broken manifest.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []error
	for _, name := range r.order {
		if r.features[name].Archive == "" {
			errs = append(errs, fmt.Errorf("feature %q declares no archive", name))
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the definition for a feature name, if recognized.
func (r *Registry) Lookup(name string) (*config.FeatureDefinition, bool) {
	def, ok := r.features[name]
	return def, ok
}

// Names returns the recognized feature names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
