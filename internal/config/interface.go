package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifest declarations from a given path (a file or a
	// directory searched recursively) and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
