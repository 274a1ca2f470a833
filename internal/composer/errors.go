package composer

import (
	"fmt"
	"strings"
)

// MissingDependencyError reports that a required dependency directory does
// not exist on disk. It is terminal for the target being resolved.
type MissingDependencyError struct {
	Target string
	Path   string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("target %q: missing dependency: directory %s does not exist", e.Target, e.Path)
}

// UnrecognizedFeatureError reports that a target enabled a feature name
// outside the recognized set. It is raised before any filesystem probing.
type UnrecognizedFeatureError struct {
	Target  string
	Feature string
	Known   []string
}

func (e *UnrecognizedFeatureError) Error() string {
	return fmt.Sprintf("target %q: unrecognized feature %q (recognized features: %s)",
		e.Target, e.Feature, strings.Join(e.Known, ", "))
}
