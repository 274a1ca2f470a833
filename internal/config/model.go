package config

import "path/filepath"

// Model is the unified, format-agnostic representation of an entire build
// manifest: the project layout, the recognized feature set, and every
// declared build target.
//
// Slices are declaration-ordered. Order is semantically significant for
// targets and feature selections (link order of static archives is not
// commutative), so nothing downstream may sort or re-bucket them.
type Model struct {
	Project  *Project
	Features []*FeatureDefinition
	Targets  []*Target
}

// Project declares where the build tree lives and which sibling dependency
// it is layered on top of.
type Project struct {
	// Root is the project root. bin/ and lib/ paths are derived from it at
	// resolution time, never declared.
	Root    string
	Sibling *Sibling
}

// BinPath returns the derived binary output directory, root/bin.
func (p *Project) BinPath() string { return filepath.Join(p.Root, "bin") }

// LibPath returns the derived library directory, root/lib.
func (p *Project) LibPath() string { return filepath.Join(p.Root, "lib") }

// Sibling is an external dependency located relative to the project rather
// than installed system-wide. Its lib directory contributes the first include
// path and its two archives head every target's link set.
type Sibling struct {
	Name        string
	Path        string
	CoreArchive string
	TestArchive string
}

// LibPath returns the sibling's library directory, path/lib. Both of the
// sibling's archives live there.
func (s *Sibling) LibPath() string { return filepath.Join(s.Path, "lib") }

// FeatureDefinition declares one recognized optional dependency. The
// recognized set is manifest data, not a hardcoded table: a target may only
// enable features that appear here.
type FeatureDefinition struct {
	Name        string
	Description string
	// Archive is the file name of the static archive the feature links,
	// resolved against the library path a target supplies when enabling it.
	Archive string
}

// Target is one build target declaration: its compiler flags and the ordered
// list of optional features it enables.
type Target struct {
	Name    string
	CFlags  []string
	Enables []*FeatureSelection
}

// FeatureSelection enables one recognized feature for a target. A selection
// is all-or-nothing: both paths are required, so a feature is either fully
// resolved or entirely absent from the target.
type FeatureSelection struct {
	Feature     string
	IncludePath string
	LibPath     string
}
