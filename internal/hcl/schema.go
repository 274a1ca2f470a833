package hcl

import "github.com/hashicorp/hcl/v2"

// --- Manifest block schemas ---

// siblingBlock represents the `sibling` block nested in `project`. The path
// is kept as a raw expression so it can reference the project's path
// variables (root, bin, lib).
type siblingBlock struct {
	Name        string         `hcl:"name,label"`
	Path        hcl.Expression `hcl:"path"`
	CoreArchive string         `hcl:"core_archive"`
	TestArchive string         `hcl:"test_archive"`
}

// projectBlock represents the top-level `project` block. Exactly one must
// appear across all manifest files.
type projectBlock struct {
	Root    string        `hcl:"root"`
	Sibling *siblingBlock `hcl:"sibling,block"`
}

// featureBlock declares one recognized optional dependency.
type featureBlock struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
	Archive     string `hcl:"archive"`
}

// enableBlock selects a recognized feature for a target. Include and lib are
// expressions so manifests can write e.g. include = "${root}/include".
type enableBlock struct {
	Feature string         `hcl:"feature,label"`
	Include hcl.Expression `hcl:"include"`
	Lib     hcl.Expression `hcl:"lib"`
}

// targetBlock represents a `target` block. The order of its enable blocks is
// order-significant and survives decoding untouched.
type targetBlock struct {
	Name    string         `hcl:"name,label"`
	CFlags  []string       `hcl:"cflags,optional"`
	Enables []*enableBlock `hcl:"enable,block"`
}

// fileRoot is the top-level structure used to decode any manifest file. Any
// block may appear in any file; the loader merges them in discovery order.
type fileRoot struct {
	Projects []*projectBlock `hcl:"project,block"`
	Features []*featureBlock `hcl:"feature,block"`
	Targets  []*targetBlock  `hcl:"target,block"`
	Remain   hcl.Body        `hcl:",remain"`
}
