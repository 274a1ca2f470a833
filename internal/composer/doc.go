// Package composer resolves one build target's declarations into a final,
// order-stable config.BuildTargetConfig.
//
// Resolution is a single pure computation: validate the feature selections
// against the recognized set, probe (read-only) that the sibling dependency
// exists on disk, then assemble the include paths, compiler flags, and link
// set in declaration order. There is no state machine and no mutation after
// construction, so any number of targets may resolve concurrently.
package composer
