// Package hcl implements the config.Loader interface for HCL manifest files.
//
// It discovers .hcl files under a path, parses them with hclparse, decodes
// the blocks with gohcl, evaluates path expressions against the project's
// eval context, and translates the result into the format-agnostic model in
// the config package. Block declaration order is preserved through every
// stage; the loader never sorts.
package hcl
