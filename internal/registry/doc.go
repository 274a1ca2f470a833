// Package registry holds the recognized feature set for one invocation.
//
// The set is populated from the loaded manifest, never hardcoded: a feature
// name is "recognized" purely because a feature block declared it. The
// registry is populated and validated once at startup and is read-only
// afterwards, so concurrent target resolutions can query it without locking.
package registry
