// Package executor fans target resolution out across a pool of workers.
//
// Targets share no mutable state, so they resolve independently; a failed
// target never aborts its siblings. Results come back in target declaration
// order regardless of which worker finished first.
package executor
