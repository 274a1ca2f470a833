// Package app wires the application together: it owns the logger, drives
// manifest loading, feature registry population, concurrent target
// resolution, and emission of the final configuration.
package app
