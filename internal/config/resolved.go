package config

// PathVariable is a named, resolved filesystem path. Once constructed it is
// never mutated; a resolution produces fresh values rather than rewriting
// old ones.
type PathVariable struct {
	Name string
	Path string
}

// LinkSet is the ordered sequence of archive paths handed to the linker.
// Declaration order is preserved exactly: static archive link order carries
// meaning, so duplicates are permitted and entries are never reordered.
type LinkSet []string

// BuildTargetConfig is the fully resolved configuration for one build
// target. It is owned by a single target resolution and is safe to read from
// any goroutine because nothing writes to it after construction.
type BuildTargetConfig struct {
	Target string

	// BinPath and LibPath are derived from the project root.
	BinPath string
	LibPath string

	// IncludePaths is ordered: the sibling dependency's lib directory first,
	// then each enabled feature's include directory in declaration order.
	IncludePaths []PathVariable

	// CFlags are passed through in declaration order.
	CFlags []string

	// Links holds the sibling core archive, the sibling test-support
	// archive, then each enabled feature's archive in declaration order.
	Links LinkSet
}
