package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_DerivedPaths(t *testing.T) {
	t.Parallel()

	p := &Project{Root: "/proj"}

	assert.Equal(t, "/proj/bin", p.BinPath())
	assert.Equal(t, "/proj/lib", p.LibPath())
}

func TestSibling_LibPath(t *testing.T) {
	t.Parallel()

	s := &Sibling{Path: "/deps/sonlib"}

	assert.Equal(t, "/deps/sonlib/lib", s.LibPath())
}
