package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/composego/internal/config"
)

func TestPopulateFromModel_KeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{Features: []*config.FeatureDefinition{
		{Name: "zeta", Archive: "libzeta.a"},
		{Name: "alpha", Archive: "libalpha.a"},
		{Name: "mid", Archive: "libmid.a"},
	}}
	reg := New()

	// --- Act ---
	err := reg.PopulateFromModel(context.Background(), model)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Names(),
		"names must come back in declaration order, not sorted")

	def, ok := reg.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, "libalpha.a", def.Archive)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestPopulateFromModel_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{Features: []*config.FeatureDefinition{
		{Name: "dup", Archive: "a.a"},
		{Name: "dup", Archive: "b.a"},
	}}
	reg := New()

	// --- Act ---
	err := reg.PopulateFromModel(context.Background(), model)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), `feature "dup" declared more than once`)
}

func TestValidate_RequiresArchive(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &config.Model{Features: []*config.FeatureDefinition{
		{Name: "ok", Archive: "libok.a"},
		{Name: "broken"},
	}}
	reg := New()
	require.NoError(t, reg.PopulateFromModel(context.Background(), model))

	// --- Act ---
	err := reg.Validate(context.Background())

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), `feature "broken" declares no archive`)
}

func TestNames_ReturnsCopy(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := New()
	require.NoError(t, reg.PopulateFromModel(context.Background(), &config.Model{
		Features: []*config.FeatureDefinition{{Name: "a", Archive: "a.a"}},
	}))

	// --- Act ---
	names := reg.Names()
	names[0] = "mutated"

	// --- Assert ---
	assert.Equal(t, []string{"a"}, reg.Names(), "callers must not be able to mutate registry state")
}
