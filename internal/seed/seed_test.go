package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmintrica/fishing-records/internal/models"
	"github.com/cosmintrica/fishing-records/internal/store"
)

func TestLoad(t *testing.T) {
	registry, err := Load()
	require.NoError(t, err)

	assert.Greater(t, registry.LocationCount(), 50)
	assert.NotEmpty(t, registry.Species())
}

func TestLoad_SpeciesLookup(t *testing.T) {
	registry, err := Load()
	require.NoError(t, err)

	carp, ok := registry.SpeciesByKey("carp")
	require.True(t, ok)
	assert.Equal(t, "Crap", carp.Name)
	assert.Equal(t, "Cyprinus carpio", carp.ScientificName)

	_, ok = registry.SpeciesByKey("kraken")
	assert.False(t, ok)
}

func TestApply_SeedsStore(t *testing.T) {
	registry, err := Load()
	require.NoError(t, err)

	s := store.NewMemoryStore()
	require.NoError(t, registry.Apply(context.Background(), s))

	locations, err := s.GetFishingLocations(context.Background())
	require.NoError(t, err)
	assert.Len(t, locations, registry.LocationCount())

	// Every seeded location carries a valid county and water type.
	for _, l := range locations {
		assert.True(t, models.ValidCounty(l.County), "county %q", l.County)
		assert.True(t, l.Type.Valid(), "water type %q", l.Type)
	}
}
