// Package seed ships the static Romanian reference data: fishing locations
// for the map browser and the fish species list. Both are embedded JSON,
// validated once at startup and read-only afterwards.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/cosmintrica/fishing-records/internal/models"
	"github.com/cosmintrica/fishing-records/internal/store"
)

//go:embed locations.json
var locationsJSON []byte

//go:embed species.json
var speciesJSON []byte

type locationJSON struct {
	Name        string   `json:"name"`
	Latitude    string   `json:"latitude"`
	Longitude   string   `json:"longitude"`
	Type        string   `json:"type"`
	County      string   `json:"county"`
	FishSpecies []string `json:"fishSpecies"`
	Description string   `json:"description"`
}

// Registry holds the loaded reference data.
type Registry struct {
	locations []models.FishingLocation
	species   []models.FishSpecies
	byKey     map[string]int
}

// Load parses and validates the embedded data. Duplicate location names or
// species keys, unknown counties and unknown water types are rejected so a
// bad edit fails the boot instead of serving garbage.
func Load() (*Registry, error) {
	var rawLocations []locationJSON
	if err := json.Unmarshal(locationsJSON, &rawLocations); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}
	if len(rawLocations) == 0 {
		return nil, fmt.Errorf("location list is empty")
	}

	seenName := map[string]bool{}
	locations := make([]models.FishingLocation, 0, len(rawLocations))
	for i, lj := range rawLocations {
		if lj.Name == "" {
			return nil, fmt.Errorf("missing location name at index %d", i)
		}
		if seenName[lj.Name] {
			return nil, fmt.Errorf("duplicate location %q", lj.Name)
		}
		seenName[lj.Name] = true

		if !models.ValidCounty(lj.County) {
			return nil, fmt.Errorf("location %q: unknown county %q", lj.Name, lj.County)
		}
		wt := models.WaterType(lj.Type)
		if !wt.Valid() {
			return nil, fmt.Errorf("location %q: unknown water type %q", lj.Name, lj.Type)
		}

		loc := models.FishingLocation{
			Name:        lj.Name,
			Latitude:    lj.Latitude,
			Longitude:   lj.Longitude,
			Type:        wt,
			County:      lj.County,
			FishSpecies: pq.StringArray(lj.FishSpecies),
		}
		if lj.Description != "" {
			desc := lj.Description
			loc.Description = &desc
		}
		locations = append(locations, loc)
	}

	var species []models.FishSpecies
	if err := json.Unmarshal(speciesJSON, &species); err != nil {
		return nil, fmt.Errorf("parse species: %w", err)
	}
	if len(species) == 0 {
		return nil, fmt.Errorf("species list is empty")
	}

	byKey := make(map[string]int, len(species))
	for i, sp := range species {
		if sp.Key == "" {
			return nil, fmt.Errorf("missing species key at index %d", i)
		}
		if _, dup := byKey[sp.Key]; dup {
			return nil, fmt.Errorf("duplicate species key %q", sp.Key)
		}
		byKey[sp.Key] = i
	}

	return &Registry{locations: locations, species: species, byKey: byKey}, nil
}

// Apply inserts the seeded locations into the store.
func (r *Registry) Apply(ctx context.Context, s store.Store) error {
	for i := range r.locations {
		if err := s.CreateFishingLocation(ctx, &r.locations[i]); err != nil {
			return fmt.Errorf("seed location %q: %w", r.locations[i].Name, err)
		}
	}
	return nil
}

// Species returns the species reference list.
func (r *Registry) Species() []models.FishSpecies {
	out := make([]models.FishSpecies, len(r.species))
	copy(out, r.species)
	return out
}

// SpeciesByKey looks a species up by its stable key.
func (r *Registry) SpeciesByKey(key string) (models.FishSpecies, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return models.FishSpecies{}, false
	}
	return r.species[i], true
}

// LocationCount reports how many locations were loaded.
func (r *Registry) LocationCount() int { return len(r.locations) }
