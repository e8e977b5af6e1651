package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// FishingLocation is static reference data seeded at startup and read-only
// afterwards.
type FishingLocation struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Latitude    string         `db:"latitude" json:"latitude"`
	Longitude   string         `db:"longitude" json:"longitude"`
	Type        WaterType      `db:"type" json:"type"`
	County      string         `db:"county" json:"county"`
	FishSpecies pq.StringArray `db:"fish_species" json:"fish_species"`
	Description *string        `db:"description" json:"description"`
}

// FishSpecies describes one entry of the species reference list.
type FishSpecies struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	Category       string `json:"category"`
	Description    string `json:"description"`
}
