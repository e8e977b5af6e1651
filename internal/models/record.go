package models

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// WaterType enumerates the kinds of water a record or location can refer to.
type WaterType string

const (
	WaterRiver       WaterType = "river"
	WaterLake        WaterType = "lake"
	WaterPond        WaterType = "pond"
	WaterPrivatePond WaterType = "private_pond"
	WaterCoastal     WaterType = "coastal"
	WaterReservoir   WaterType = "reservoir"
	WaterCanal       WaterType = "canal"
)

func (w WaterType) Valid() bool {
	switch w {
	case WaterRiver, WaterLake, WaterPond, WaterPrivatePond, WaterCoastal, WaterReservoir, WaterCanal:
		return true
	}
	return false
}

type FishingRecord struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	UserID      uuid.UUID      `db:"user_id" json:"user_id"`
	Species     string         `db:"species" json:"species"`
	Weight      string         `db:"weight" json:"weight"`
	Length      *int           `db:"length" json:"length"`
	Location    string         `db:"location" json:"location"`
	County      string         `db:"county" json:"county"`
	WaterType   WaterType      `db:"water_type" json:"water_type"`
	Latitude    *string        `db:"latitude" json:"latitude"`
	Longitude   *string        `db:"longitude" json:"longitude"`
	DateCaught  time.Time      `db:"date_caught" json:"date_caught"`
	Description *string        `db:"description" json:"description"`
	Photos      pq.StringArray `db:"photos" json:"photos"`
	Verified    bool           `db:"verified" json:"verified"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// WeightKg parses the submitted weight string. Unparsable, negative and
// non-finite weights rank as zero rather than failing the whole view.
func (r *FishingRecord) WeightKg() float64 {
	w, err := strconv.ParseFloat(r.Weight, 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

type RecordRequest struct {
	Species     string   `json:"species" binding:"required"`
	Weight      string   `json:"weight" binding:"required"`
	Length      *int     `json:"length"`
	Location    string   `json:"location" binding:"required"`
	County      string   `json:"county" binding:"required"`
	WaterType   string   `json:"water_type" binding:"required"`
	Latitude    *string  `json:"latitude"`
	Longitude   *string  `json:"longitude"`
	DateCaught  string   `json:"date_caught" binding:"required"`
	Description *string  `json:"description"`
	Photos      []string `json:"photos"`
}

// PendingRecord joins an unverified record with its submitter for the
// moderation queue.
type PendingRecord struct {
	Record    FishingRecord `json:"record"`
	Submitter *PublicUser   `json:"submitter"`
}

type VerifyRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
