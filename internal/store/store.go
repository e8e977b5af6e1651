package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cosmintrica/fishing-records/internal/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)

// Counts holds the global totals served by the stats endpoint.
type Counts struct {
	Users     int `json:"active_users"`
	Records   int `json:"total_records"`
	Locations int `json:"total_locations"`
}

// Store is the persistence boundary for users, fishing records and the
// seeded location reference data. Implementations must enforce the
// username/email uniqueness invariant atomically inside CreateUser.
type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUserProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdateRequest) (models.User, error)

	CreateFishingRecord(ctx context.Context, r *models.FishingRecord) error
	GetFishingRecord(ctx context.Context, id uuid.UUID) (models.FishingRecord, error)
	GetFishingRecords(ctx context.Context) ([]models.FishingRecord, error)
	GetFishingRecordsByUser(ctx context.Context, userID uuid.UUID) ([]models.FishingRecord, error)
	SetRecordVerified(ctx context.Context, id uuid.UUID, verified bool) error

	CreateFishingLocation(ctx context.Context, l *models.FishingLocation) error
	GetFishingLocation(ctx context.Context, id uuid.UUID) (models.FishingLocation, error)
	GetFishingLocations(ctx context.Context) ([]models.FishingLocation, error)

	Counts(ctx context.Context) (Counts, error)
}
