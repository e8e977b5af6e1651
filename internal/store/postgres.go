package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/cosmintrica/fishing-records/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	county        TEXT,
	created_at    TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (LOWER(email));
CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username);

CREATE TABLE IF NOT EXISTS fishing_records (
	id          UUID PRIMARY KEY,
	user_id     UUID NOT NULL,
	species     TEXT NOT NULL,
	weight      TEXT NOT NULL,
	length      INTEGER,
	location    TEXT NOT NULL,
	county      TEXT NOT NULL,
	water_type  TEXT NOT NULL,
	latitude    TEXT,
	longitude   TEXT,
	date_caught TIMESTAMPTZ NOT NULL,
	description TEXT,
	photos      TEXT[] NOT NULL DEFAULT '{}',
	verified    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS fishing_records_created_idx ON fishing_records (created_at DESC);
CREATE INDEX IF NOT EXISTS fishing_records_user_idx ON fishing_records (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS fishing_locations (
	id           UUID PRIMARY KEY,
	name         TEXT NOT NULL,
	latitude     TEXT NOT NULL,
	longitude    TEXT NOT NULL,
	type         TEXT NOT NULL,
	county       TEXT NOT NULL,
	fish_species TEXT[] NOT NULL DEFAULT '{}',
	description  TEXT
);
`

// PostgresStore backs the Store interface with Postgres through sqlx. The
// unique indexes on users close the registration race at the database
// level.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) (*PostgresStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users(id, username, email, password_hash, first_name, last_name, county, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.County, u.CreatedAt)
	return mapUniqueViolation(err)
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "email") {
			return ErrDuplicateEmail
		}
		return ErrDuplicateUsername
	}
	return err
}

func (s *PostgresStore) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, "SELECT * FROM users WHERE id = $1", id)
	return u, mapNoRows(err)
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, "SELECT * FROM users WHERE LOWER(email) = LOWER($1)", email)
	return u, mapNoRows(err)
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, "SELECT * FROM users WHERE username = $1", username)
	return u, mapNoRows(err)
}

func (s *PostgresStore) UpdateUserProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdateRequest) (models.User, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET
			first_name = COALESCE($2, first_name),
			last_name  = COALESCE($3, last_name),
			county     = COALESCE($4, county)
		 WHERE id = $1`,
		id, upd.FirstName, upd.LastName, upd.County)
	if err != nil {
		return models.User{}, err
	}
	return s.GetUser(ctx, id)
}

func (s *PostgresStore) CreateFishingRecord(ctx context.Context, r *models.FishingRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Verified = false
	r.CreatedAt = time.Now().UTC()
	if r.Photos == nil {
		r.Photos = pq.StringArray{}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fishing_records(id, user_id, species, weight, length, location, county,
			water_type, latitude, longitude, date_caught, description, photos, verified, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		r.ID, r.UserID, r.Species, r.Weight, r.Length, r.Location, r.County,
		r.WaterType, r.Latitude, r.Longitude, r.DateCaught, r.Description, r.Photos, r.Verified, r.CreatedAt)
	return err
}

func (s *PostgresStore) GetFishingRecord(ctx context.Context, id uuid.UUID) (models.FishingRecord, error) {
	var r models.FishingRecord
	err := s.db.GetContext(ctx, &r, "SELECT * FROM fishing_records WHERE id = $1", id)
	return r, mapNoRows(err)
}

func (s *PostgresStore) GetFishingRecords(ctx context.Context) ([]models.FishingRecord, error) {
	records := []models.FishingRecord{}
	err := s.db.SelectContext(ctx, &records,
		"SELECT * FROM fishing_records ORDER BY created_at DESC, id DESC")
	return records, err
}

func (s *PostgresStore) GetFishingRecordsByUser(ctx context.Context, userID uuid.UUID) ([]models.FishingRecord, error) {
	records := []models.FishingRecord{}
	err := s.db.SelectContext(ctx, &records,
		"SELECT * FROM fishing_records WHERE user_id = $1 ORDER BY created_at DESC, id DESC", userID)
	return records, err
}

func (s *PostgresStore) SetRecordVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE fishing_records SET verified = $2 WHERE id = $1", id, verified)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CreateFishingLocation(ctx context.Context, l *models.FishingLocation) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.FishSpecies == nil {
		l.FishSpecies = pq.StringArray{}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fishing_locations(id, name, latitude, longitude, type, county, fish_species, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO NOTHING`,
		l.ID, l.Name, l.Latitude, l.Longitude, l.Type, l.County, l.FishSpecies, l.Description)
	return err
}

func (s *PostgresStore) GetFishingLocation(ctx context.Context, id uuid.UUID) (models.FishingLocation, error) {
	var l models.FishingLocation
	err := s.db.GetContext(ctx, &l, "SELECT * FROM fishing_locations WHERE id = $1", id)
	return l, mapNoRows(err)
}

func (s *PostgresStore) GetFishingLocations(ctx context.Context) ([]models.FishingLocation, error) {
	locations := []models.FishingLocation{}
	err := s.db.SelectContext(ctx, &locations, "SELECT * FROM fishing_locations ORDER BY name")
	return locations, err
}

func (s *PostgresStore) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.db.GetContext(ctx, &c, `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM fishing_records) AS records,
			(SELECT COUNT(*) FROM fishing_locations) AS locations`)
	return c, err
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
