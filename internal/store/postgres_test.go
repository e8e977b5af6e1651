package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmintrica/fishing-records/internal/models"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PostgresStore{db: sqlx.NewDb(db, "postgres")}, mock
}

func TestPostgresStore_CreateUser_DuplicateEmail(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := s.CreateUser(context.Background(), newTestUser("ion_marinescu", "ion@x.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateUser_DuplicateUsername(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	err := s.CreateUser(context.Background(), newTestUser("ion_marinescu", "ion@x.com"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateUser_OtherErrorPassesThrough(t *testing.T) {
	s, mock := newMockStore(t)

	dbErr := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO users").WillReturnError(dbErr)

	err := s.CreateUser(context.Background(), newTestUser("ion_marinescu", "ion@x.com"))
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
	assert.NotErrorIs(t, err, ErrDuplicateUsername)
}

func TestPostgresStore_CreateUser_NonUniquePqErrorPassesThrough(t *testing.T) {
	s, mock := newMockStore(t)

	pqErr := &pq.Error{Code: "23502", Column: "email"}
	mock.ExpectExec("INSERT INTO users").WillReturnError(pqErr)

	err := s.CreateUser(context.Background(), newTestUser("ion_marinescu", "ion@x.com"))
	assert.ErrorIs(t, err, pqErr)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}

func TestPostgresStore_GetUser_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))

	_, err := s.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetFishingRecord_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM fishing_records WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "species"}))

	_, err := s.GetFishingRecord(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_GetUserByEmail(t *testing.T) {
	s, mock := newMockStore(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\)").
		WithArgs("Ion@X.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(id.String(), "ion_marinescu", "ion@x.com"))

	u, err := s.GetUserByEmail(context.Background(), "Ion@X.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "ion_marinescu", u.Username)
}

func TestPostgresStore_SetRecordVerified(t *testing.T) {
	s, mock := newMockStore(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE fishing_records SET verified").
		WithArgs(id, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.SetRecordVerified(context.Background(), id, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SetRecordVerified_UnknownRecord(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("UPDATE fishing_records SET verified").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.SetRecordVerified(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_CreateFishingRecord_StartsUnverified(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO fishing_records").
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := models.FishingRecord{
		UserID:    uuid.New(),
		Species:   "Crap",
		Weight:    "9.8",
		County:    "IF",
		WaterType: models.WaterLake,
		Verified:  true,
	}
	require.NoError(t, s.CreateFishingRecord(context.Background(), &r))
	assert.False(t, r.Verified)
	assert.NotEqual(t, uuid.Nil, r.ID)
}
