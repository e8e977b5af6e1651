package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cosmintrica/fishing-records/internal/models"
)

// MemoryStore keeps everything in process-lifetime maps. It is the default
// backend; the mutex makes the read-then-write uniqueness check in
// CreateUser atomic under concurrent registrations.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]models.User
	records   map[uuid.UUID]models.FishingRecord
	locations map[uuid.UUID]models.FishingLocation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[uuid.UUID]models.User),
		records:   make(map[uuid.UUID]models.FishingRecord),
		locations: make(map[uuid.UUID]models.FishingLocation),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrDuplicateEmail
		}
		if existing.Username == u.Username {
			return ErrDuplicateUsername
		}
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now().UTC()
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) UpdateUserProfile(_ context.Context, id uuid.UUID, upd models.ProfileUpdateRequest) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.County != nil {
		u.County = upd.County
	}
	s.users[id] = u
	return u, nil
}

func (s *MemoryStore) CreateFishingRecord(_ context.Context, r *models.FishingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Verified = false
	r.CreatedAt = time.Now().UTC()
	s.records[r.ID] = *r
	return nil
}

func (s *MemoryStore) GetFishingRecord(_ context.Context, id uuid.UUID) (models.FishingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return models.FishingRecord{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) GetFishingRecords(_ context.Context) ([]models.FishingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FishingRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryStore) GetFishingRecordsByUser(_ context.Context, userID uuid.UUID) ([]models.FishingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.FishingRecord
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryStore) SetRecordVerified(_ context.Context, id uuid.UUID, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	r.Verified = verified
	s.records[id] = r
	return nil
}

func (s *MemoryStore) CreateFishingLocation(_ context.Context, l *models.FishingLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	s.locations[l.ID] = *l
	return nil
}

func (s *MemoryStore) GetFishingLocation(_ context.Context, id uuid.UUID) (models.FishingLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.locations[id]
	if !ok {
		return models.FishingLocation{}, ErrNotFound
	}
	return l, nil
}

func (s *MemoryStore) GetFishingLocations(_ context.Context) ([]models.FishingLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FishingLocation, 0, len(s.locations))
	for _, l := range s.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) Counts(_ context.Context) (Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Counts{
		Users:     len(s.users),
		Records:   len(s.records),
		Locations: len(s.locations),
	}, nil
}

// sortNewestFirst orders records by creation time descending. Record IDs
// break ties so the ordering stays deterministic for records created within
// the same clock tick.
func sortNewestFirst(records []models.FishingRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID.String() > records[j].ID.String()
	})
}
