// Package ranking derives leaderboard views and per-user statistics from
// record listings. It is stateless; every call recomputes from the slices
// it is given, which the store already returns newest-first. The weight
// sort is stable so that among equal weights the newer record keeps the
// higher position.
package ranking

import (
	"sort"

	"github.com/google/uuid"

	"github.com/cosmintrica/fishing-records/internal/models"
)

const leaderboardSize = 10

// FilterAll is the sentinel query value meaning "no filtering".
const FilterAll = "all"

// Filters narrow a leaderboard query. Empty or "all" values match
// everything.
type Filters struct {
	Species   string
	County    string
	WaterType string
}

func (f Filters) match(r *models.FishingRecord) bool {
	if f.Species != "" && f.Species != FilterAll && r.Species != f.Species {
		return false
	}
	if f.County != "" && f.County != FilterAll && r.County != f.County {
		return false
	}
	if f.WaterType != "" && f.WaterType != FilterAll && string(r.WaterType) != f.WaterType {
		return false
	}
	return true
}

// Entry is one leaderboard row. User is nil when the submitter no longer
// resolves.
type Entry struct {
	Position int                  `json:"position"`
	Record   models.FishingRecord `json:"record"`
	User     *models.PublicUser   `json:"user"`
}

// UserLookup resolves a user id to its public fields. A nil result marks
// the user as unresolved.
type UserLookup func(id uuid.UUID) *models.PublicUser

// Leaderboard filters records, orders them by weight descending and
// returns the top ten with 1-based positions and submitter identity
// attached.
func Leaderboard(records []models.FishingRecord, lookup UserLookup, f Filters) []Entry {
	filtered := make([]models.FishingRecord, 0, len(records))
	for i := range records {
		if f.match(&records[i]) {
			filtered = append(filtered, records[i])
		}
	}

	sortByWeight(filtered)

	if len(filtered) > leaderboardSize {
		filtered = filtered[:leaderboardSize]
	}

	entries := make([]Entry, 0, len(filtered))
	for i, r := range filtered {
		entries = append(entries, Entry{
			Position: i + 1,
			Record:   r,
			User:     lookup(r.UserID),
		})
	}
	return entries
}

// ProfileStats aggregates a user's record count, personal bests per
// species, national and county ranks, and their five most recent records.
type ProfileStats struct {
	TotalRecords  int                    `json:"total_records"`
	PersonalBests []models.FishingRecord `json:"personal_bests"`
	Positions     Positions              `json:"positions"`
	RecentRecords []models.FishingRecord `json:"recent_records"`
}

type Positions struct {
	National *int `json:"national"`
	County   *int `json:"county"`
}

// UserProfileStats computes profile statistics for one user. userRecords
// must already be the user's records newest-first; allRecords is the full
// set. The county rank is taken over records whose county matches the
// user's own county code, so it stays nil for users without one.
func UserProfileStats(user *models.User, userRecords, allRecords []models.FishingRecord) ProfileStats {
	stats := ProfileStats{
		TotalRecords:  len(userRecords),
		PersonalBests: personalBests(userRecords),
		RecentRecords: recentRecords(userRecords, 5),
	}

	best := heaviest(userRecords)
	if best == nil {
		return stats
	}

	national := rankOf(best.ID, allRecords)
	stats.Positions.National = national

	if user.County != nil {
		countyRecords := make([]models.FishingRecord, 0, len(allRecords))
		for _, r := range allRecords {
			if r.County == *user.County {
				countyRecords = append(countyRecords, r)
			}
		}
		stats.Positions.County = rankOf(best.ID, countyRecords)
	}

	return stats
}

// personalBests keeps the heaviest record per distinct species, ordered by
// weight descending.
func personalBests(records []models.FishingRecord) []models.FishingRecord {
	bySpecies := make(map[string]models.FishingRecord)
	for _, r := range records {
		cur, ok := bySpecies[r.Species]
		if !ok || r.WeightKg() > cur.WeightKg() {
			bySpecies[r.Species] = r
		}
	}

	out := make([]models.FishingRecord, 0, len(bySpecies))
	for _, r := range bySpecies {
		out = append(out, r)
	}
	sortByWeight(out)
	return out
}

func recentRecords(records []models.FishingRecord, n int) []models.FishingRecord {
	if len(records) > n {
		records = records[:n]
	}
	out := make([]models.FishingRecord, len(records))
	copy(out, records)
	return out
}

// heaviest returns the user's best record, or nil when there are none.
func heaviest(records []models.FishingRecord) *models.FishingRecord {
	var best *models.FishingRecord
	for i := range records {
		if best == nil || records[i].WeightKg() > best.WeightKg() {
			best = &records[i]
		}
	}
	return best
}

// rankOf finds the 1-based position of a record inside the weight-sorted
// version of the given set, or nil when the record is not part of it.
func rankOf(id uuid.UUID, records []models.FishingRecord) *int {
	sorted := make([]models.FishingRecord, len(records))
	copy(sorted, records)
	sortByWeight(sorted)

	for i := range sorted {
		if sorted[i].ID == id {
			pos := i + 1
			return &pos
		}
	}
	return nil
}

func sortByWeight(records []models.FishingRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].WeightKg() > records[j].WeightKg()
	})
}
