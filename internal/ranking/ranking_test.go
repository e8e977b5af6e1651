package ranking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmintrica/fishing-records/internal/models"
)

func record(userID uuid.UUID, species, weight, county string, age time.Duration) models.FishingRecord {
	return models.FishingRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Species:   species,
		Weight:    weight,
		County:    county,
		WaterType: models.WaterLake,
		CreatedAt: time.Now().Add(-age),
	}
}

func noLookup(uuid.UUID) *models.PublicUser { return nil }

func TestLeaderboard_OrdersByWeightDescending(t *testing.T) {
	userID := uuid.New()
	records := []models.FishingRecord{
		record(userID, "Crap", "9.8", "IF", 0),
		record(userID, "Som", "15.2", "CL", time.Hour),
		record(userID, "Știucă", "4.5", "VL", 2*time.Hour),
	}

	entries := Leaderboard(records, noLookup, Filters{})
	require.Len(t, entries, 3)

	assert.Equal(t, "15.2", entries[0].Record.Weight)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "9.8", entries[1].Record.Weight)
	assert.Equal(t, 2, entries[1].Position)
	assert.Equal(t, "4.5", entries[2].Record.Weight)
	assert.Equal(t, 3, entries[2].Position)

	for i := 0; i < len(entries)-1; i++ {
		assert.GreaterOrEqual(t,
			entries[i].Record.WeightKg(), entries[i+1].Record.WeightKg())
	}
}

func TestLeaderboard_CountyFilterScenario(t *testing.T) {
	userID := uuid.New()
	records := []models.FishingRecord{
		record(userID, "Crap", "9.8", "IF", 0),
		record(userID, "Crap", "15.2", "CL", time.Hour),
	}

	entries := Leaderboard(records, noLookup, Filters{County: "IF"})
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "9.8", entries[0].Record.Weight)
}

func TestLeaderboard_TruncatesToTopTen(t *testing.T) {
	userID := uuid.New()
	var records []models.FishingRecord
	for i := 0; i < 25; i++ {
		records = append(records, record(userID, "Crap", "5.0", "IF", time.Duration(i)*time.Minute))
	}

	entries := Leaderboard(records, noLookup, Filters{})
	assert.Len(t, entries, 10)
}

func TestLeaderboard_AbsentFilterValueReturnsEmpty(t *testing.T) {
	userID := uuid.New()
	records := []models.FishingRecord{
		record(userID, "Crap", "9.8", "IF", 0),
	}

	assert.Empty(t, Leaderboard(records, noLookup, Filters{Species: "Som"}))
	assert.Empty(t, Leaderboard(records, noLookup, Filters{County: "CJ"}))
	assert.Empty(t, Leaderboard(records, noLookup, Filters{WaterType: "river"}))
}

func TestLeaderboard_AllSentinelMatchesEverything(t *testing.T) {
	userID := uuid.New()
	records := []models.FishingRecord{
		record(userID, "Crap", "9.8", "IF", 0),
		record(userID, "Som", "15.2", "CL", time.Hour),
	}

	entries := Leaderboard(records, noLookup, Filters{
		Species:   FilterAll,
		County:    FilterAll,
		WaterType: FilterAll,
	})
	assert.Len(t, entries, 2)
}

func TestLeaderboard_UnparsableWeightRanksAsZero(t *testing.T) {
	userID := uuid.New()
	records := []models.FishingRecord{
		record(userID, "Crap", "abc", "IF", 0),
		record(userID, "Som", "2.5", "CL", time.Hour),
	}

	entries := Leaderboard(records, noLookup, Filters{})
	require.Len(t, entries, 2)
	assert.Equal(t, "2.5", entries[0].Record.Weight)
	assert.Equal(t, "abc", entries[1].Record.Weight)
}

func TestLeaderboard_NonFiniteWeightRanksAsZero(t *testing.T) {
	userID := uuid.New()
	records := []models.FishingRecord{
		record(userID, "Crap", "NaN", "IF", 0),
		record(userID, "Som", "+Inf", "CL", time.Hour),
		record(userID, "Știucă", "5.0", "VL", 2*time.Hour),
		record(userID, "Biban", "3.0", "BR", 3*time.Hour),
	}

	entries := Leaderboard(records, noLookup, Filters{})
	require.Len(t, entries, 4)
	assert.Equal(t, "5.0", entries[0].Record.Weight)
	assert.Equal(t, "3.0", entries[1].Record.Weight)

	for i := 0; i < len(entries)-1; i++ {
		assert.GreaterOrEqual(t,
			entries[i].Record.WeightKg(), entries[i+1].Record.WeightKg())
	}
}

func TestLeaderboard_TiesBreakNewestFirst(t *testing.T) {
	userID := uuid.New()
	older := record(userID, "Crap", "7.0", "IF", time.Hour)
	newer := record(userID, "Crap", "7.0", "IF", 0)

	// The store hands records to the engine newest first; the stable weight
	// sort must preserve that order among equal weights.
	entries := Leaderboard([]models.FishingRecord{newer, older}, noLookup, Filters{})
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].Record.ID)
	assert.Equal(t, older.ID, entries[1].Record.ID)
}

func TestLeaderboard_AttachesUserOrNil(t *testing.T) {
	known := uuid.New()
	unknown := uuid.New()
	records := []models.FishingRecord{
		record(known, "Crap", "9.8", "IF", 0),
		record(unknown, "Som", "15.2", "CL", time.Hour),
	}

	lookup := func(id uuid.UUID) *models.PublicUser {
		if id == known {
			return &models.PublicUser{ID: id, Username: "ion_marinescu"}
		}
		return nil
	}

	entries := Leaderboard(records, lookup, Filters{})
	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].User)
	require.NotNil(t, entries[1].User)
	assert.Equal(t, "ion_marinescu", entries[1].User.Username)
}

func TestUserProfileStats_NoRecords(t *testing.T) {
	user := models.User{ID: uuid.New()}

	stats := UserProfileStats(&user, nil, nil)

	assert.Equal(t, 0, stats.TotalRecords)
	assert.Empty(t, stats.PersonalBests)
	assert.Nil(t, stats.Positions.National)
	assert.Nil(t, stats.Positions.County)
	assert.Empty(t, stats.RecentRecords)
}

func TestUserProfileStats_PersonalBestsPerSpecies(t *testing.T) {
	user := models.User{ID: uuid.New()}
	userRecords := []models.FishingRecord{
		record(user.ID, "Crap", "9.8", "IF", 0),
		record(user.ID, "Crap", "12.1", "IF", time.Hour),
		record(user.ID, "Som", "15.2", "CL", 2*time.Hour),
	}

	stats := UserProfileStats(&user, userRecords, userRecords)

	assert.Equal(t, 3, stats.TotalRecords)
	require.Len(t, stats.PersonalBests, 2)

	bests := map[string]string{}
	for _, r := range stats.PersonalBests {
		bests[r.Species] = r.Weight
	}
	assert.Equal(t, "12.1", bests["Crap"])
	assert.Equal(t, "15.2", bests["Som"])
}

func TestUserProfileStats_NationalRank(t *testing.T) {
	ion := models.User{ID: uuid.New()}
	rival := uuid.New()

	ionRecords := []models.FishingRecord{
		record(ion.ID, "Crap", "9.8", "IF", 0),
	}
	allRecords := append([]models.FishingRecord{
		record(rival, "Som", "15.2", "CL", time.Hour),
		record(rival, "Știucă", "4.5", "VL", 2*time.Hour),
	}, ionRecords...)

	stats := UserProfileStats(&ion, ionRecords, allRecords)

	require.NotNil(t, stats.Positions.National)
	assert.Equal(t, 2, *stats.Positions.National)
}

func TestUserProfileStats_CountyRank(t *testing.T) {
	county := "IF"
	ion := models.User{ID: uuid.New(), County: &county}
	rival := uuid.New()

	ionRecords := []models.FishingRecord{
		record(ion.ID, "Crap", "9.8", "IF", 0),
	}
	allRecords := append([]models.FishingRecord{
		record(rival, "Som", "15.2", "CL", time.Hour),
		record(rival, "Crap", "11.0", "IF", 2*time.Hour),
	}, ionRecords...)

	stats := UserProfileStats(&ion, ionRecords, allRecords)

	// Only the two IF records compete for the county rank; the heavier CL
	// catch does not count.
	require.NotNil(t, stats.Positions.County)
	assert.Equal(t, 2, *stats.Positions.County)
	require.NotNil(t, stats.Positions.National)
	assert.Equal(t, 3, *stats.Positions.National)
}

func TestUserProfileStats_NoCountyOnUser(t *testing.T) {
	ion := models.User{ID: uuid.New()}
	ionRecords := []models.FishingRecord{
		record(ion.ID, "Crap", "9.8", "IF", 0),
	}

	stats := UserProfileStats(&ion, ionRecords, ionRecords)

	require.NotNil(t, stats.Positions.National)
	assert.Nil(t, stats.Positions.County)
}

func TestUserProfileStats_RecentRecordsCappedAtFive(t *testing.T) {
	user := models.User{ID: uuid.New()}
	var userRecords []models.FishingRecord
	for i := 0; i < 8; i++ {
		userRecords = append(userRecords, record(user.ID, "Crap", "5.0", "IF", time.Duration(i)*time.Minute))
	}

	stats := UserProfileStats(&user, userRecords, userRecords)

	require.Len(t, stats.RecentRecords, 5)
	// The newest-first input order is preserved.
	assert.Equal(t, userRecords[0].ID, stats.RecentRecords[0].ID)
}
