package api_profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmintrica/fishing-records/internal/models"
	"github.com/cosmintrica/fishing-records/internal/models/api_error"
	"github.com/cosmintrica/fishing-records/internal/ranking"
	"github.com/cosmintrica/fishing-records/internal/store"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_handler"
)

type profileResponse struct {
	User          models.User            `json:"user"`
	Stats         profileStats           `json:"stats"`
	RecentRecords []models.FishingRecord `json:"recent_records"`
}

type profileStats struct {
	TotalRecords  int                    `json:"total_records"`
	PersonalBests []models.FishingRecord `json:"personal_bests"`
	Positions     ranking.Positions      `json:"positions"`
}

// View serves the public profile of any user: identity, aggregate stats
// and the five most recent records.
func View(c *gin.Context) {
	s := utils_handler.GetStore(c)

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(api_error.ValidationStr("invalid user id"))
		return
	}

	user, err := s.GetUser(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.NotFound("user"))
		return
	}
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	userRecords, err := s.GetFishingRecordsByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}
	allRecords, err := s.GetFishingRecords(c.Request.Context())
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	stats := ranking.UserProfileStats(&user, userRecords, allRecords)

	c.JSON(http.StatusOK, profileResponse{
		User: user,
		Stats: profileStats{
			TotalRecords:  stats.TotalRecords,
			PersonalBests: stats.PersonalBests,
			Positions:     stats.Positions,
		},
		RecentRecords: stats.RecentRecords,
	})
}

// Me returns the authenticated user's own profile.
func Me(c *gin.Context) {
	s, userID := utils_handler.GetReqCx(c)

	user, err := s.GetUser(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.NotFound("user"))
		return
	}
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe updates the authenticated user's name and county.
func UpdateMe(c *gin.Context) {
	s, userID := utils_handler.GetReqCx(c)

	req, err := utils_handler.GetObj[models.ProfileUpdateRequest](c)
	if err != nil {
		c.Error(api_error.Validation(err))
		return
	}
	if req.County != nil && !models.ValidCounty(*req.County) {
		c.Error(api_error.ValidationStr("unknown county code %q", *req.County))
		return
	}

	user, err := s.UpdateUserProfile(c.Request.Context(), userID, req)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.NotFound("user"))
		return
	}
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusOK, user)
}
