package api_leaderboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmintrica/fishing-records/internal/models"
	"github.com/cosmintrica/fishing-records/internal/models/api_error"
	"github.com/cosmintrica/fishing-records/internal/ranking"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_handler"
)

var validScopes = map[string]bool{
	"national": true,
	"regional": true,
	"local":    true,
	"global":   true,
}

// Get serves the ranked top-10 view. The scope path parameter is accepted
// and echoed back; geographic narrowing comes entirely from the query
// filters.
func Get(c *gin.Context) {
	s := utils_handler.GetStore(c)

	scope := c.Param("type")
	if !validScopes[scope] {
		c.Error(api_error.ValidationStr("unknown leaderboard scope %q", scope))
		return
	}

	filters := ranking.Filters{
		Species:   c.Query("species"),
		County:    c.Query("county"),
		WaterType: c.Query("waterType"),
	}

	records, err := s.GetFishingRecords(c.Request.Context())
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	lookup := func(id uuid.UUID) *models.PublicUser {
		user, err := s.GetUser(c.Request.Context(), id)
		if err != nil {
			return nil
		}
		pub := user.Public()
		return &pub
	}

	c.JSON(http.StatusOK, ranking.Leaderboard(records, lookup, filters))
}
