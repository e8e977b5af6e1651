package api_dev

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmintrica/fishing-records/internal/models/api_error"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_handler"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API OK",
	})
}

// Stats serves the global counters shown on the dashboard.
func Stats(c *gin.Context) {
	s := utils_handler.GetStore(c)

	counts, err := s.Counts(c.Request.Context())
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_locations": counts.Locations,
		"total_records":   counts.Records,
		"active_users":    counts.Users,
	})
}
