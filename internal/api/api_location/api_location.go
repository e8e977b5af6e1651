package api_location

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmintrica/fishing-records/internal/models/api_error"
	"github.com/cosmintrica/fishing-records/internal/seed"
	"github.com/cosmintrica/fishing-records/internal/store"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_handler"
)

// List returns all seeded fishing locations for the map browser.
func List(c *gin.Context) {
	s := utils_handler.GetStore(c)

	locations, err := s.GetFishingLocations(c.Request.Context())
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Get returns one location by id.
func Get(c *gin.Context) {
	s := utils_handler.GetStore(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(api_error.ValidationStr("invalid location id"))
		return
	}

	location, err := s.GetFishingLocation(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.NotFound("location"))
		return
	}
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusOK, location)
}

// Species serves the fish species reference list.
func Species(registry *seed.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, registry.Species())
	}
}
