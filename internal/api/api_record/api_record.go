package api_record

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cosmintrica/fishing-records/internal/models"
	"github.com/cosmintrica/fishing-records/internal/models/api_error"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_handler"
)

// List returns all submitted records, newest first.
func List(c *gin.Context) {
	s := utils_handler.GetStore(c)

	records, err := s.GetFishingRecords(c.Request.Context())
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusOK, records)
}

// ListByUser returns one user's records, newest first.
func ListByUser(c *gin.Context) {
	s := utils_handler.GetStore(c)

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(api_error.ValidationStr("invalid user id"))
		return
	}

	records, err := s.GetFishingRecordsByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusOK, records)
}

// Create submits a new catch. The submitter comes from the authenticated
// identity, never from the request body. New records start unverified.
func Create(c *gin.Context) {
	s, userID := utils_handler.GetReqCx(c)

	req, err := utils_handler.GetObj[models.RecordRequest](c)
	if err != nil {
		c.Error(api_error.Validation(err))
		return
	}

	weight, err := strconv.ParseFloat(req.Weight, 64)
	if err != nil || weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		c.Error(api_error.ValidationStr("weight must be a non-negative decimal, got %q", req.Weight))
		return
	}
	if !models.ValidCounty(req.County) {
		c.Error(api_error.ValidationStr("unknown county code %q", req.County))
		return
	}
	waterType := models.WaterType(req.WaterType)
	if !waterType.Valid() {
		c.Error(api_error.ValidationStr("unknown water type %q", req.WaterType))
		return
	}
	dateCaught, err := time.Parse(time.DateOnly, req.DateCaught)
	if err != nil {
		c.Error(api_error.ValidationStr("date_caught must be YYYY-MM-DD, got %q", req.DateCaught))
		return
	}

	record := models.FishingRecord{
		UserID:      userID,
		Species:     req.Species,
		Weight:      req.Weight,
		Length:      req.Length,
		Location:    req.Location,
		County:      req.County,
		WaterType:   waterType,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		DateCaught:  dateCaught,
		Description: req.Description,
		Photos:      pq.StringArray(req.Photos),
	}

	if err := s.CreateFishingRecord(c.Request.Context(), &record); err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, record)
}
