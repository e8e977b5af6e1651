package api_admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmintrica/fishing-records/internal/models"
	"github.com/cosmintrica/fishing-records/internal/models/api_error"
	"github.com/cosmintrica/fishing-records/internal/store"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_handler"
)

// VerifyRecord decides a pending record. Approval flips the verified flag;
// rejection is reported to the caller but leaves the record untouched in
// storage.
func VerifyRecord(c *gin.Context) {
	s := utils_handler.GetStore(c)

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(api_error.ValidationStr("invalid record id"))
		return
	}

	req, err := utils_handler.GetObj[models.VerifyRequest](c)
	if err != nil {
		c.Error(api_error.Validation(err))
		return
	}

	record, err := s.GetFishingRecord(c.Request.Context(), recordID)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.NotFound("record"))
		return
	}
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	approved := *req.Approved
	if approved {
		if err := s.SetRecordVerified(c.Request.Context(), recordID, true); err != nil {
			c.Error(api_error.Internal(err))
			return
		}
		record.Verified = true
		log.Printf("record %s approved", recordID)
	} else {
		log.Printf("record %s rejected", recordID)
	}

	c.JSON(http.StatusOK, gin.H{
		"approved": approved,
		"record":   record,
	})
}

// PendingRecords lists all unverified records joined with submitter
// identity for the moderation queue.
func PendingRecords(c *gin.Context) {
	s := utils_handler.GetStore(c)

	records, err := s.GetFishingRecords(c.Request.Context())
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	pending := make([]models.PendingRecord, 0)
	for _, r := range records {
		if r.Verified {
			continue
		}

		entry := models.PendingRecord{Record: r}
		if user, err := s.GetUser(c.Request.Context(), r.UserID); err == nil {
			pub := user.Public()
			entry.Submitter = &pub
		}
		pending = append(pending, entry)
	}

	c.JSON(http.StatusOK, pending)
}
