package utils_handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmintrica/fishing-records/internal/store"
)

// GetReqCx returns the store handle and the authenticated user id set by
// the middleware chain.
func GetReqCx(c *gin.Context) (store.Store, uuid.UUID) {
	return c.MustGet("store").(store.Store), c.MustGet("UserID").(uuid.UUID)
}

// GetStore returns just the store handle, for unauthenticated handlers.
func GetStore(c *gin.Context) store.Store {
	return c.MustGet("store").(store.Store)
}

func GetObj[T any](c *gin.Context) (T, error) {
	var obj T
	err := c.ShouldBindJSON(&obj)
	return obj, err
}
