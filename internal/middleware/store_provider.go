package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cosmintrica/fishing-records/internal/store"
)

// StoreProvider injects the record store handle into every request context
// so handlers can pull it with c.MustGet("store").
func StoreProvider(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", s)
		c.Next()
	}
}
