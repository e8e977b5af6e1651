package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cosmintrica/fishing-records/internal/models/api_error"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_auth"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_handler"
)

// Auth validates the bearer access token and attaches the authenticated
// user id to the request context.
func Auth(issuer *utils_auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Error(
				api_error.NewFromStr("authorization header missing", http.StatusUnauthorized))
			c.Abort()
			return
		}

		accessToken := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ParseToken(accessToken)
		if err != nil {
			c.Header("X-RefreshToken", "true")
			c.Error(api_error.NewFromStr("please relogin", http.StatusUnauthorized))
			c.Abort()
			return
		}

		c.Set("UserID", claims.UserID)
		c.Next()
	}
}

// RequireAdmin gates the verification endpoints. The decision is made
// server-side against the authenticated identity, never from anything the
// client supplies.
func RequireAdmin(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, userID := utils_handler.GetReqCx(c)

		user, err := s.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.Error(api_error.NewFromStr("please relogin", http.StatusUnauthorized))
			c.Abort()
			return
		}

		if !strings.EqualFold(user.Email, adminEmail) {
			c.Error(api_error.Forbidden("administrator access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
