package api_auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmintrica/fishing-records/internal/models"
	"github.com/cosmintrica/fishing-records/internal/models/api_error"
	"github.com/cosmintrica/fishing-records/internal/store"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_auth"
	"github.com/cosmintrica/fishing-records/internal/utils/utils_handler"
)

// Register creates a new account. Uniqueness of email and username is
// enforced atomically inside the store, so two concurrent registrations
// with the same email cannot both succeed.
func Register(issuer *utils_auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := utils_handler.GetStore(c)

		req, err := utils_handler.GetObj[models.RegisterRequest](c)
		if err != nil {
			c.Error(api_error.Validation(err))
			return
		}
		if req.County != nil && !models.ValidCounty(*req.County) {
			c.Error(api_error.ValidationStr("unknown county code %q", *req.County))
			return
		}

		passwordHash, err := utils_auth.GenerateArgon2Hash(req.Password)
		if err != nil {
			c.Error(api_error.Internal(err))
			return
		}

		newUser := models.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: passwordHash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			County:       req.County,
		}

		err = s.CreateUser(c.Request.Context(), &newUser)
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			c.Error(api_error.Duplicate("email"))
			return
		case errors.Is(err, store.ErrDuplicateUsername):
			c.Error(api_error.Duplicate("username"))
			return
		case err != nil:
			c.Error(api_error.Internal(err))
			return
		}

		log.Println("New user registered with uuid:", newUser.ID)

		respondWithTokens(c, issuer, &newUser)
	}
}

// Login verifies the credential against the stored argon2 hash and issues
// a fresh token pair.
func Login(issuer *utils_auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := utils_handler.GetStore(c)

		req, err := utils_handler.GetObj[models.LoginRequest](c)
		if err != nil {
			c.Error(api_error.Validation(err))
			return
		}

		storedUser, err := s.GetUserByEmail(c.Request.Context(), req.Email)
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.Unauthorized("invalid email or password"))
			return
		}
		if err != nil {
			c.Error(api_error.Internal(err))
			return
		}

		if !utils_auth.VerifyArgon2Hash(req.Password, storedUser.PasswordHash) {
			c.Error(api_error.Unauthorized("invalid email or password"))
			return
		}

		respondWithTokens(c, issuer, &storedUser)
	}
}

// Refresh exchanges a valid refresh token for a new access token.
func Refresh(issuer *utils_auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken := c.GetHeader("Refresh-Token")
		if refreshToken == "" {
			c.Error(api_error.Unauthorized("refresh token missing"))
			return
		}

		claims, err := issuer.ParseToken(refreshToken)
		if err != nil {
			c.Header("X-RefreshToken", "failed")
			c.Error(api_error.Unauthorized("refresh token invalid"))
			return
		}

		newAccessToken, err := issuer.GenerateAccessToken(claims.UserID)
		if err != nil {
			c.Header("X-RefreshToken", "failed")
			c.Error(api_error.Internal(err))
			return
		}

		c.Header("X-RefreshToken", "success")
		c.JSON(http.StatusCreated, gin.H{
			"access_token": newAccessToken,
		})
	}
}

func respondWithTokens(c *gin.Context, issuer *utils_auth.TokenIssuer, user *models.User) {
	accessToken, err := issuer.GenerateAccessToken(user.ID)
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	refreshToken, err := issuer.GenerateRefreshToken(user.ID)
	if err != nil {
		c.Error(api_error.Internal(err))
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		User:         user.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
