package utils_auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

const (
	ARGON2_TIME       = uint32(1)
	ARGON2_MEMORY     = uint32(64 * 1024)
	ARGON2_THREADS    = uint8(2)
	ARGON2_KEYLENGTH  = uint32(32)
	ARGON2_SALTLENGTH = uint32(16)
)

// formatHash takes a salt and the Argon2 hash of a password in bytes and
// returns the standard string form carrying the cost parameters plus the
// base64-encoded salt and hash.
func formatHash(salt []byte, hashedPassword []byte) string {
	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHashedPassword := base64.RawStdEncoding.EncodeToString(hashedPassword)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		uint32(argon2.Version),
		ARGON2_MEMORY,
		ARGON2_TIME,
		ARGON2_THREADS,
		encodedSalt,
		encodedHashedPassword,
	)
}

// parsePasswordHashStdForm decodes the standard string form back into the
// memory, time and parallelism parameters plus the encoded salt and hash.
func parsePasswordHashStdForm(passwordHash string) (
	uint32, uint32, uint8, string, string, error) {
	pattern := fmt.Sprintf(
		"^\\$argon2id\\$v=%d\\$m=(\\d+),t=(\\d+),p=(\\d+)\\$([A-Za-z0-9+/=]+)\\$([A-Za-z0-9+/=]+)$",
		uint32(argon2.Version))
	regex := regexp.MustCompile(pattern)
	matches := regex.FindStringSubmatch(passwordHash)

	if matches == nil {
		return 0, 0, 0, "", "", errors.New("invalid argon2 hash format")
	}

	arg2Mem, _ := strconv.ParseUint(matches[1], 10, 32)
	arg2Time, _ := strconv.ParseUint(matches[2], 10, 32)
	arg2Threads, _ := strconv.ParseUint(matches[3], 10, 32)

	return uint32(arg2Mem), uint32(arg2Time), uint8(arg2Threads), matches[4], matches[5], nil
}

func generateArgon2Salt() ([]byte, error) {
	salt := make([]byte, ARGON2_SALTLENGTH)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}

	return salt, nil
}

// GenerateArgon2Hash hashes a credential with a fresh random salt and
// returns the result in the standard string form.
func GenerateArgon2Hash(payload string) (string, error) {
	salt, err := generateArgon2Salt()
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(payload), salt, ARGON2_TIME, ARGON2_MEMORY, ARGON2_THREADS, ARGON2_KEYLENGTH)
	return formatHash(salt, hash), nil
}

// VerifyArgon2Hash checks a credential against a stored hash in standard
// form. The comparison is constant-time.
func VerifyArgon2Hash(payload string, storedHash string) bool {
	arg2Mem, arg2Time, arg2Threads, encodedSalt, encodedHash, err := parsePasswordHashStdForm(storedHash)
	if err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(encodedSalt)
	if err != nil {
		return false
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(encodedHash)
	if err != nil {
		return false
	}

	computedHash := argon2.IDKey([]byte(payload), salt, arg2Time, arg2Mem, arg2Threads, ARGON2_KEYLENGTH)
	return subtle.ConstantTimeCompare(computedHash, expectedHash) == 1
}

type Claims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses the HS256 access and refresh tokens. The
// secret and lifetimes come from configuration.
type TokenIssuer struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (t *TokenIssuer) generate(userID uuid.UUID, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			NotBefore: jwt.NewNumericDate(time.Now().UTC()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.Secret)
}

func (t *TokenIssuer) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return t.generate(userID, t.AccessTTL)
}

func (t *TokenIssuer) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return t.generate(userID, t.RefreshTTL)
}

// ParseToken validates a signed token and returns its claims.
func (t *TokenIssuer) ParseToken(tokenStr string) (*Claims, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.Secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsedToken.Claims.(*Claims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
