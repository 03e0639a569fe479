package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"crewquick/internal/models"
	"crewquick/internal/policy"
)

// ErrInvalidToken covers every validation failure: bad signature, malformed
// payload, unexpected algorithm, expiry.
var ErrInvalidToken = errors.New("invalid token")

var secret []byte

// Setup installs the signing secret from configuration; config.Load supplies
// the default, so this is the only place the secret comes from. Rotating it
// invalidates every previously issued token.
func Setup(key string) {
	secret = []byte(key)
}

// GenerateToken issues a signed token binding the subject id and role claim.
// The subject is always serialized as a string to avoid numeric-claim
// ambiguity across consumers.
func GenerateToken(userID uint, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"role": string(role),
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken verifies the signature and expiry and returns the subject id
// and role. Claims are never trusted before the signature checks out.
func ValidateToken(tokenStr string) (uint, models.Role, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	rawRole, _ := claims["role"].(string)
	role, err := models.ParseRole(rawRole)
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	return uint(userID), role, nil
}

// RequireAuth ensures a valid bearer token is present and stores the caller's
// identity in the request context for downstream handlers. It never advances
// the chain itself, so Authorize can run it inline and still gate the handler.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		userID, role, err := ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", userID)
		c.Set("role", role)
	}
}

// Authorize ensures the token is valid and the caller's role is permitted to
// perform the action. Denial is terminal with a 403.
func Authorize(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		// First ensure basic auth
		req := RequireAuth()
		req(c)
		if c.IsAborted() {
			return
		}

		role := c.MustGet("role").(models.Role)
		if !policy.Allowed(role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": policy.DenialMessage(action)})
			return
		}

		c.Next()
	}
}
