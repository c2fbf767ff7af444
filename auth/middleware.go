package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/models"
)

// AuthClaimsKey is the key used to store JWT claims in gin context
const AuthClaimsKey = "auth_claims"

// bearerToken returns the token from an "Authorization: Bearer <token>" header
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// AuthMiddleware creates a middleware for JWT authentication
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Authorization header required",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Invalid or expired token",
				Code:    http.StatusUnauthorized,
				Details: err.Error(),
			})
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware adds claims to the context when a valid token is
// present and lets the request through either way
func OptionalAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(AuthClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	typed, _ := claims.(*Claims)
	return typed
}
