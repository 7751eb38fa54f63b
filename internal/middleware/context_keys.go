package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mdfaizanashrafi/sovereon/internal/utils"
)

// Keys used to store the authenticated identity in the request context.
const (
	userIDKey = contextKey("userID")
	claimsKey = contextKey("authClaims")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetClaimsFromContext retrieves the full decoded token claims from the
// request context.
func GetClaimsFromContext(c *gin.Context) (*utils.AuthClaims, bool) {
	claims, ok := c.Request.Context().Value(claimsKey).(*utils.AuthClaims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
