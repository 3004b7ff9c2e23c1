package middlewares

import (
	"net/http"
	"strings"

	"alumni-connect-api/internal/apperr"
	"alumni-connect-api/internal/token"

	"github.com/gin-gonic/gin"
)

// RequireBearer rejects requests without a valid "Authorization: Bearer" token
// and exposes the token's claims as "userID" (int) and "email".
func RequireBearer(verifier token.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			return
		}

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(raw))
		if err != nil {
			apperr.Logger(c).WithError(err).Debug("bearer token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
