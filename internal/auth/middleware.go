package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ctxClaimsKey is where the middleware stashes verified claims for the
// rest of the request chain.
const ctxClaimsKey = "artisanhub.claims"

// AuthMiddleware verifies the bearer token and rejects tokens minted
// before the user's last logout-everywhere: a token whose version lags
// the stored token_version is treated as revoked.
func AuthMiddleware(tokens TokenService, repo *Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			abortUnauthorized(c, "sign in to use this endpoint")
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			abortUnauthorized(c, "session token is invalid or expired")
			return
		}

		if repo != nil {
			current, err := repo.GetTokenVersion(c.Request.Context(), claims.UserID)
			if err != nil || current != claims.TokenVersion {
				abortUnauthorized(c, "session was revoked, sign in again")
				return
			}
		}

		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// MustGetClaims returns the verified claims set by AuthMiddleware, or nil
// when the route was not behind it.
func MustGetClaims(c *gin.Context) *Claims {
	v, ok := c.Get(ctxClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
