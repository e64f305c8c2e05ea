package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manuhps/SIC-Grupo8/internal/auth"
	"github.com/Manuhps/SIC-Grupo8/internal/helpers"
)

const identityKey = "identity"

// JWTAuth verifies the bearer token and stores the resulting identity in
// the request context. Any verification failure is a plain 401.
func JWTAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.FromHeader(c.GetHeader("Authorization"))
		if err != nil {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRoles rejects requests whose identity does not hold one of the
// given roles. Must run after JWTAuth.
func RequireRoles(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		helpers.AbortWithError(c, http.StatusForbidden, "Access denied for this role.")
	}
}

func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
