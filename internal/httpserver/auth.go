package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sheshape-storefront/internal/domain"
	"sheshape-storefront/internal/upstream"
)

const identityKey = "identity"

// identity is the authenticated caller decoded from the bearer token issued
// by the backend. The token itself is forwarded upstream untouched.
type identity struct {
	UserID int64
	Email  string
	Role   domain.Role
}

type authClaims struct {
	UserID int64       `json:"userId"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// authRequired verifies the bearer token and stashes the caller identity.
// The raw token is attached to the request context so upstream calls carry
// the caller's credentials.
func authRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}

		claims := &authClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		id := identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
		if id.UserID == 0 {
			// Older tokens carry the user id in the subject.
			if sub, err := strconv.ParseInt(claims.Subject, 10, 64); err == nil {
				id.UserID = sub
			}
		}
		if id.UserID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(identityKey, id)
		c.Request = c.Request.WithContext(upstream.WithToken(c.Request.Context(), raw))
		c.Next()
	}
}

// adminRequired gates the management pass-through routes. The backend checks
// authorization again; this only avoids pointless round trips.
func adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := callerIdentity(c)
		if !ok || id.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}
		c.Next()
	}
}

func callerIdentity(c *gin.Context) (identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return identity{}, false
	}
	id, ok := v.(identity)
	return id, ok
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
