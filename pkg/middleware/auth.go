package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Principal is the authenticated caller extracted from a verified token.
type Principal struct {
	Subject string
	Role    string
}

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, raw string) (Principal, error)
}

const principalKey = "principal"

// Allowed is the permission check: an empty role set admits any authenticated principal.
func Allowed(p Principal, roles ...string) bool {
	if p.Subject == "" {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// Require verifies the Bearer token and admits only the given roles.
// Missing or invalid tokens get 401; a valid token with another role gets 403.
func Require(ver Verifier, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			abort(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		p, err := ver.Verify(c.Request.Context(), raw)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		if !Allowed(p, roles...) {
			abort(c, http.StatusForbidden, "User role "+p.Role+" is not authorized to access this route")
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// AuthMiddleware admits any authenticated principal.
func AuthMiddleware(ver Verifier) gin.HandlerFunc {
	return Require(ver)
}

// PrincipalFrom returns the principal stored by Require.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func bearer(h string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
}
