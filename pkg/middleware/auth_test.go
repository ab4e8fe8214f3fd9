package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeVerifier maps raw tokens to roles
type fakeVerifier struct{}

func (f *fakeVerifier) Verify(ctx context.Context, raw string) (Principal, error) {
	switch raw {
	case "admintoken":
		return Principal{Subject: "admin1", Role: "admin"}, nil
	case "editortoken":
		return Principal{Subject: "editor1", Role: "editor"}, nil
	}
	return Principal{}, fmt.Errorf("invalid token")
}

func serve(t *testing.T, h gin.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	g := gin.New()
	g.GET("/", h, func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"sub": p.Subject, "role": p.Role})
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)
	return rw
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	rw := serve(t, AuthMiddleware(&fakeVerifier{}), "")
	require.Equal(t, http.StatusUnauthorized, rw.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &got))
	require.Equal(t, false, got["success"])
}

func TestAuthMiddleware_InvalidHeader(t *testing.T) {
	require.Equal(t, http.StatusUnauthorized, serve(t, AuthMiddleware(&fakeVerifier{}), "BadHeader").Code)
	require.Equal(t, http.StatusUnauthorized, serve(t, AuthMiddleware(&fakeVerifier{}), "Bearer ").Code)
	require.Equal(t, http.StatusUnauthorized, serve(t, AuthMiddleware(&fakeVerifier{}), "Bearer forged").Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	rw := serve(t, AuthMiddleware(&fakeVerifier{}), "Bearer editortoken")
	require.Equal(t, http.StatusOK, rw.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &got))
	require.Equal(t, "editor1", got["sub"])
}

func TestRequire_RoleChecks(t *testing.T) {
	adminOnly := Require(&fakeVerifier{}, "admin")
	require.Equal(t, http.StatusForbidden, serve(t, adminOnly, "Bearer editortoken").Code)
	require.Equal(t, http.StatusOK, serve(t, adminOnly, "Bearer admintoken").Code)
	require.Equal(t, http.StatusUnauthorized, serve(t, adminOnly, "").Code)

	writers := Require(&fakeVerifier{}, "admin", "editor")
	require.Equal(t, http.StatusOK, serve(t, writers, "Bearer editortoken").Code)
}

func TestAllowed(t *testing.T) {
	require.True(t, Allowed(Principal{Subject: "a", Role: "editor"}))
	require.True(t, Allowed(Principal{Subject: "a", Role: "editor"}, "admin", "editor"))
	require.False(t, Allowed(Principal{Subject: "a", Role: "editor"}, "admin"))
	require.False(t, Allowed(Principal{Role: "admin"}, "admin"))
}
