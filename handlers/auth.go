package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seosites/seosites/backend/go-api/internal/admins"
	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/pkg/middleware"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	admins *admins.Service
}

func NewAuthHandler(a *admins.Service) *AuthHandler {
	return &AuthHandler{admins: a}
}

// Register mounts the auth routes under /auth. authed admits any valid token,
// adminOnly only the admin role.
func (h *AuthHandler) Register(rg *gin.RouterGroup, authed, adminOnly gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.GET("/verify", authed, h.Verify)
	a.POST("/logout", authed, h.Logout)
	a.POST("/register", adminOnly, h.RegisterAdmin)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, err)
		return
	}
	tok, a, err := h.admins.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": tok, "admin": a.View()})
}

// Verify returns the admin behind the token. A deleted account yields 404.
func (h *AuthHandler) Verify(c *gin.Context) {
	p, found := middleware.PrincipalFrom(c)
	if !found {
		fail(c, apperr.Unauthorized("Not authorized to access this route"))
		return
	}
	a, err := h.admins.Get(c.Request.Context(), p.Subject)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, a.View())
}

// Logout is acknowledged only; clients drop the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	okMessage(c, "Logged out successfully")
}

func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, err)
		return
	}
	a, err := h.admins.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, a.View())
}
