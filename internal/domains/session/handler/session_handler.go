package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"gallery-backend/internal/shared/response"
	"gallery-backend/pkg/jwt"
)

// SessionHandler issues admin session tokens. The credential is a bcrypt hash
// supplied via configuration; there is no stored fallback password, and login
// is simply unavailable until the hash is configured.
type SessionHandler struct {
	manager      *jwt.Manager
	passwordHash string
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(manager *jwt.Manager, passwordHash string) *SessionHandler {
	return &SessionHandler{
		manager:      manager,
		passwordHash: passwordHash,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /auth/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	if h.passwordHash == "" {
		response.Fail(c, http.StatusServiceUnavailable, "admin login is not configured")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		response.Fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.manager.GenerateSessionToken("admin")
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"token": token})
}
