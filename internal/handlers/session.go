package handlers

import (
	"errors"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/velja/jobboard-api/internal/middleware"
	"github.com/velja/jobboard-api/internal/services"
	"github.com/velja/jobboard-api/pkg/dto"
)

type SessionHandler struct {
	sessionService SessionServiceInterface
}

func NewSessionHandler(sessionService SessionServiceInterface) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) Open(c *drift.Context) {
	var req dto.OpenSessionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Password == "" {
		c.BadRequest("password is required")
		return
	}

	session, err := h.sessionService.Open(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.Unauthorized("invalid credentials")
			return
		}
		c.InternalServerError("failed to open session")
		return
	}

	_ = c.JSON(200, dto.SessionResponse{
		Token:     session.Token,
		ExpiresIn: session.ExpiresIn,
	})
}

func (h *SessionHandler) Close(c *drift.Context) {
	token := middleware.GetSessionToken(c)
	if token == "" {
		c.Unauthorized("not authenticated")
		return
	}

	if err := h.sessionService.Close(c.Request.Context(), token); err != nil {
		c.InternalServerError("failed to close session")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "session closed"})
}

// Status reports whether the admin session is active. Reaching this handler
// at all means the auth middleware accepted the token.
func (h *SessionHandler) Status(c *drift.Context) {
	_ = c.JSON(200, dto.SessionStatusResponse{
		Active:    true,
		SessionID: middleware.GetSessionID(c),
	})
}
