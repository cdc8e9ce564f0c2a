package dto

type OpenSessionRequest struct {
	Password string `json:"password"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type SessionStatusResponse struct {
	Active    bool   `json:"active"`
	SessionID string `json:"session_id"`
}
