package handlers

import (
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/velja/jobboard-api/internal/banner"
)

type BannerHandler struct {
	hub *banner.Hub
}

func NewBannerHandler(hub *banner.Hub) *BannerHandler {
	return &BannerHandler{hub: hub}
}

// Connect streams banner messages to the admin panel over SSE.
func (h *BannerHandler) Connect(c *drift.Context) {
	sseCtx := c.SSE()

	clientID := uuid.New().String()
	client := &banner.Client{
		ID:   clientID,
		Send: make(chan []byte, 64),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "system", ""); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		<-c.Request.Context().Done()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "banner", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
