package handlers

import (
	"net/http"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"

	"github.com/velja/jobboard-api/internal/middleware"
	"github.com/velja/jobboard-api/internal/services"
	"github.com/velja/jobboard-api/tests/testutil"
)

// newAdminApp wires a drift app the way main.go does for the admin routes.
func newAdminApp(sessionService *services.SessionService, listingHandler *ListingHandler, sessionHandler *SessionHandler) http.Handler {
	app := drift.New()
	app.Use(driftmw.BodyParser())

	api := app.Group("/api/v1")
	if sessionHandler != nil {
		api.Post("/session", sessionHandler.Open)
	}
	if listingHandler != nil {
		api.Get("/listings", listingHandler.List)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.Auth(sessionService))

	if sessionHandler != nil {
		admin.Get("/session", sessionHandler.Status)
		admin.Delete("/session", sessionHandler.Close)
	}
	if listingHandler != nil {
		admin.Get("/listings", listingHandler.List)
		admin.Post("/listings", listingHandler.Submit)
		admin.Post("/listings/:id/edit", listingHandler.BeginEdit)
		admin.Delete("/listings/:id", listingHandler.Delete)
		admin.Get("/editor", listingHandler.EditorState)
		admin.Delete("/editor", listingHandler.CancelEdit)
	}

	return app
}

func authedHeaders(t *testing.T, sessionService *services.SessionService) map[string]string {
	t.Helper()
	token := testutil.OpenTestSession(t, sessionService)
	return map[string]string{"Authorization": testutil.AuthHeader(token)}
}
