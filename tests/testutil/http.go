package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/velja/jobboard-api/internal/services"
	"github.com/velja/jobboard-api/internal/storage"
)

const (
	TestAdminPassword = "test-admin-password"
	testSecret        = "test-secret-key-for-testing-only"
)

// TestSessionService creates a SessionService backed by an in-memory store
func TestSessionService() *services.SessionService {
	return services.NewSessionService(
		testSecret,
		TestAdminPassword,
		15*time.Minute,
		storage.NewMemoryStore(),
	)
}

// OpenTestSession opens a session on the given service and returns its token
func OpenTestSession(t *testing.T, svc *services.SessionService) string {
	t.Helper()
	session, err := svc.Open(TestAdminPassword)
	if err != nil {
		t.Fatalf("failed to open test session: %v", err)
	}
	return session.Token
}

// AuthHeader returns an Authorization header value with a Bearer token
func AuthHeader(token string) string {
	return "Bearer " + token
}

// HTTPTestClient provides helper methods for HTTP testing
type HTTPTestClient struct {
	t       *testing.T
	handler http.Handler
}

// NewHTTPTestClient creates a new HTTP test client
func NewHTTPTestClient(t *testing.T, handler http.Handler) *HTTPTestClient {
	return &HTTPTestClient{t: t, handler: handler}
}

// Request makes an HTTP request and returns the response
func (c *HTTPTestClient) Request(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	c.t.Helper()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the response body into out
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
