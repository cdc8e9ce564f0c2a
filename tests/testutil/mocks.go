package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/velja/jobboard-api/internal/models"
	"github.com/velja/jobboard-api/internal/services"
)

// MockListingService mocks the ListingService
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) List(ctx context.Context) (models.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Collection), args.Error(1)
}

func (m *MockListingService) Submit(ctx context.Context, in services.ListingInput) (*models.JobListing, services.Mode, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Get(1).(services.Mode), args.Error(2)
	}
	return args.Get(0).(*models.JobListing), args.Get(1).(services.Mode), args.Error(2)
}

func (m *MockListingService) BeginEdit(ctx context.Context, id string) (*models.JobListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobListing), args.Error(1)
}

func (m *MockListingService) CancelEdit() {
	m.Called()
}

func (m *MockListingService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingService) Editor() services.EditorState {
	args := m.Called()
	return args.Get(0).(services.EditorState)
}

// MockSessionService mocks the SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Open(password string) (*services.SessionToken, error) {
	args := m.Called(password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SessionToken), args.Error(1)
}

func (m *MockSessionService) Close(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockBanner mocks the banner Hub
type MockBanner struct {
	mock.Mock
}

func (m *MockBanner) Success(text string) {
	m.Called(text)
}

func (m *MockBanner) Error(text string) {
	m.Called(text)
}

// NopBanner swallows banner messages for tests that don't assert on them.
type NopBanner struct{}

func (NopBanner) Success(string) {}

func (NopBanner) Error(string) {}
