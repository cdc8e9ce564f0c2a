package handlers

import (
	"context"

	"github.com/velja/jobboard-api/internal/models"
	"github.com/velja/jobboard-api/internal/services"
)

// ListingServiceInterface defines the methods used by handlers from ListingService
type ListingServiceInterface interface {
	List(ctx context.Context) (models.Collection, error)
	Submit(ctx context.Context, in services.ListingInput) (*models.JobListing, services.Mode, error)
	BeginEdit(ctx context.Context, id string) (*models.JobListing, error)
	CancelEdit()
	Delete(ctx context.Context, id string) error
	Editor() services.EditorState
}

// SessionServiceInterface defines the methods used by handlers from SessionService
type SessionServiceInterface interface {
	Open(password string) (*services.SessionToken, error)
	Close(ctx context.Context, token string) error
}

// BannerInterface defines the methods used by handlers from the banner Hub
type BannerInterface interface {
	Success(text string)
	Error(text string)
}
