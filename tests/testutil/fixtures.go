package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/velja/jobboard-api/internal/models"
	"github.com/velja/jobboard-api/internal/storage"
)

// Fixtures provides factory methods for seeding test listings
type Fixtures struct {
	store   storage.ListingStore
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(store storage.ListingStore) *Fixtures {
	return &Fixtures{store: store}
}

// ListingOption customizes a fixture listing
type ListingOption func(*models.JobListing)

func WithTitle(title string) ListingOption {
	return func(l *models.JobListing) { l.Title = title }
}

func WithCompany(company string) ListingOption {
	return func(l *models.JobListing) { l.Company = company }
}

func WithLocation(location string) ListingOption {
	return func(l *models.JobListing) { l.Location = location }
}

func WithPostedDate(date string) ListingOption {
	return func(l *models.JobListing) { l.PostedDate = date }
}

// CreateListing appends a listing with default values to the stored collection
func (f *Fixtures) CreateListing(t *testing.T, opts ...ListingOption) models.JobListing {
	t.Helper()
	f.counter++

	listing := models.JobListing{
		ID:          uuid.New().String(),
		Title:       fmt.Sprintf("Test Role %d", f.counter),
		Company:     fmt.Sprintf("Company %d", f.counter),
		Location:    "Remote",
		Description: fmt.Sprintf("Description for role %d", f.counter),
		PostedDate:  "2025-01-01",
	}

	for _, opt := range opts {
		opt(&listing)
	}

	ctx := context.Background()
	collection, err := f.store.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load collection: %v", err)
	}
	collection = append(collection, listing)
	if err := f.store.Save(ctx, collection); err != nil {
		t.Fatalf("failed to save collection: %v", err)
	}

	return listing
}
