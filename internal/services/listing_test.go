package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velja/jobboard-api/internal/models"
	"github.com/velja/jobboard-api/internal/storage"
)

func setupListingService(t *testing.T) (*ListingService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewListingService(store), store
}

func seedListings(t *testing.T, store *storage.MemoryStore, listings ...models.JobListing) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), models.Collection(listings)))
}

func TestListingService_Submit_Create(t *testing.T) {
	svc, _ := setupListingService(t)
	ctx := context.Background()

	listing, mode, err := svc.Submit(ctx, ListingInput{
		Title:    "Engineer",
		Company:  "Acme",
		Location: "Remote",
	})

	require.NoError(t, err)
	assert.Equal(t, ModeCreate, mode)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, time.Now().Format(models.PostedDateLayout), listing.PostedDate)

	collection, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, *listing, collection[0])
}

func TestListingService_Submit_Create_AppendsInOrder(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store,
		models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", PostedDate: "2025-01-01"},
		models.JobListing{ID: "b", Title: "Second", Company: "Globex", Location: "Berlin", PostedDate: "2025-02-01"},
	)

	listing, _, err := svc.Submit(ctx, ListingInput{Title: "Third", Company: "Initech", Location: "Austin"})
	require.NoError(t, err)

	collection, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, collection, 3)
	assert.Equal(t, "a", collection[0].ID)
	assert.Equal(t, "b", collection[1].ID)
	assert.Equal(t, listing.ID, collection[2].ID)
}

func TestListingService_Submit_TrimsFields(t *testing.T) {
	svc, _ := setupListingService(t)

	listing, _, err := svc.Submit(context.Background(), ListingInput{
		Title:       "  Engineer  ",
		Company:     "\tAcme\n",
		Location:    " Remote ",
		Description: "  build things  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Engineer", listing.Title)
	assert.Equal(t, "Acme", listing.Company)
	assert.Equal(t, "Remote", listing.Location)
	assert.Equal(t, "build things", listing.Description)
}

func TestListingService_Submit_MissingFields(t *testing.T) {
	svc, _ := setupListingService(t)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input ListingInput
	}{
		{"blank title", ListingInput{Title: "   ", Company: "Acme", Location: "Remote"}},
		{"blank company", ListingInput{Title: "Engineer", Company: "", Location: "Remote"}},
		{"blank location", ListingInput{Title: "Engineer", Company: "Acme", Location: "\t"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Submit(ctx, tc.input)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}

	collection, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, collection)
}

func TestListingService_Submit_InvalidPostedDate(t *testing.T) {
	svc, _ := setupListingService(t)

	_, _, err := svc.Submit(context.Background(), ListingInput{
		Title: "Engineer", Company: "Acme", Location: "Remote", PostedDate: "01/02/2025",
	})

	assert.ErrorIs(t, err, ErrInvalidPostedDate)
}

func TestListingService_Submit_KeepsProvidedPostedDate(t *testing.T) {
	svc, _ := setupListingService(t)

	listing, _, err := svc.Submit(context.Background(), ListingInput{
		Title: "Engineer", Company: "Acme", Location: "Remote", PostedDate: "2025-06-15",
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", listing.PostedDate)
}

func TestListingService_Submit_UniqueIDsUnderRapidCreates(t *testing.T) {
	svc, _ := setupListingService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		listing, _, err := svc.Submit(ctx, ListingInput{Title: "Engineer", Company: "Acme", Location: "Remote"})
		require.NoError(t, err)
		assert.False(t, seen[listing.ID], "duplicate id %s", listing.ID)
		seen[listing.ID] = true
	}
}

func TestListingService_Submit_EditReplacesInPlace(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store,
		models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", PostedDate: "2025-01-01"},
		models.JobListing{ID: "b", Title: "Second", Company: "Globex", Location: "Berlin", PostedDate: "2025-02-01"},
		models.JobListing{ID: "c", Title: "Third", Company: "Initech", Location: "Austin", PostedDate: "2025-03-01"},
	)

	_, err := svc.BeginEdit(ctx, "b")
	require.NoError(t, err)

	listing, mode, err := svc.Submit(ctx, ListingInput{
		Title: "Second (Senior)", Company: "Globex", Location: "Hamburg", PostedDate: "2025-02-01",
	})

	require.NoError(t, err)
	assert.Equal(t, ModeEdit, mode)
	assert.Equal(t, "b", listing.ID, "id must survive the edit")

	collection, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, collection, 3)
	assert.Equal(t, "a", collection[0].ID)
	assert.Equal(t, "b", collection[1].ID, "edited entry keeps its position")
	assert.Equal(t, "Second (Senior)", collection[1].Title)
	assert.Equal(t, "Hamburg", collection[1].Location)
	assert.Equal(t, "c", collection[2].ID)
}

func TestListingService_Submit_EditResetsToCreateMode(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store, models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", PostedDate: "2025-01-01"})

	_, err := svc.BeginEdit(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, ModeEdit, svc.Editor().Mode)

	_, _, err = svc.Submit(ctx, ListingInput{Title: "First", Company: "Acme", Location: "Remote"})
	require.NoError(t, err)

	state := svc.Editor()
	assert.Equal(t, ModeCreate, state.Mode)
	assert.Empty(t, state.TargetID)
}

func TestListingService_Submit_EditTargetGone(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store, models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", PostedDate: "2025-01-01"})

	_, err := svc.BeginEdit(ctx, "a")
	require.NoError(t, err)

	// The target disappears between beginEdit and submit.
	seedListings(t, store)

	_, mode, err := svc.Submit(ctx, ListingInput{Title: "First", Company: "Acme", Location: "Remote"})

	assert.ErrorIs(t, err, ErrListingNotFound)
	assert.Equal(t, ModeEdit, mode)

	collection, loadErr := svc.List(ctx)
	require.NoError(t, loadErr)
	assert.Empty(t, collection, "failed update must not persist anything")
}

func TestListingService_Submit_SaveFailureLeavesStateUnchanged(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store, models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", PostedDate: "2025-01-01"})

	store.SaveErr = errors.New("quota exceeded")
	_, _, err := svc.Submit(ctx, ListingInput{Title: "Second", Company: "Globex", Location: "Berlin"})
	require.Error(t, err)

	store.SaveErr = nil
	collection, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, "a", collection[0].ID)
}

func TestListingService_BeginEdit(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store, models.JobListing{
		ID: "a", Title: "First", Company: "Acme", Location: "Remote",
		Description: "build things", PostedDate: "2025-01-01",
	})

	listing, err := svc.BeginEdit(ctx, "a")

	require.NoError(t, err)
	assert.Equal(t, "First", listing.Title)
	assert.Equal(t, "build things", listing.Description)

	state := svc.Editor()
	assert.Equal(t, ModeEdit, state.Mode)
	assert.Equal(t, "a", state.TargetID)
	assert.Equal(t, "Update Listing", state.SubmitLabel)
	assert.True(t, state.CanCancel)
}

func TestListingService_BeginEdit_NotFound(t *testing.T) {
	svc, _ := setupListingService(t)

	_, err := svc.BeginEdit(context.Background(), "999")

	assert.ErrorIs(t, err, ErrListingNotFound)
	assert.Equal(t, ModeCreate, svc.Editor().Mode, "failed beginEdit must not enter edit mode")
}

func TestListingService_CancelEdit(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store, models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", PostedDate: "2025-01-01"})

	_, err := svc.BeginEdit(ctx, "a")
	require.NoError(t, err)

	svc.CancelEdit()

	state := svc.Editor()
	assert.Equal(t, ModeCreate, state.Mode)
	assert.Empty(t, state.TargetID)
	assert.Equal(t, "Add Listing", state.SubmitLabel)
	assert.False(t, state.CanCancel)

	collection, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, collection, 1, "cancel must not touch the store")
}

func TestListingService_Delete(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store,
		models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", PostedDate: "2025-01-01"},
		models.JobListing{ID: "b", Title: "Second", Company: "Globex", Location: "Berlin", PostedDate: "2025-02-01"},
		models.JobListing{ID: "c", Title: "Third", Company: "Initech", Location: "Austin", PostedDate: "2025-03-01"},
	)

	require.NoError(t, svc.Delete(ctx, "b"))

	collection, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, collection, 2)
	assert.Equal(t, "a", collection[0].ID)
	assert.Equal(t, "c", collection[1].ID)
}

func TestListingService_Delete_NotFound(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store, models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", PostedDate: "2025-01-01"})

	err := svc.Delete(ctx, "999")

	assert.ErrorIs(t, err, ErrListingNotFound)

	collection, loadErr := svc.List(ctx)
	require.NoError(t, loadErr)
	assert.Len(t, collection, 1)
}

func TestListingService_List_EmptyStore(t *testing.T) {
	svc, _ := setupListingService(t)

	collection, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, collection)
}

func TestListingService_RoundTripIsIdempotent(t *testing.T) {
	svc, store := setupListingService(t)
	ctx := context.Background()
	seedListings(t, store,
		models.JobListing{ID: "a", Title: "First", Company: "Acme", Location: "Remote", Description: "x", PostedDate: "2025-01-01"},
		models.JobListing{ID: "b", Title: "Second", Company: "Globex", Location: "Berlin", PostedDate: "2025-02-01"},
	)

	loaded, err := svc.List(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, loaded))

	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}
