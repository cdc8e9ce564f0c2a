package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velja/jobboard-api/internal/models"
	"github.com/velja/jobboard-api/internal/storage"
)

var (
	ErrListingNotFound   = errors.New("listing not found")
	ErrMissingFields     = errors.New("title, company and location are required")
	ErrInvalidPostedDate = errors.New("posted date must be in YYYY-MM-DD format")
)

// Mode is the editor state: a submit either creates a new listing or
// replaces the one being edited.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ListingInput carries the raw form field values for a submit.
type ListingInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	PostedDate  string
}

// EditorState describes the controller mode for the admin form: which label
// the submit affordance carries and whether a cancel affordance is shown.
type EditorState struct {
	Mode        Mode
	TargetID    string
	SubmitLabel string
	CanCancel   bool
}

// ListingService owns the listing collection: create/edit/delete operations
// plus the create-vs-edit mode machine driving the admin form. All mutations
// go through the store; the collection is re-loaded per operation, so a
// failed save leaves no stale in-memory state behind.
type ListingService struct {
	store storage.ListingStore

	mu     sync.Mutex
	mode   Mode
	target string

	now func() time.Time
}

func NewListingService(store storage.ListingStore) *ListingService {
	return &ListingService{
		store: store,
		mode:  ModeCreate,
		now:   time.Now,
	}
}

func (s *ListingService) List(ctx context.Context) (models.Collection, error) {
	return s.store.Load(ctx)
}

// Submit runs the mode-dependent form submission: in create mode it appends
// a new listing with a fresh id, in edit mode it replaces the targeted
// listing in place, keeping its id and position. The mode the submit ran in
// is returned so callers can phrase the outcome. Any success resets the
// editor to create mode.
func (s *ListingService) Submit(ctx context.Context, in ListingInput) (*models.JobListing, Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, err := s.normalize(in)
	if err != nil {
		return nil, s.mode, err
	}

	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, s.mode, err
	}

	mode := s.mode
	switch mode {
	case ModeEdit:
		idx := collection.IndexOf(s.target)
		if idx < 0 {
			return nil, mode, ErrListingNotFound
		}
		listing.ID = s.target
		collection[idx] = listing
	default:
		listing.ID = uuid.New().String()
		collection = append(collection, listing)
	}

	if err := s.store.Save(ctx, collection); err != nil {
		return nil, mode, err
	}

	s.mode = ModeCreate
	s.target = ""
	return &listing, mode, nil
}

// BeginEdit switches the editor into edit mode targeting the given id and
// returns the listing's current field values for form pre-population.
func (s *ListingService) BeginEdit(ctx context.Context, id string) (*models.JobListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := collection.IndexOf(id)
	if idx < 0 {
		return nil, ErrListingNotFound
	}

	s.mode = ModeEdit
	s.target = id
	listing := collection[idx]
	return &listing, nil
}

// CancelEdit returns the editor to create mode without touching the store.
func (s *ListingService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeCreate
	s.target = ""
}

func (s *ListingService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	idx := collection.IndexOf(id)
	if idx < 0 {
		return ErrListingNotFound
	}

	collection = append(collection[:idx], collection[idx+1:]...)
	return s.store.Save(ctx, collection)
}

func (s *ListingService) Editor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := EditorState{Mode: s.mode, TargetID: s.target}
	if s.mode == ModeEdit {
		state.SubmitLabel = "Update Listing"
		state.CanCancel = true
	} else {
		state.SubmitLabel = "Add Listing"
	}
	return state
}

func (s *ListingService) normalize(in ListingInput) (models.JobListing, error) {
	listing := models.JobListing{
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
		PostedDate:  strings.TrimSpace(in.PostedDate),
	}

	if listing.Title == "" || listing.Company == "" || listing.Location == "" {
		return models.JobListing{}, ErrMissingFields
	}

	if listing.PostedDate == "" {
		listing.PostedDate = s.now().Format(models.PostedDateLayout)
	} else if _, err := time.Parse(models.PostedDateLayout, listing.PostedDate); err != nil {
		return models.JobListing{}, ErrInvalidPostedDate
	}

	return listing, nil
}
