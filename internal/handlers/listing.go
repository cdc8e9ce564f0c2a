package handlers

import (
	"errors"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/velja/jobboard-api/internal/models"
	"github.com/velja/jobboard-api/internal/render"
	"github.com/velja/jobboard-api/internal/services"
	"github.com/velja/jobboard-api/pkg/dto"
)

type ListingHandler struct {
	listingService ListingServiceInterface
	banner         BannerInterface
}

func NewListingHandler(listingService ListingServiceInterface, banner BannerInterface) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		banner:         banner,
	}
}

// List serves the display list for the admin panel and the public board.
func (h *ListingHandler) List(c *drift.Context) {
	collection, err := h.listingService.List(c.Request.Context())
	if err != nil {
		c.InternalServerError("failed to load listings")
		return
	}

	_ = c.JSON(200, render.Project(collection))
}

func (h *ListingHandler) Submit(c *drift.Context) {
	var req dto.SubmitListingRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	listing, mode, err := h.listingService.Submit(c.Request.Context(), services.ListingInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		PostedDate:  req.PostedDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrInvalidPostedDate):
			c.BadRequest(err.Error())
		case errors.Is(err, services.ErrListingNotFound):
			h.banner.Error("listing not found for update")
			c.NotFound("listing not found for update")
		default:
			h.banner.Error("failed to save listings")
			c.InternalServerError("failed to save listings")
		}
		return
	}

	message := "listing added"
	status := 201
	if mode == services.ModeEdit {
		message = "listing updated"
		status = 200
	}

	h.banner.Success(message)
	_ = c.JSON(status, dto.SubmitListingResponse{
		Message: message,
		Listing: toListingResponse(listing),
	})
}

// BeginEdit switches the editor to edit mode and hands back the target's
// current field values for form pre-population.
func (h *ListingHandler) BeginEdit(c *drift.Context) {
	id := c.Param("id")
	if id == "" {
		c.BadRequest("listing id is required")
		return
	}

	listing, err := h.listingService.BeginEdit(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			h.banner.Error("listing not found for editing")
			c.NotFound("listing not found for editing")
			return
		}
		c.InternalServerError("failed to load listings")
		return
	}

	_ = c.JSON(200, toListingResponse(listing))
}

func (h *ListingHandler) CancelEdit(c *drift.Context) {
	h.listingService.CancelEdit()
	_ = c.JSON(200, map[string]string{"message": "edit cancelled"})
}

func (h *ListingHandler) EditorState(c *drift.Context) {
	state := h.listingService.Editor()
	_ = c.JSON(200, dto.EditorStateResponse{
		Mode:        string(state.Mode),
		TargetID:    state.TargetID,
		SubmitLabel: state.SubmitLabel,
		CanCancel:   state.CanCancel,
	})
}

func (h *ListingHandler) Delete(c *drift.Context) {
	id := c.Param("id")
	if id == "" {
		c.BadRequest("listing id is required")
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			h.banner.Error("listing not found for deletion")
			c.NotFound("listing not found for deletion")
			return
		}
		h.banner.Error("failed to save listings")
		c.InternalServerError("failed to save listings")
		return
	}

	h.banner.Success("listing deleted")
	_ = c.JSON(200, map[string]string{"message": "listing deleted"})
}

func toListingResponse(l *models.JobListing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Company:     l.Company,
		Location:    l.Location,
		Description: l.Description,
		PostedDate:  l.PostedDate,
	}
}
