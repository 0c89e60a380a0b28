package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plateworks/caterops/internal/adapters/http/dto"
	"github.com/plateworks/caterops/internal/app"
	"github.com/plateworks/caterops/internal/domain"
	"github.com/plateworks/caterops/internal/ports"
)

// InquiryHandler handles inquiry lifecycle HTTP endpoints.
type InquiryHandler struct {
	service *app.InquiryService
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(service *app.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		service: service,
	}
}

// ContactRequest is the customer contact block on a create request.
type ContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateInquiryRequest is the payload for POST /inquiries.
type CreateInquiryRequest struct {
	Contact         ContactRequest `json:"contact" binding:"required"`
	ServiceCategory string         `json:"serviceCategory"`
	EventDate       time.Time      `json:"eventDate"`
	EventLocation   string         `json:"eventLocation"`
	GuestCount      int            `json:"guestCount" binding:"min=0"`
	Priority        string         `json:"priority"`
}

// ListInquiriesRequest carries query parameters for GET /inquiries.
type ListInquiriesRequest struct {
	dto.PaginationRequest
	Status string `form:"status"`
}

// UpdateInquiryStatusRequest is the payload for POST /inquiries/:id/status.
type UpdateInquiryStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Version int    `json:"version" binding:"min=1"`
}

// AddNoteRequest is the payload for POST /inquiries/:id/notes.
type AddNoteRequest struct {
	Author  string `json:"author"`
	Text    string `json:"text" binding:"required"`
	Version int    `json:"version" binding:"min=1"`
}

// ReactivateInquiryRequest is the payload for POST /inquiries/:id/reactivate.
type ReactivateInquiryRequest struct {
	Actor   string `json:"actor" binding:"required"`
	Version int    `json:"version" binding:"min=1"`
}

// NoteResponse is one entry of the inquiry's note log.
type NoteResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// InquiryResponse is the HTTP representation of an inquiry.
type InquiryResponse struct {
	ID              string         `json:"id"`
	Contact         ContactRequest `json:"contact"`
	ServiceCategory string         `json:"serviceCategory,omitempty"`
	EventDate       *time.Time     `json:"eventDate,omitempty"`
	EventLocation   string         `json:"eventLocation,omitempty"`
	GuestCount      int            `json:"guestCount"`
	Status          string         `json:"status"`
	Priority        string         `json:"priority"`
	Notes           []NoteResponse `json:"notes"`
	Version         int            `json:"version"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// InquiryDetailResponse is an inquiry with its quotes.
type InquiryDetailResponse struct {
	Inquiry *InquiryResponse `json:"inquiry"`
	Quotes  []*QuoteResponse `json:"quotes"`
}

// toInquiryResponse converts a domain Inquiry to an HTTP response.
func toInquiryResponse(i *domain.Inquiry) *InquiryResponse {
	notes := make([]NoteResponse, len(i.Notes))
	for idx, n := range i.Notes {
		notes[idx] = NoteResponse{
			ID:        n.ID,
			Author:    n.Author,
			Text:      n.Text,
			CreatedAt: n.CreatedAt,
		}
	}

	resp := &InquiryResponse{
		ID: i.ID,
		Contact: ContactRequest{
			Name:  i.Contact.Name,
			Email: i.Contact.Email,
			Phone: i.Contact.Phone,
		},
		ServiceCategory: i.ServiceCategory,
		EventLocation:   i.EventLocation,
		GuestCount:      i.GuestCount,
		Status:          string(i.Status),
		Priority:        string(i.Priority),
		Notes:           notes,
		Version:         i.Version,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}

	if !i.EventDate.IsZero() {
		ed := i.EventDate
		resp.EventDate = &ed
	}

	return resp
}

// CreateInquiry handles POST /api/v1/inquiries
//
// @Summary Create an inquiry
// @Description Registers a new customer inquiry in state NEW
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body CreateInquiryRequest true "Inquiry to create"
// @Success 201 {object} InquiryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/inquiries [post]
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	inquiry, err := h.service.Create(c.Request.Context(), app.NewInquiry{
		Contact: domain.Contact{
			Name:  req.Contact.Name,
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		},
		ServiceCategory: req.ServiceCategory,
		EventDate:       req.EventDate,
		EventLocation:   req.EventLocation,
		GuestCount:      req.GuestCount,
		Priority:        domain.Priority(req.Priority),
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toInquiryResponse(inquiry))
}

// GetInquiry handles GET /api/v1/inquiries/:id
//
// @Summary Get an inquiry by ID
// @Tags inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} InquiryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/inquiries/{id} [get]
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	inquiry, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

// GetInquiryDetail handles GET /api/v1/inquiries/:id/detail
// Loads the inquiry and its quotes concurrently; a failure on either
// side fails the whole read.
//
// @Summary Get an inquiry with its quotes
// @Tags inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} InquiryDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/inquiries/{id}/detail [get]
func (h *InquiryHandler) GetInquiryDetail(c *gin.Context) {
	inquiry, quotes, err := h.service.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	quoteResponses := make([]*QuoteResponse, len(quotes))
	for i, q := range quotes {
		quoteResponses[i] = toQuoteResponse(q, nil)
	}

	c.JSON(http.StatusOK, InquiryDetailResponse{
		Inquiry: toInquiryResponse(inquiry),
		Quotes:  quoteResponses,
	})
}

// ListInquiries handles GET /api/v1/inquiries
// Lists inquiries in creation order with cursor pagination and an
// optional status filter.
//
// @Summary List inquiries
// @Tags inquiries
// @Produce json
// @Param status query string false "Filter by lifecycle status"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} dto.PaginatedResponse[InquiryResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/inquiries [get]
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	var req ListInquiriesRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	var status *domain.InquiryStatus

	if req.Status != "" {
		s := domain.InquiryStatus(req.Status)
		if !s.Valid() {
			dto.HandleError(c, domain.NewValidationErrorWithValue("status", "unknown status", req.Status))
			return
		}

		status = &s
	}

	page := ports.ListPage{Limit: req.GetLimit() + 1}

	if cursor, err := req.DecodeCursor(); err == nil {
		page.AfterID = cursor.ID
	} else if !errors.Is(err, dto.ErrNoCursor) {
		dto.HandleError(c, domain.NewValidationError("cursor", "malformed cursor"))
		return
	}

	inquiries, err := h.service.List(c.Request.Context(), status, page)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]*InquiryResponse, len(inquiries))
	for i, inq := range inquiries {
		items[i] = toInquiryResponse(inq)
	}

	resp := dto.NewPaginatedResponse(items, req.GetLimit(), func(item *InquiryResponse) *dto.CursorData {
		return dto.NewCursor("created_at", item.CreatedAt.Format(time.RFC3339Nano), item.ID)
	})

	c.JSON(http.StatusOK, resp)
}

// UpdateInquiryStatus handles POST /api/v1/inquiries/:id/status
//
// @Summary Transition an inquiry
// @Description Moves the inquiry along its lifecycle with optimistic locking
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body UpdateInquiryStatusRequest true "Target status"
// @Success 200 {object} InquiryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/inquiries/{id}/status [post]
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	var req UpdateInquiryStatusRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	inquiry, err := h.service.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		domain.InquiryStatus(req.Status),
		req.Version,
	)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

// AddInquiryNote handles POST /api/v1/inquiries/:id/notes
//
// @Summary Add a note to an inquiry
// @Description Appends one entry to the inquiry's append-only note log
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body AddNoteRequest true "Note to append"
// @Success 200 {object} InquiryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/inquiries/{id}/notes [post]
func (h *InquiryHandler) AddInquiryNote(c *gin.Context) {
	var req AddNoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	inquiry, err := h.service.AddNote(c.Request.Context(), c.Param("id"), req.Author, req.Text, req.Version)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

// ReactivateInquiry handles POST /api/v1/inquiries/:id/reactivate
//
// @Summary Reactivate a closed inquiry
// @Description Administrative override that reopens a won, lost, or archived inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body ReactivateInquiryRequest true "Acting staff member"
// @Success 200 {object} InquiryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/inquiries/{id}/reactivate [post]
func (h *InquiryHandler) ReactivateInquiry(c *gin.Context) {
	var req ReactivateInquiryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	inquiry, err := h.service.Reactivate(c.Request.Context(), c.Param("id"), req.Actor, req.Version)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

// RegisterInquiryRoutes registers inquiry routes on the given router group.
func (h *InquiryHandler) RegisterInquiryRoutes(rg *gin.RouterGroup) {
	inquiries := rg.Group("/inquiries")
	inquiries.POST("", h.CreateInquiry)
	inquiries.GET("", h.ListInquiries)
	inquiries.GET("/:id", h.GetInquiry)
	inquiries.GET("/:id/detail", h.GetInquiryDetail)
	inquiries.POST("/:id/status", h.UpdateInquiryStatus)
	inquiries.POST("/:id/notes", h.AddInquiryNote)
	inquiries.POST("/:id/reactivate", h.ReactivateInquiry)
}
