package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/plateworks/caterops/internal/adapters/http/dto"
	"github.com/plateworks/caterops/internal/app"
	"github.com/plateworks/caterops/internal/domain"
)

// QuoteHandler handles quote lifecycle HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// LineItemRequest is one priced line in a create or update request.
type LineItemRequest struct {
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unitPrice"`
	Hours       *float64 `json:"hours,omitempty"`
	Taxable     bool     `json:"taxable"`
}

// FinancialConfigRequest carries per-quote tax and deposit settings.
type FinancialConfigRequest struct {
	TaxRate      float64 `json:"taxRate"`
	DepositType  string  `json:"depositType" binding:"required"`
	DepositValue float64 `json:"depositValue"`
}

// CreateQuoteRequest is the payload for POST /quotes.
type CreateQuoteRequest struct {
	InquiryID string                 `json:"inquiryId" binding:"required"`
	Items     []LineItemRequest      `json:"items"`
	Config    FinancialConfigRequest `json:"config" binding:"required"`
}

// UpdateQuoteRequest is the payload for PATCH /quotes/:id. Absent fields
// are left untouched; Version is the caller's expected aggregate version.
type UpdateQuoteRequest struct {
	Terms      *string                 `json:"terms,omitempty"`
	ValidUntil *time.Time              `json:"validUntil,omitempty"`
	Config     *FinancialConfigRequest `json:"config,omitempty"`
	Items      *[]LineItemRequest      `json:"items,omitempty"`
	Version    int                     `json:"version" binding:"min=1"`
}

// RecordPaymentRequest is the payload for POST /quotes/:id/payments.
type RecordPaymentRequest struct {
	Amount  float64    `json:"amount" binding:"required"`
	Method  string     `json:"method"`
	Date    *time.Time `json:"date,omitempty"`
	Notes   string     `json:"notes"`
	Version int        `json:"version" binding:"min=1"`
}

// LineItemResponse is one priced line in a quote response.
type LineItemResponse struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unitPrice"`
	Hours       *float64 `json:"hours,omitempty"`
	Taxable     bool     `json:"taxable"`
	Total       float64  `json:"total"`
}

// PaymentResponse is one recorded payment in a quote response.
type PaymentResponse struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Method string    `json:"method,omitempty"`
	Notes  string    `json:"notes,omitempty"`
}

// SummaryResponse is the derived financial summary, rounded for display.
type SummaryResponse struct {
	Subtotal      float64 `json:"subtotal"`
	TaxableAmount float64 `json:"taxableAmount"`
	Tax           float64 `json:"tax"`
	GrandTotal    float64 `json:"grandTotal"`
	Deposit       float64 `json:"deposit"`
	TotalPayments float64 `json:"totalPayments"`
	Balance       float64 `json:"balance"`
}

// WarningResponse is a non-fatal condition attached to a response.
type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QuoteResponse is the HTTP representation of a quote. The summary is
// recomputed from items, config, and payments on every read.
type QuoteResponse struct {
	ID         string                 `json:"id"`
	Number     string                 `json:"number"`
	InquiryID  string                 `json:"inquiryId"`
	Status     string                 `json:"status"`
	ValidUntil *time.Time             `json:"validUntil,omitempty"`
	Terms      string                 `json:"terms,omitempty"`
	Config     FinancialConfigRequest `json:"config"`
	Items      []LineItemResponse     `json:"items"`
	Payments   []PaymentResponse      `json:"payments"`
	Summary    SummaryResponse        `json:"summary"`
	Warnings   []WarningResponse      `json:"warnings,omitempty"`
	Version    int                    `json:"version"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// toQuoteResponse converts a domain Quote to an HTTP response.
func toQuoteResponse(q *domain.Quote, warnings []domain.Warning) *QuoteResponse {
	items := make([]LineItemResponse, len(q.Items))
	for i, li := range q.Items {
		items[i] = LineItemResponse{
			ID:          li.ID,
			Category:    string(li.Category),
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Hours:       li.Hours,
			Taxable:     li.Taxable,
			Total:       domain.Round2(li.Total()),
		}
	}

	payments := make([]PaymentResponse, len(q.Payments))
	for i, p := range q.Payments {
		payments[i] = PaymentResponse{
			ID:     p.ID,
			Date:   p.Date,
			Amount: p.Amount,
			Method: p.Method,
			Notes:  p.Notes,
		}
	}

	summary := q.Summary().Rounded()

	resp := &QuoteResponse{
		ID:        q.ID,
		Number:    q.Number,
		InquiryID: q.InquiryID,
		Status:    string(q.Status),
		Terms:     q.Terms,
		Config: FinancialConfigRequest{
			TaxRate:      q.Config.TaxRate,
			DepositType:  string(q.Config.DepositType),
			DepositValue: q.Config.DepositValue,
		},
		Items:    items,
		Payments: payments,
		Summary: SummaryResponse{
			Subtotal:      summary.Subtotal,
			TaxableAmount: summary.TaxableAmount,
			Tax:           summary.Tax,
			GrandTotal:    summary.GrandTotal,
			Deposit:       summary.Deposit,
			TotalPayments: summary.TotalPayments,
			Balance:       summary.Balance,
		},
		Version:   q.Version,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}

	if !q.ValidUntil.IsZero() {
		vu := q.ValidUntil
		resp.ValidUntil = &vu
	}

	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, WarningResponse{
			Code:    w.Code,
			Message: w.Message,
		})
	}

	return resp
}

func toDomainItems(reqs []LineItemRequest) []domain.LineItem {
	items := make([]domain.LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = domain.LineItem{
			ID:          uuid.New().String(),
			Category:    domain.ItemCategory(r.Category),
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			Hours:       r.Hours,
			Taxable:     r.Taxable,
		}
	}

	return items
}

func toDomainConfig(r FinancialConfigRequest) domain.FinancialConfig {
	return domain.FinancialConfig{
		TaxRate:      r.TaxRate,
		DepositType:  domain.DepositType(r.DepositType),
		DepositValue: r.DepositValue,
	}
}

// CreateQuote handles POST /api/v1/quotes
// Creates a DRAFT quote against an existing inquiry.
//
// @Summary Create a quote
// @Description Creates a draft quote for an inquiry with a generated quote number
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body CreateQuoteRequest true "Quote to create"
// @Success 201 {object} QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	quote, err := h.service.Create(
		c.Request.Context(),
		req.InquiryID,
		toDomainItems(req.Items),
		toDomainConfig(req.Config),
	)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toQuoteResponse(quote, nil))
}

// GetQuote handles GET /api/v1/quotes/:id
//
// @Summary Get a quote by ID
// @Description Fetches a quote with its recomputed financial summary
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote, nil))
}

// UpdateQuote handles PATCH /api/v1/quotes/:id
// Applies a partial edit. Editing items or config on a SENT quote moves
// it back to DRAFT; closed quotes reject edits entirely.
//
// @Summary Update a quote
// @Description Partially updates an editable quote with optimistic locking
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body UpdateQuoteRequest true "Fields to update"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [patch]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var req UpdateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	patch := app.QuotePatch{
		Terms:      req.Terms,
		ValidUntil: req.ValidUntil,
	}

	if req.Config != nil {
		cfg := toDomainConfig(*req.Config)
		patch.Config = &cfg
	}

	if req.Items != nil {
		items := toDomainItems(*req.Items)
		patch.Items = &items
	}

	quote, err := h.service.Update(c.Request.Context(), c.Param("id"), patch, req.Version)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote, nil))
}

// SendQuote handles POST /api/v1/quotes/:id/send
// Sends the quote to the customer and marks the owning inquiry QUOTED in
// the same transaction. A failed notification is reported as a warning,
// not an error.
//
// @Summary Send a quote
// @Description Transitions the quote to SENT and emails it to the customer
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/send [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	result, err := h.service.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(result.Quote, result.Warnings))
}

// AcceptQuote handles POST /api/v1/quotes/:id/accept
//
// @Summary Accept a quote
// @Description Records the customer's acceptance of a sent quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/accept [post]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	quote, err := h.service.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote, nil))
}

// DeclineQuote handles POST /api/v1/quotes/:id/decline
//
// @Summary Decline a quote
// @Description Records the customer's rejection of a sent quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/decline [post]
func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	quote, err := h.service.Decline(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote, nil))
}

// RecordPayment handles POST /api/v1/quotes/:id/payments
// Records a payment against an accepted quote. Overpayment and deposit
// milestones come back as warnings on the response.
//
// @Summary Record a payment
// @Description Appends a payment to the quote and advances its payment state
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body RecordPaymentRequest true "Payment to record"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/payments [post]
func (h *QuoteHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	payment := domain.Payment{
		Amount: req.Amount,
		Method: req.Method,
		Notes:  req.Notes,
	}
	if req.Date != nil {
		payment.Date = *req.Date
	}

	result, err := h.service.RecordPayment(c.Request.Context(), c.Param("id"), payment, req.Version)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(result.Quote, result.Warnings))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.POST("", h.CreateQuote)
	quotes.GET("/:id", h.GetQuote)
	quotes.PATCH("/:id", h.UpdateQuote)
	quotes.POST("/:id/send", h.SendQuote)
	quotes.POST("/:id/accept", h.AcceptQuote)
	quotes.POST("/:id/decline", h.DeclineQuote)
	quotes.POST("/:id/payments", h.RecordPayment)
}
