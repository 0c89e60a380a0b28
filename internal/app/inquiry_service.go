package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plateworks/caterops/internal/domain"
	"github.com/plateworks/caterops/internal/platform/logging"
	"github.com/plateworks/caterops/internal/ports"
)

// InquiryService orchestrates inquiry intake and lifecycle.
type InquiryService struct {
	store  ports.Store
	logger *slog.Logger
}

// InquiryServiceConfig contains dependencies for the inquiry service.
type InquiryServiceConfig struct {
	Store  ports.Store
	Logger *slog.Logger
}

// NewInquiryService creates a new inquiry service. Panics if Store is nil.
func NewInquiryService(cfg InquiryServiceConfig) *InquiryService {
	if cfg.Store == nil {
		panic("InquiryService: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &InquiryService{
		store:  cfg.Store,
		logger: logger.With(slog.String("component", "app.InquiryService")),
	}
}

// NewInquiry carries the fields supplied at intake.
type NewInquiry struct {
	Contact         domain.Contact
	ServiceCategory string
	EventDate       time.Time
	EventLocation   string
	GuestCount      int
	Priority        domain.Priority
}

// Create registers a new inquiry in state NEW.
func (s *InquiryService) Create(ctx context.Context, in NewInquiry) (*domain.Inquiry, error) {
	logger := s.opLogger(ctx, "Create", "")

	now := time.Now().UTC()

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	inquiry := &domain.Inquiry{
		ID:              uuid.New().String(),
		Contact:         in.Contact,
		ServiceCategory: in.ServiceCategory,
		EventDate:       in.EventDate,
		EventLocation:   in.EventLocation,
		GuestCount:      in.GuestCount,
		Status:          domain.InquiryNew,
		Priority:        priority,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := inquiry.Validate(); err != nil {
		return nil, fmt.Errorf("validating inquiry: %w", err)
	}

	if err := s.store.Inquiries().Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("creating inquiry: %w", err)
	}

	logger.InfoContext(ctx, "inquiry created",
		slog.String("inquiry_id", inquiry.ID),
		slog.String("service_category", inquiry.ServiceCategory),
	)

	return inquiry, nil
}

// Get retrieves an inquiry by ID.
func (s *InquiryService) Get(ctx context.Context, inquiryID string) (*domain.Inquiry, error) {
	inquiry, err := s.store.Inquiries().GetByID(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("getting inquiry: %w", err)
	}

	return inquiry, nil
}

// GetDetail retrieves an inquiry together with its quotes. The two reads
// are independent, so they run concurrently.
func (s *InquiryService) GetDetail(ctx context.Context, inquiryID string) (*domain.Inquiry, []*domain.Quote, error) {
	inquiry, quotes, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Inquiry, error) {
			return s.store.Inquiries().GetByID(ctx, inquiryID)
		},
		func(ctx context.Context) ([]*domain.Quote, error) {
			return s.store.Quotes().ListByInquiry(ctx, inquiryID)
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("getting inquiry detail: %w", err)
	}

	return inquiry, quotes, nil
}

// List retrieves a page of inquiries ordered by creation time,
// optionally filtered to a single lifecycle state.
func (s *InquiryService) List(ctx context.Context, status *domain.InquiryStatus, page ports.ListPage) ([]*domain.Inquiry, error) {
	inquiries, err := s.store.Inquiries().List(ctx, status, page)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}

	return inquiries, nil
}

// UpdateStatus advances an inquiry through the state machine by staff
// action. The transition table rejects illegal moves; closed inquiries
// only move again via Reactivate.
func (s *InquiryService) UpdateStatus(
	ctx context.Context,
	inquiryID string,
	to domain.InquiryStatus,
	expectedVersion int,
) (*domain.Inquiry, error) {
	logger := s.opLogger(ctx, "UpdateStatus", inquiryID)

	inquiry, err := s.store.Inquiries().GetByID(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("getting inquiry: %w", err)
	}

	if err := inquiry.Transition(to); err != nil {
		return nil, err
	}

	if err := s.store.Inquiries().Update(ctx, inquiry, expectedVersion); err != nil {
		return nil, fmt.Errorf("saving inquiry: %w", err)
	}

	logger.InfoContext(ctx, "inquiry transitioned", slog.String("status", string(to)))

	return inquiry, nil
}

// AddNote appends a note to the inquiry's append-only log.
func (s *InquiryService) AddNote(
	ctx context.Context,
	inquiryID, author, text string,
	expectedVersion int,
) (*domain.Inquiry, error) {
	logger := s.opLogger(ctx, "AddNote", inquiryID)

	if text == "" {
		return nil, domain.NewValidationError("text", "is required")
	}

	inquiry, err := s.store.Inquiries().GetByID(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("getting inquiry: %w", err)
	}

	inquiry.AddNote(domain.Note{
		ID:        uuid.New().String(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.store.Inquiries().Update(ctx, inquiry, expectedVersion); err != nil {
		return nil, fmt.Errorf("saving inquiry: %w", err)
	}

	logger.InfoContext(ctx, "note added", slog.Int("note_count", len(inquiry.Notes)))

	return inquiry, nil
}

// Reactivate reopens a closed inquiry into NEGOTIATING. This is an
// administrative override, so the acting staff member is recorded in the
// audit log.
func (s *InquiryService) Reactivate(
	ctx context.Context,
	inquiryID, actor string,
	expectedVersion int,
) (*domain.Inquiry, error) {
	logger := s.opLogger(ctx, "Reactivate", inquiryID)

	inquiry, err := s.store.Inquiries().GetByID(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("getting inquiry: %w", err)
	}

	from := inquiry.Status

	if err := inquiry.Reactivate(); err != nil {
		return nil, err
	}

	if err := s.store.Inquiries().Update(ctx, inquiry, expectedVersion); err != nil {
		return nil, fmt.Errorf("saving inquiry: %w", err)
	}

	logger.WarnContext(ctx, "inquiry reactivated by administrative override",
		slog.String("actor", actor),
		slog.String("from", string(from)),
		slog.String("to", string(inquiry.Status)),
	)

	return inquiry, nil
}

// opLogger returns the context logger enriched with operation fields.
func (s *InquiryService) opLogger(ctx context.Context, method, inquiryID string) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	logger = logger.With(slog.String("method", method))
	if inquiryID != "" {
		logger = logger.With(slog.String("inquiry_id", inquiryID))
	}

	return logger
}
