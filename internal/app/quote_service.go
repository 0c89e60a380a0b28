// Package app contains application services that orchestrate use cases.
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

// AutoMarkPaidFlag gates whether a fully paid quote is advanced to PAID
// automatically. Off by default: marking a quote paid is a business
// decision, so the default behavior is to flag it for human review.
const AutoMarkPaidFlag = "auto-mark-paid"

// QuoteService orchestrates the quote lifecycle. It depends on port
// interfaces, not concrete implementations.
type QuoteService struct {
	store    ports.Store
	notifier ports.Notifier
	renderer ports.QuoteRenderer
	flags    ports.FeatureFlags
	exec     *Executor
	logger   *slog.Logger
}

// QuoteServiceConfig contains dependencies for the quote service.
// Store, Notifier, and Renderer are required; Flags is optional.
type QuoteServiceConfig struct {
	Store    ports.Store
	Notifier ports.Notifier
	Renderer ports.QuoteRenderer
	Flags    ports.FeatureFlags
	Logger   *slog.Logger
}

// NewQuoteService creates a new quote service with the provided
// dependencies. Panics if Store, Notifier, or Renderer is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("QuoteService: Store is required")
	}

	if cfg.Notifier == nil {
		panic("QuoteService: Notifier is required")
	}

	if cfg.Renderer == nil {
		panic("QuoteService: Renderer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		store:    cfg.Store,
		notifier: cfg.Notifier,
		renderer: cfg.Renderer,
		flags:    cfg.Flags,
		exec:     NewExecutor(logger),
		logger:   logger.With(slog.String("component", "app.QuoteService")),
	}
}

// QuoteResult is the outcome of a quote operation: the updated quote
// plus any non-fatal warnings flagged for human review.
type QuoteResult struct {
	Quote    *domain.Quote
	Warnings []domain.Warning
}

// QuotePatch carries partial edits for Update. Nil fields are untouched.
type QuotePatch struct {
	Terms      *string
	ValidUntil *time.Time
	Config     *domain.FinancialConfig
	Items      *[]domain.LineItem
}

// Create builds a DRAFT quote for an inquiry with a generated, unique
// quote number. Fails with a not found error if the inquiry is unknown.
func (s *QuoteService) Create(
	ctx context.Context,
	inquiryID string,
	items []domain.LineItem,
	cfg domain.FinancialConfig,
) (*domain.Quote, error) {
	logger := s.opLogger(ctx, "Create", "")

	if _, err := s.store.Inquiries().GetByID(ctx, inquiryID); err != nil {
		return nil, fmt.Errorf("resolving inquiry: %w", err)
	}

	now := time.Now().UTC()
	quote := &domain.Quote{
		ID:        uuid.New().String(),
		Number:    NewQuoteNumber(now),
		InquiryID: inquiryID,
		Status:    domain.QuoteDraft,
		Config:    cfg,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := quote.Validate(); err != nil {
		return nil, fmt.Errorf("validating quote: %w", err)
	}

	if err := s.store.Quotes().Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	logger.InfoContext(ctx, "quote created",
		slog.String("quote_id", quote.ID),
		slog.String("quote_number", quote.Number),
		slog.String("inquiry_id", inquiryID),
	)

	return quote, nil
}

// Get retrieves a quote by ID.
func (s *QuoteService) Get(ctx context.Context, quoteID string) (*domain.Quote, error) {
	quote, err := s.store.Quotes().GetByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	return quote, nil
}

// Update applies partial edits. Editing the line items of a SENT quote
// reverts it to DRAFT; edits in any later state are rejected. Saves are
// guarded by the optimistic lock: a stale expectedVersion yields a
// conflict and no mutation.
func (s *QuoteService) Update(
	ctx context.Context,
	quoteID string,
	patch QuotePatch,
	expectedVersion int,
) (*domain.Quote, error) {
	logger := s.opLogger(ctx, "Update", quoteID)

	quote, err := s.store.Quotes().GetByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	if patch.Items != nil {
		if err := quote.ReplaceItems(*patch.Items); err != nil {
			return nil, fmt.Errorf("replacing items: %w", err)
		}
	}

	if patch.Terms != nil || patch.ValidUntil != nil || patch.Config != nil {
		if !quote.Editable() {
			return nil, domain.NewInvalidTransitionError("quote", string(quote.Status), string(domain.QuoteDraft))
		}

		if patch.Terms != nil {
			quote.Terms = *patch.Terms
		}

		if patch.ValidUntil != nil {
			quote.ValidUntil = *patch.ValidUntil
		}

		if patch.Config != nil {
			if err := patch.Config.Validate(); err != nil {
				return nil, fmt.Errorf("validating config: %w", err)
			}

			quote.Config = *patch.Config
		}
	}

	if err := s.store.Quotes().Update(ctx, quote, expectedVersion); err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}

	logger.InfoContext(ctx, "quote updated",
		slog.String("status", string(quote.Status)),
		slog.Int("version", quote.Version),
	)

	return quote, nil
}

// sendState carries intermediate state through the send operation.
type sendState struct {
	quote   *domain.Quote
	inquiry *domain.Inquiry
}

// Send transitions a DRAFT quote to SENT and its inquiry to QUOTED in
// one storage transaction: both writes commit or neither does. The
// notification goes out only after the commit; a delivery failure is
// logged and returned as a soft warning, never rolled back.
func (s *QuoteService) Send(ctx context.Context, quoteID string) (*QuoteResult, error) {
	op := Operation[string, *sendState, *sendState, *QuoteResult]{
		Name: "quote.send",

		Validate: func(ctx context.Context, id string) error {
			quote, err := s.store.Quotes().GetByID(ctx, id)
			if err != nil {
				return err
			}

			if !quote.Status.CanTransitionTo(domain.QuoteSent) {
				return domain.NewInvalidTransitionError("quote", string(quote.Status), string(domain.QuoteSent))
			}

			return nil
		},

		Perform: func(ctx context.Context, id string) (*sendState, error) {
			state := &sendState{}

			err := s.store.WithinTx(ctx, func(tx ports.Store) error {
				quote, err := tx.Quotes().GetByID(ctx, id)
				if err != nil {
					return err
				}

				if err := quote.Transition(domain.QuoteSent); err != nil {
					return err
				}

				if err := tx.Quotes().Update(ctx, quote, quote.Version); err != nil {
					return err
				}

				inquiry, err := tx.Inquiries().GetByID(ctx, quote.InquiryID)
				if err != nil {
					return err
				}

				// Re-sending into an already quoted (or further
				// advanced) inquiry leaves its status alone.
				if inquiry.Status.CanTransitionTo(domain.InquiryQuoted) {
					if err := inquiry.Transition(domain.InquiryQuoted); err != nil {
						return err
					}

					if err := tx.Inquiries().Update(ctx, inquiry, inquiry.Version); err != nil {
						return err
					}
				}

				state.quote = quote
				state.inquiry = inquiry

				return nil
			})
			if err != nil {
				return nil, err
			}

			return state, nil
		},

		Verify: func(ctx context.Context, id string, performed *sendState) (*sendState, error) {
			quote, err := s.store.Quotes().GetByID(ctx, id)
			if err != nil {
				return nil, err
			}

			if quote.Status != domain.QuoteSent {
				return nil, domain.NewConflictError("quote", "send transition did not persist")
			}

			performed.quote = quote

			return performed, nil
		},

		Respond: func(ctx context.Context, id string, verified *sendState) (*QuoteResult, error) {
			return &QuoteResult{Quote: verified.quote}, nil
		},
	}

	result, err := Execute(ctx, s.exec, op, quoteID)
	if err != nil {
		return nil, err
	}

	if warning, ok := s.deliverQuote(ctx, result.Quote, result.Quote.Summary()); !ok {
		result.Warnings = append(result.Warnings, warning)
	}

	return result, nil
}

// deliverQuote renders and sends the quote notification. Failures are
// logged and reported as a warning; they never fail the operation.
func (s *QuoteService) deliverQuote(ctx context.Context, quote *domain.Quote, summary domain.Summary) (domain.Warning, bool) {
	logger := s.opLogger(ctx, "Send", quote.ID)

	inquiry, err := s.store.Inquiries().GetByID(ctx, quote.InquiryID)
	if err != nil {
		logger.WarnContext(ctx, "notification skipped, inquiry lookup failed", slog.Any("error", err))
		return domain.NewNotificationWarning(err), false
	}

	data := ports.QuoteSentData{
		QuoteNumber:  quote.Number,
		CustomerName: inquiry.Contact.Name,
		Email:        inquiry.Contact.Email,
		EventDate:    inquiry.EventDate,
		ValidUntil:   quote.ValidUntil,
		Items:        quote.Items,
		Summary:      summary,
		Terms:        quote.Terms,
	}

	msg, err := s.renderer.RenderQuoteSent(ctx, data)
	if err != nil {
		logger.WarnContext(ctx, "quote notification render failed", slog.Any("error", err))
		return domain.NewNotificationWarning(err), false
	}

	if err := s.notifier.Send(ctx, msg); err != nil {
		logger.WarnContext(ctx, "quote notification delivery failed", slog.Any("error", err))
		return domain.NewNotificationWarning(err), false
	}

	logger.InfoContext(ctx, "quote notification delivered",
		slog.String("quote_number", quote.Number),
	)

	return domain.Warning{}, true
}

// Accept marks a SENT quote accepted.
func (s *QuoteService) Accept(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return s.transition(ctx, quoteID, domain.QuoteAccepted)
}

// Decline marks a SENT quote declined.
func (s *QuoteService) Decline(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return s.transition(ctx, quoteID, domain.QuoteDeclined)
}

// transition loads, moves, and saves a quote through the state machine.
func (s *QuoteService) transition(ctx context.Context, quoteID string, to domain.QuoteStatus) (*domain.Quote, error) {
	logger := s.opLogger(ctx, "Transition", quoteID)

	quote, err := s.store.Quotes().GetByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	if err := quote.Transition(to); err != nil {
		return nil, err
	}

	if err := s.store.Quotes().Update(ctx, quote, quote.Version); err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}

	logger.InfoContext(ctx, "quote transitioned", slog.String("status", string(to)))

	return quote, nil
}

// RecordPayment appends a payment against the quote. Overpayment is
// flagged as a warning, not rejected. An ACCEPTED quote whose payments
// cover the deposit advances to DEPOSIT_PAID; full coverage advances to
// PAID only behind the auto-mark-paid flag, otherwise it is proposed as
// a warning for staff to act on.
func (s *QuoteService) RecordPayment(
	ctx context.Context,
	quoteID string,
	payment domain.Payment,
	expectedVersion int,
) (*QuoteResult, error) {
	logger := s.opLogger(ctx, "RecordPayment", quoteID)

	quote, err := s.store.Quotes().GetByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	if err := quote.RecordPayment(payment); err != nil {
		return nil, fmt.Errorf("recording payment: %w", err)
	}

	result := &QuoteResult{Quote: quote}
	summary := quote.Summary()

	if summary.Overpaid() {
		result.Warnings = append(result.Warnings, domain.NewOverpaymentWarning(summary.Balance))
		logger.WarnContext(ctx, "overpayment recorded",
			slog.Float64("balance", summary.Balance),
		)
	}

	if quote.Status == domain.QuoteAccepted && summary.CoversDeposit() {
		if err := quote.Transition(domain.QuoteDepositPaid); err != nil {
			return nil, err
		}
	}

	if summary.CoversTotal() && quote.Status.CanTransitionTo(domain.QuotePaid) {
		if s.autoMarkPaid(ctx) {
			if err := quote.Transition(domain.QuotePaid); err != nil {
				return nil, err
			}
		} else {
			result.Warnings = append(result.Warnings, domain.NewFullyPaidWarning())
		}
	}

	if err := s.store.Quotes().Update(ctx, quote, expectedVersion); err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}

	logger.InfoContext(ctx, "payment recorded",
		slog.Float64("amount", payment.Amount),
		slog.String("status", string(quote.Status)),
	)

	return result, nil
}

// autoMarkPaid checks the feature flag gating the automatic PAID
// transition. Without a flag provider the answer is always no.
func (s *QuoteService) autoMarkPaid(ctx context.Context) bool {
	if s.flags == nil {
		return false
	}

	return s.flags.IsEnabled(ctx, AutoMarkPaidFlag, false)
}

// opLogger returns the context logger enriched with operation fields.
func (s *QuoteService) opLogger(ctx context.Context, method, quoteID string) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	logger = logger.With(slog.String("method", method))
	if quoteID != "" {
		logger = logger.With(slog.String("quote_id", quoteID))
	}

	return logger
}
