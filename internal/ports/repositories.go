// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/plateworks/caterops/internal/domain"
)

// ListPage carries keyset pagination parameters for list operations.
// AfterID is the last ID of the previous page; empty means first page.
type ListPage struct {
	AfterID string
	Limit   int
}

// QuoteRepository persists quote aggregates.
type QuoteRepository interface {
	// GetByID retrieves a quote by its identifier.
	// Returns domain.ErrNotFound if the quote does not exist.
	GetByID(ctx context.Context, id string) (*domain.Quote, error)

	// ListByInquiry retrieves all quotes owned by an inquiry, ordered
	// by creation time.
	ListByInquiry(ctx context.Context, inquiryID string) ([]*domain.Quote, error)

	// Create persists a new quote at version 1.
	// Returns domain.ErrConflict if the quote number is already taken.
	Create(ctx context.Context, quote *domain.Quote) error

	// Update persists quote changes guarded by the optimistic lock:
	// the stored version must equal expectedVersion or the save is
	// rejected with domain.ErrConflict. On success the quote's version
	// is incremented.
	Update(ctx context.Context, quote *domain.Quote, expectedVersion int) error
}

// InquiryRepository persists inquiry aggregates.
type InquiryRepository interface {
	// GetByID retrieves an inquiry by its identifier.
	// Returns domain.ErrNotFound if the inquiry does not exist.
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)

	// List retrieves a page of inquiries ordered by creation time.
	// A non-nil status restricts the page to that lifecycle state.
	List(ctx context.Context, status *domain.InquiryStatus, page ListPage) ([]*domain.Inquiry, error)

	// Create persists a new inquiry at version 1.
	Create(ctx context.Context, inquiry *domain.Inquiry) error

	// Update persists inquiry changes guarded by the optimistic lock,
	// same contract as QuoteRepository.Update.
	Update(ctx context.Context, inquiry *domain.Inquiry, expectedVersion int) error
}

// Store bundles the repositories with a transactional boundary.
// WithinTx is the one place the quote and inquiry aggregates are written
// together: the coupled SENT/QUOTED transition commits both or neither.
type Store interface {
	Quotes() QuoteRepository
	Inquiries() InquiryRepository

	// WithinTx runs fn against repositories bound to one transaction.
	// A non-nil error from fn rolls everything back.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
