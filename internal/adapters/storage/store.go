package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/plateworks/caterops/internal/ports"
)

// Store implements ports.Store over a GORM database handle.
type Store struct {
	db *gorm.DB
}

var _ ports.Store = (*Store)(nil)

// NewStore creates a store bound to the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Quotes returns the quote repository bound to this store's handle.
func (s *Store) Quotes() ports.QuoteRepository {
	return &quoteRepository{db: s.db}
}

// Inquiries returns the inquiry repository bound to this store's handle.
func (s *Store) Inquiries() ports.InquiryRepository {
	return &inquiryRepository{db: s.db}
}

// WithinTx runs fn against a store bound to a single database
// transaction. A non-nil error from fn rolls everything back.
func (s *Store) WithinTx(ctx context.Context, fn func(tx ports.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
