package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/plateworks/caterops/internal/domain"
	"github.com/plateworks/caterops/internal/ports"
)

// quoteRepository implements ports.QuoteRepository.
type quoteRepository struct {
	db *gorm.DB
}

var _ ports.QuoteRepository = (*quoteRepository)(nil)

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	var rec quoteRecord

	err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		Preload("Payments", orderByPosition).
		First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("quote", id)
		}

		return nil, fmt.Errorf("loading quote: %w", err)
	}

	quote := recordToQuote(&rec)
	checkSnapshotDrift(ctx, &rec, quote)

	return quote, nil
}

func (r *quoteRepository) ListByInquiry(ctx context.Context, inquiryID string) ([]*domain.Quote, error) {
	var recs []quoteRecord

	err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		Preload("Payments", orderByPosition).
		Where("inquiry_id = ?", inquiryID).
		Order("created_at ASC, id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	quotes := make([]*domain.Quote, 0, len(recs))
	for i := range recs {
		quote := recordToQuote(&recs[i])
		checkSnapshotDrift(ctx, &recs[i], quote)
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

func (r *quoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	if quote.Version == 0 {
		quote.Version = 1
	}

	rec := quoteToRecord(quote)

	err := r.db.WithContext(ctx).Create(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("quote", fmt.Sprintf("quote number %s already exists", quote.Number))
		}

		return fmt.Errorf("creating quote: %w", err)
	}

	return nil
}

// Update persists the quote guarded by the optimistic lock. The version
// column is checked and bumped in one UPDATE; zero affected rows means
// either a missing quote or a stale version.
func (r *quoteRepository) Update(ctx context.Context, quote *domain.Quote, expectedVersion int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quote.UpdatedAt = time.Now().UTC()
		rec := quoteToRecord(quote)

		res := tx.Model(&quoteRecord{}).
			Where("id = ? AND version = ?", quote.ID, expectedVersion).
			Updates(map[string]any{
				"status":        rec.Status,
				"valid_until":   rec.ValidUntil,
				"terms":         rec.Terms,
				"tax_rate":      rec.TaxRate,
				"deposit_type":  rec.DepositType,
				"deposit_value": rec.DepositValue,
				"subtotal":      rec.Subtotal,
				"tax":           rec.Tax,
				"grand_total":   rec.GrandTotal,
				"deposit":       rec.Deposit,
				"version":       expectedVersion + 1,
				"updated_at":    rec.UpdatedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("updating quote: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&quoteRecord{}).Where("id = ?", quote.ID).Count(&count).Error; err != nil {
				return fmt.Errorf("checking quote existence: %w", err)
			}

			if count == 0 {
				return domain.NewNotFoundError("quote", quote.ID)
			}

			return domain.NewConflictErrorWithDetails("quote", "version mismatch",
				fmt.Sprintf("expected version %d", expectedVersion))
		}

		// Line items and payments are replaced wholesale; their identity
		// lives in the aggregate, not in the rows.
		if err := tx.Where("quote_id = ?", quote.ID).Delete(&lineItemRecord{}).Error; err != nil {
			return fmt.Errorf("clearing line items: %w", err)
		}

		if err := tx.Where("quote_id = ?", quote.ID).Delete(&paymentRecord{}).Error; err != nil {
			return fmt.Errorf("clearing payments: %w", err)
		}

		if len(rec.Items) > 0 {
			if err := tx.Create(&rec.Items).Error; err != nil {
				return fmt.Errorf("saving line items: %w", err)
			}
		}

		if len(rec.Payments) > 0 {
			if err := tx.Create(&rec.Payments).Error; err != nil {
				return fmt.Errorf("saving payments: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	quote.Version = expectedVersion + 1

	return nil
}

// orderByPosition keeps child collections in their aggregate order.
func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// snapshotTolerance absorbs float representation noise between the
// stored snapshot and a fresh computation.
const snapshotTolerance = 0.005

// checkSnapshotDrift compares the stored financial snapshot against the
// freshly computed summary. The recomputed values always win; drift is
// only a signal that a writer bypassed the aggregate.
func checkSnapshotDrift(ctx context.Context, rec *quoteRecord, quote *domain.Quote) {
	summary := quote.Summary()

	if math.Abs(rec.GrandTotal-summary.GrandTotal) < snapshotTolerance &&
		math.Abs(rec.Subtotal-summary.Subtotal) < snapshotTolerance &&
		math.Abs(rec.Deposit-summary.Deposit) < snapshotTolerance {
		return
	}

	slog.Default().WarnContext(ctx, "quote financial snapshot drift",
		slog.String("quote_id", quote.ID),
		slog.Float64("stored_grand_total", rec.GrandTotal),
		slog.Float64("computed_grand_total", summary.GrandTotal),
	)
}
