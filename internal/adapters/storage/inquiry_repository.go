package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/plateworks/caterops/internal/domain"
	"github.com/plateworks/caterops/internal/ports"
)

// defaultPageLimit caps unbounded list requests.
const defaultPageLimit = 50

// inquiryRepository implements ports.InquiryRepository.
type inquiryRepository struct {
	db *gorm.DB
}

var _ ports.InquiryRepository = (*inquiryRepository)(nil)

func (r *inquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	var rec inquiryRecord

	err := r.db.WithContext(ctx).
		Preload("Notes", orderByPosition).
		First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("inquiry", id)
		}

		return nil, fmt.Errorf("loading inquiry: %w", err)
	}

	return recordToInquiry(&rec), nil
}

// List pages inquiries with keyset pagination on (created_at, id).
func (r *inquiryRepository) List(ctx context.Context, status *domain.InquiryStatus, page ports.ListPage) ([]*domain.Inquiry, error) {
	limit := page.Limit
	if limit <= 0 || limit > defaultPageLimit {
		limit = defaultPageLimit
	}

	query := r.db.WithContext(ctx).
		Preload("Notes", orderByPosition).
		Order("created_at ASC, id ASC").
		Limit(limit)

	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	if page.AfterID != "" {
		var anchor inquiryRecord
		if err := r.db.WithContext(ctx).First(&anchor, "id = ?", page.AfterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.NewValidationError("after_id", "unknown cursor")
			}

			return nil, fmt.Errorf("resolving cursor: %w", err)
		}

		query = query.Where(
			"(created_at > ?) OR (created_at = ? AND id > ?)",
			anchor.CreatedAt, anchor.CreatedAt, anchor.ID,
		)
	}

	var recs []inquiryRecord
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}

	inquiries := make([]*domain.Inquiry, 0, len(recs))
	for i := range recs {
		inquiries = append(inquiries, recordToInquiry(&recs[i]))
	}

	return inquiries, nil
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	if inquiry.Version == 0 {
		inquiry.Version = 1
	}

	rec := inquiryToRecord(inquiry)

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("creating inquiry: %w", err)
	}

	return nil
}

// Update persists the inquiry guarded by the optimistic lock, same
// contract as the quote repository.
func (r *inquiryRepository) Update(ctx context.Context, inquiry *domain.Inquiry, expectedVersion int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inquiry.UpdatedAt = time.Now().UTC()
		rec := inquiryToRecord(inquiry)

		res := tx.Model(&inquiryRecord{}).
			Where("id = ? AND version = ?", inquiry.ID, expectedVersion).
			Updates(map[string]any{
				"contact_name":     rec.ContactName,
				"contact_email":    rec.ContactEmail,
				"contact_phone":    rec.ContactPhone,
				"service_category": rec.ServiceCategory,
				"event_date":       rec.EventDate,
				"event_location":   rec.EventLocation,
				"guest_count":      rec.GuestCount,
				"status":           rec.Status,
				"priority":         rec.Priority,
				"version":          expectedVersion + 1,
				"updated_at":       rec.UpdatedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("updating inquiry: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&inquiryRecord{}).Where("id = ?", inquiry.ID).Count(&count).Error; err != nil {
				return fmt.Errorf("checking inquiry existence: %w", err)
			}

			if count == 0 {
				return domain.NewNotFoundError("inquiry", inquiry.ID)
			}

			return domain.NewConflictErrorWithDetails("inquiry", "version mismatch",
				fmt.Sprintf("expected version %d", expectedVersion))
		}

		// Notes are append-only: insert rows the database has not seen
		// yet, never touch existing ones.
		var existing int64
		if err := tx.Model(&noteRecord{}).Where("inquiry_id = ?", inquiry.ID).Count(&existing).Error; err != nil {
			return fmt.Errorf("counting notes: %w", err)
		}

		if int(existing) < len(rec.Notes) {
			newNotes := rec.Notes[existing:]
			if err := tx.Create(&newNotes).Error; err != nil {
				return fmt.Errorf("saving notes: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	inquiry.Version = expectedVersion + 1

	return nil
}
