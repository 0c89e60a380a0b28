package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/caterops/internal/domain"
	"github.com/plateworks/caterops/internal/ports"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(Config{
		Driver: DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	require.NoError(t, err)

	return NewStore(db)
}

func seedInquiry(t *testing.T, store *Store) *domain.Inquiry {
	t.Helper()

	inquiry := &domain.Inquiry{
		ID: uuid.New().String(),
		Contact: domain.Contact{
			Name:  "Dana Michaels",
			Email: "dana@example.com",
		},
		ServiceCategory: "catering",
		EventDate:       time.Date(2026, 6, 20, 18, 0, 0, 0, time.UTC),
		EventLocation:   "Riverside Pavilion",
		GuestCount:      80,
		Status:          domain.InquiryNew,
		Priority:        domain.PriorityNormal,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	require.NoError(t, store.Inquiries().Create(context.Background(), inquiry))

	return inquiry
}

func seedQuote(t *testing.T, store *Store, inquiryID string) *domain.Quote {
	t.Helper()

	hours := 2.0
	quote := &domain.Quote{
		ID:         uuid.New().String(),
		Number:     "Q-20260310-" + uuid.New().String()[:4],
		InquiryID:  inquiryID,
		Status:     domain.QuoteDraft,
		ValidUntil: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Terms:      "net 14",
		Config: domain.FinancialConfig{
			TaxRate:      8.5,
			DepositType:  domain.DepositPercentage,
			DepositValue: 50,
		},
		Items: []domain.LineItem{
			{ID: uuid.New().String(), Category: domain.CategoryFood, Description: "Buffet", Quantity: 40, UnitPrice: 3, Taxable: true},
			{ID: uuid.New().String(), Category: domain.CategoryLabor, Description: "Service staff", Quantity: 1, UnitPrice: 25, Hours: &hours},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	require.NoError(t, store.Quotes().Create(context.Background(), quote))

	return quote
}

func TestQuoteRepository_RoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	quote := seedQuote(t, store, inquiry.ID)

	loaded, err := store.Quotes().GetByID(ctx, quote.ID)
	require.NoError(t, err)

	assert.Equal(t, quote.Number, loaded.Number)
	assert.Equal(t, domain.QuoteDraft, loaded.Status)
	assert.Equal(t, 1, loaded.Version)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "Buffet", loaded.Items[0].Description)
	require.NotNil(t, loaded.Items[1].Hours)
	assert.InDelta(t, 2.0, *loaded.Items[1].Hours, 1e-9)

	// The summary is derived on read, never read back from the
	// snapshot columns.
	summary := loaded.Summary()
	assert.InDelta(t, 170, summary.Subtotal, 1e-9)
	assert.InDelta(t, 180.20, domain.Round2(summary.GrandTotal), 1e-9)
}

func TestQuoteRepository_SnapshotDriftRecomputes(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	quote := seedQuote(t, store, inquiry.ID)

	// Corrupt the reporting snapshot behind the aggregate's back.
	err := store.db.Model(&quoteRecord{}).
		Where("id = ?", quote.ID).
		Updates(map[string]any{"subtotal": 9999, "grand_total": 9999}).Error
	require.NoError(t, err)

	loaded, err := store.Quotes().GetByID(ctx, quote.ID)
	require.NoError(t, err)

	// The read ignores the stored snapshot entirely.
	summary := loaded.Summary()
	assert.InDelta(t, 170, summary.Subtotal, 1e-9)
	assert.InDelta(t, 180.20, domain.Round2(summary.GrandTotal), 1e-9)
}

func TestQuoteRepository_GetByID_NotFound(t *testing.T) {
	store := testStore(t)

	_, err := store.Quotes().GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteRepository_Create_DuplicateNumber(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	quote := seedQuote(t, store, inquiry.ID)

	dup := *quote
	dup.ID = uuid.New().String()
	dup.Version = 0

	err := store.Quotes().Create(ctx, &dup)

	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestQuoteRepository_Update_OptimisticLock(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	quote := seedQuote(t, store, inquiry.ID)

	quote.Terms = "net 30"
	require.NoError(t, store.Quotes().Update(ctx, quote, 1))
	assert.Equal(t, 2, quote.Version)

	// A writer holding the old version loses.
	stale := *quote
	stale.Terms = "stale edit"
	err := store.Quotes().Update(ctx, &stale, 1)

	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	loaded, err := store.Quotes().GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, "net 30", loaded.Terms)
	assert.Equal(t, 2, loaded.Version)
}

func TestQuoteRepository_Update_ReplacesChildren(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	quote := seedQuote(t, store, inquiry.ID)

	quote.Items = []domain.LineItem{
		{ID: uuid.New().String(), Category: domain.CategoryEquipment, Description: "Tent rental", Quantity: 1, UnitPrice: 400, Taxable: true},
	}
	quote.Payments = []domain.Payment{
		{ID: uuid.New().String(), Date: time.Now().UTC(), Amount: 100, Method: "card"},
	}

	require.NoError(t, store.Quotes().Update(ctx, quote, 1))

	loaded, err := store.Quotes().GetByID(ctx, quote.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Tent rental", loaded.Items[0].Description)
	require.Len(t, loaded.Payments, 1)
	assert.InDelta(t, 100, loaded.Payments[0].Amount, 1e-9)
}

func TestQuoteRepository_ListByInquiry(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	other := seedInquiry(t, store)

	seedQuote(t, store, inquiry.ID)
	seedQuote(t, store, inquiry.ID)
	seedQuote(t, store, other.ID)

	quotes, err := store.Quotes().ListByInquiry(ctx, inquiry.ID)

	require.NoError(t, err)
	assert.Len(t, quotes, 2)
}

func TestInquiryRepository_RoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	inquiry.Notes = append(inquiry.Notes, domain.Note{
		ID:        uuid.New().String(),
		Author:    "sam",
		Text:      "called, left voicemail",
		CreatedAt: time.Now().UTC(),
	})

	require.NoError(t, store.Inquiries().Update(ctx, inquiry, 1))

	loaded, err := store.Inquiries().GetByID(ctx, inquiry.ID)
	require.NoError(t, err)

	assert.Equal(t, "Dana Michaels", loaded.Contact.Name)
	assert.Equal(t, domain.InquiryNew, loaded.Status)
	require.Len(t, loaded.Notes, 1)
	assert.Equal(t, "called, left voicemail", loaded.Notes[0].Text)
	assert.Equal(t, 2, loaded.Version)
}

func TestInquiryRepository_NotesAreAppendOnly(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	inquiry.Notes = append(inquiry.Notes, domain.Note{ID: uuid.New().String(), Author: "sam", Text: "first"})
	require.NoError(t, store.Inquiries().Update(ctx, inquiry, 1))

	inquiry.Notes = append(inquiry.Notes, domain.Note{ID: uuid.New().String(), Author: "sam", Text: "second"})
	require.NoError(t, store.Inquiries().Update(ctx, inquiry, 2))

	loaded, err := store.Inquiries().GetByID(ctx, inquiry.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Notes, 2)
	assert.Equal(t, "first", loaded.Notes[0].Text)
	assert.Equal(t, "second", loaded.Notes[1].Text)
}

func TestInquiryRepository_List(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for range 3 {
		seedInquiry(t, store)
	}

	won := seedInquiry(t, store)
	require.NoError(t, won.Transition(domain.InquiryContacted))
	require.NoError(t, won.Transition(domain.InquiryQuoted))
	require.NoError(t, won.Transition(domain.InquiryWon))
	require.NoError(t, store.Inquiries().Update(ctx, won, 1))

	t.Run("unfiltered", func(t *testing.T) {
		inquiries, err := store.Inquiries().List(ctx, nil, ports.ListPage{})
		require.NoError(t, err)
		assert.Len(t, inquiries, 4)
	})

	t.Run("filtered by status", func(t *testing.T) {
		status := domain.InquiryWon
		inquiries, err := store.Inquiries().List(ctx, &status, ports.ListPage{})
		require.NoError(t, err)
		require.Len(t, inquiries, 1)
		assert.Equal(t, won.ID, inquiries[0].ID)
	})

	t.Run("keyset pagination", func(t *testing.T) {
		first, err := store.Inquiries().List(ctx, nil, ports.ListPage{Limit: 2})
		require.NoError(t, err)
		require.Len(t, first, 2)

		second, err := store.Inquiries().List(ctx, nil, ports.ListPage{AfterID: first[1].ID, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, second, 2)

		for _, inq := range second {
			assert.NotEqual(t, first[0].ID, inq.ID)
			assert.NotEqual(t, first[1].ID, inq.ID)
		}
	})

	t.Run("unknown cursor", func(t *testing.T) {
		_, err := store.Inquiries().List(ctx, nil, ports.ListPage{AfterID: "missing"})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestStore_WithinTx_RollsBackOnError(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	quote := seedQuote(t, store, inquiry.ID)

	err := store.WithinTx(ctx, func(tx ports.Store) error {
		q, err := tx.Quotes().GetByID(ctx, quote.ID)
		if err != nil {
			return err
		}

		if err := q.Transition(domain.QuoteSent); err != nil {
			return err
		}

		if err := tx.Quotes().Update(ctx, q, q.Version); err != nil {
			return err
		}

		return domain.NewUnavailableError("test", "forced rollback")
	})

	require.Error(t, err)

	loaded, err := store.Quotes().GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteDraft, loaded.Status)
	assert.Equal(t, 1, loaded.Version)
}

func TestStore_WithinTx_CommitsCoupledWrites(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	inquiry := seedInquiry(t, store)
	quote := seedQuote(t, store, inquiry.ID)

	err := store.WithinTx(ctx, func(tx ports.Store) error {
		q, err := tx.Quotes().GetByID(ctx, quote.ID)
		if err != nil {
			return err
		}

		if err := q.Transition(domain.QuoteSent); err != nil {
			return err
		}

		if err := tx.Quotes().Update(ctx, q, q.Version); err != nil {
			return err
		}

		inq, err := tx.Inquiries().GetByID(ctx, inquiry.ID)
		if err != nil {
			return err
		}

		if err := inq.Transition(domain.InquiryQuoted); err != nil {
			return err
		}

		return tx.Inquiries().Update(ctx, inq, inq.Version)
	})

	require.NoError(t, err)

	loadedQuote, err := store.Quotes().GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteSent, loadedQuote.Status)

	loadedInquiry, err := store.Inquiries().GetByID(ctx, inquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryQuoted, loadedInquiry.Status)
}

func TestHealthCheck(t *testing.T) {
	store := testStore(t)

	check := NewHealthCheck(store.db)

	assert.Equal(t, "database", check.Name())
	assert.NoError(t, check.Check(context.Background()))
}
