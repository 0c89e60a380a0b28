package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftQuote() *Quote {
	return &Quote{
		ID:        "q-1",
		Number:    "Q-20260901-4F2A",
		InquiryID: "inq-1",
		Status:    QuoteDraft,
		Config:    scenarioConfig(),
		Items:     scenarioItems(),
	}
}

func TestQuoteStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		from    QuoteStatus
		to      QuoteStatus
		allowed bool
	}{
		{QuoteDraft, QuoteSent, true},
		{QuoteDraft, QuoteAccepted, false},
		{QuoteDraft, QuotePaid, false},
		{QuoteSent, QuoteAccepted, true},
		{QuoteSent, QuoteDeclined, true},
		{QuoteSent, QuoteDraft, true}, // revert on edit
		{QuoteSent, QuotePaid, false},
		{QuoteAccepted, QuoteDepositPaid, true},
		{QuoteAccepted, QuotePaid, true},
		{QuoteAccepted, QuoteSent, false},
		{QuoteDepositPaid, QuotePaid, true},
		{QuoteDepositPaid, QuoteDraft, false},
		{QuoteDeclined, QuoteSent, false},
		{QuotePaid, QuoteDraft, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestQuoteStatus_Terminal(t *testing.T) {
	assert.True(t, QuoteDeclined.Terminal())
	assert.True(t, QuotePaid.Terminal())
	assert.False(t, QuoteDraft.Terminal())
	assert.False(t, QuoteAccepted.Terminal())
}

func TestQuote_Transition_InvalidLeavesStateUnchanged(t *testing.T) {
	q := draftQuote()

	err := q.Transition(QuoteAccepted)
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))
	assert.Equal(t, QuoteDraft, q.Status)

	var transErr *InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, "quote", transErr.Entity)
	assert.Equal(t, "DRAFT", transErr.From)
	assert.Equal(t, "ACCEPTED", transErr.To)
}

func TestQuote_SendAcceptFlow(t *testing.T) {
	q := draftQuote()

	require.NoError(t, q.Transition(QuoteSent))
	assert.Equal(t, QuoteSent, q.Status)

	// A second send is a state machine violation.
	err := q.Transition(QuoteSent)
	require.Error(t, err)
	assert.Equal(t, QuoteSent, q.Status)

	require.NoError(t, q.Transition(QuoteAccepted))
	require.NoError(t, q.Transition(QuoteDepositPaid))
	require.NoError(t, q.Transition(QuotePaid))
	assert.True(t, q.Status.Terminal())
}

func TestQuote_ReplaceItems(t *testing.T) {
	t.Run("draft accepts edits", func(t *testing.T) {
		q := draftQuote()
		err := q.ReplaceItems([]LineItem{{Category: CategoryFood, Quantity: 1, UnitPrice: 10}})
		require.NoError(t, err)
		assert.Len(t, q.Items, 1)
		assert.Equal(t, QuoteDraft, q.Status)
	})

	t.Run("editing a sent quote reverts it to draft", func(t *testing.T) {
		q := draftQuote()
		require.NoError(t, q.Transition(QuoteSent))

		err := q.ReplaceItems([]LineItem{{Category: CategoryFood, Quantity: 1, UnitPrice: 10}})
		require.NoError(t, err)
		assert.Equal(t, QuoteDraft, q.Status)
	})

	t.Run("accepted quote rejects edits", func(t *testing.T) {
		q := draftQuote()
		require.NoError(t, q.Transition(QuoteSent))
		require.NoError(t, q.Transition(QuoteAccepted))

		err := q.ReplaceItems([]LineItem{{Category: CategoryFood, Quantity: 1, UnitPrice: 10}})
		require.Error(t, err)
		assert.True(t, IsInvalidTransition(err))
		assert.Len(t, q.Items, 2, "items must be untouched on rejection")
	})

	t.Run("invalid line rejected before mutation", func(t *testing.T) {
		q := draftQuote()
		err := q.ReplaceItems([]LineItem{{Category: CategoryFood, Quantity: -1, UnitPrice: 10}})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Len(t, q.Items, 2)
	})
}

func TestQuote_RecordPayment(t *testing.T) {
	q := draftQuote()

	require.NoError(t, q.RecordPayment(Payment{ID: "p-1", Amount: 100, Method: "card"}))
	assert.Len(t, q.Payments, 1)
	assert.Equal(t, QuoteDraft, q.Status, "recording a payment never changes status")

	err := q.RecordPayment(Payment{Amount: 0})
	require.Error(t, err)
	assert.Len(t, q.Payments, 1)
}

func TestQuote_Summary_Overpayment(t *testing.T) {
	q := draftQuote()
	require.NoError(t, q.RecordPayment(Payment{Amount: 200, Method: "card"}))

	s := q.Summary()
	assert.InDelta(t, -25.75, s.Balance, 1e-9)
	assert.True(t, s.Overpaid())
}

func TestQuote_SerializationRoundTrip(t *testing.T) {
	q := draftQuote()
	q.ValidUntil = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, q.RecordPayment(Payment{ID: "p-1", Amount: 87.125, Method: "transfer"}))

	want := q.Summary()

	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded Quote
	require.NoError(t, json.Unmarshal(raw, &decoded))

	got := decoded.Summary()
	assert.InDelta(t, want.Subtotal, got.Subtotal, 1e-9)
	assert.InDelta(t, want.Tax, got.Tax, 1e-9)
	assert.InDelta(t, want.GrandTotal, got.GrandTotal, 1e-9)
	assert.InDelta(t, want.Deposit, got.Deposit, 1e-9)
	assert.InDelta(t, want.Balance, got.Balance, 1e-9)
}

func TestQuote_Validate(t *testing.T) {
	q := draftQuote()
	require.NoError(t, q.Validate())

	q.InquiryID = ""
	assert.Error(t, q.Validate())

	q = draftQuote()
	q.Items = append(q.Items, LineItem{Category: "mystery", Quantity: 1, UnitPrice: 1})
	assert.Error(t, q.Validate())

	q = draftQuote()
	q.Config.TaxRate = -2
	assert.Error(t, q.Validate())
}
