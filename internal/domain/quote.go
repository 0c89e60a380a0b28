// Package domain contains core business entities and rules.
package domain

import "time"

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	// QuoteDraft is the initial, freely editable state.
	QuoteDraft QuoteStatus = "DRAFT"

	// QuoteSent means the quote was delivered to the customer.
	QuoteSent QuoteStatus = "SENT"

	// QuoteAccepted means the customer agreed to the quote.
	QuoteAccepted QuoteStatus = "ACCEPTED"

	// QuoteDeclined is terminal: the customer rejected the quote.
	QuoteDeclined QuoteStatus = "DECLINED"

	// QuoteDepositPaid means the required deposit has been received.
	QuoteDepositPaid QuoteStatus = "DEPOSIT_PAID"

	// QuotePaid is terminal: the grand total has been settled.
	QuotePaid QuoteStatus = "PAID"
)

// quoteTransitions is the single source of truth for legal status moves.
// Status is never assigned directly; all changes go through Transition.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteDraft:       {QuoteSent},
	QuoteSent:        {QuoteAccepted, QuoteDeclined, QuoteDraft},
	QuoteAccepted:    {QuoteDepositPaid, QuotePaid},
	QuoteDepositPaid: {QuotePaid},
	QuoteDeclined:    {},
	QuotePaid:        {},
}

// Valid reports whether the status is a known member of the set.
func (s QuoteStatus) Valid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

// CanTransitionTo reports whether the move from s to next is legal.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Terminal reports whether the status accepts no further transitions.
func (s QuoteStatus) Terminal() bool {
	return len(quoteTransitions[s]) == 0
}

// Quote is a priced proposal tied to exactly one inquiry. The financial
// summary is always derived from items, config, and payments via
// Summary(); any persisted snapshot exists for query convenience only and
// must be verified against a recomputation on read.
type Quote struct {
	// ID is the unique identifier.
	ID string

	// Number is the human-readable quote number, unique and generated
	// at creation (e.g. "Q-20260901-4F2A").
	Number string

	// InquiryID references the owning inquiry.
	InquiryID string

	// Status is the lifecycle state. Mutated only through Transition.
	Status QuoteStatus

	// ValidUntil is the date the offer expires.
	ValidUntil time.Time

	// Terms is free-text terms and notes presented to the customer.
	Terms string

	// Config holds the tax and deposit settings for this quote.
	Config FinancialConfig

	// Items is the ordered sequence of priced lines.
	Items []LineItem

	// Payments is the ordered sequence of recorded payments.
	Payments []Payment

	// Version is the optimistic-lock counter. A save whose expected
	// version does not match the stored one is rejected with a conflict.
	Version int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary derives the financial summary from current items, config, and
// payments. Called on every read; never cached across mutations.
func (q *Quote) Summary() Summary {
	return Summarize(q.Items, q.Config, q.Payments)
}

// Validate checks the quote's items and configuration.
func (q *Quote) Validate() error {
	if q.InquiryID == "" {
		return NewValidationError("inquiryId", "is required")
	}

	if err := q.Config.Validate(); err != nil {
		return err
	}

	for _, li := range q.Items {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	for _, p := range q.Payments {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Transition moves the quote to the requested status, or returns an
// InvalidTransitionError leaving the state unchanged.
func (q *Quote) Transition(to QuoteStatus) error {
	if !q.Status.CanTransitionTo(to) {
		return NewInvalidTransitionError("quote", string(q.Status), string(to))
	}

	q.Status = to

	return nil
}

// Editable reports whether line items and terms may be changed.
// Only DRAFT and SENT quotes accept edits.
func (q *Quote) Editable() bool {
	return q.Status == QuoteDraft || q.Status == QuoteSent
}

// ReplaceItems swaps the line item sequence after validating every line.
// Editing a SENT quote forces it back to DRAFT so it must be re-sent;
// edits in any later state are rejected.
func (q *Quote) ReplaceItems(items []LineItem) error {
	if !q.Editable() {
		return NewInvalidTransitionError("quote", string(q.Status), string(QuoteDraft))
	}

	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	if q.Status == QuoteSent {
		q.Status = QuoteDraft
	}

	q.Items = items

	return nil
}

// RecordPayment validates and appends a payment. Recording a payment
// never changes status by itself; overpayment is surfaced to callers via
// Summary().Overpaid rather than rejected here.
func (q *Quote) RecordPayment(p Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	q.Payments = append(q.Payments, p)

	return nil
}
