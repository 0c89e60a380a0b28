package ports

import (
	"context"
	"time"

	"github.com/plateworks/caterops/internal/domain"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers rendered messages. Delivery is fire-and-log: a
// failure maps to domain.ErrNotification and never rolls back the status
// transition that triggered it.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// QuoteSentData is the data the core hands to the rendering collaborator
// when a quote goes out. The core supplies data only (customer, lines,
// computed totals, validity date), never markup.
type QuoteSentData struct {
	QuoteNumber  string
	CustomerName string
	Email        string
	EventDate    time.Time
	ValidUntil   time.Time
	Items        []domain.LineItem
	Summary      domain.Summary
	Terms        string
}

// QuoteRenderer is the external template-rendering collaborator.
// Implementations own subject lines and body markup.
type QuoteRenderer interface {
	RenderQuoteSent(ctx context.Context, data QuoteSentData) (Message, error)
}
