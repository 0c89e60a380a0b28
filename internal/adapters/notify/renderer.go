package notify

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/plateworks/caterops/internal/domain"
	"github.com/plateworks/caterops/internal/ports"
)

// quoteSentSubject is the subject line for outbound quotes.
const quoteSentSubject = "Your quote %s"

// quoteSentBody is the plain-text body for outbound quotes. Kept as
// plain text: the gateway owns HTML wrapping and branding.
const quoteSentBody = `Hi {{.CustomerName}},

Thank you for your interest. Please find your quote {{.QuoteNumber}} below.

Event date: {{.EventDate.Format "Monday, 2 January 2006"}}
Quote valid until: {{.ValidUntil.Format "2 January 2006"}}

{{range .Items -}}
  {{printf "%-32s %10.2f" .Description (.Total | round2)}}
{{end -}}
{{printf "%-32s %10.2f" "Subtotal" (.Summary.Subtotal | round2)}}
{{printf "%-32s %10.2f" "Tax" (.Summary.Tax | round2)}}
{{printf "%-32s %10.2f" "Total" (.Summary.GrandTotal | round2)}}
{{printf "%-32s %10.2f" "Deposit due" (.Summary.Deposit | round2)}}
{{if .Terms}}
Terms: {{.Terms}}
{{end}}
We look forward to hearing from you.
`

// QuoteEmailRenderer implements ports.QuoteRenderer with plain-text
// templates. Money is rounded at this presentation boundary only; the
// underlying summary stays unrounded.
type QuoteEmailRenderer struct {
	tmpl *template.Template
}

var _ ports.QuoteRenderer = (*QuoteEmailRenderer)(nil)

// NewQuoteEmailRenderer parses the built-in templates.
func NewQuoteEmailRenderer() (*QuoteEmailRenderer, error) {
	tmpl, err := template.New("quote-sent").
		Funcs(template.FuncMap{"round2": domain.Round2}).
		Parse(quoteSentBody)
	if err != nil {
		return nil, fmt.Errorf("parsing quote template: %w", err)
	}

	return &QuoteEmailRenderer{tmpl: tmpl}, nil
}

// RenderQuoteSent renders the quote-sent message for delivery.
func (r *QuoteEmailRenderer) RenderQuoteSent(_ context.Context, data ports.QuoteSentData) (ports.Message, error) {
	if data.Email == "" {
		return ports.Message{}, domain.NewValidationError("email", "recipient address is required")
	}

	var body strings.Builder
	if err := r.tmpl.Execute(&body, data); err != nil {
		return ports.Message{}, fmt.Errorf("rendering quote message: %w", err)
	}

	return ports.Message{
		To:      data.Email,
		Subject: fmt.Sprintf(quoteSentSubject, data.QuoteNumber),
		Body:    body.String(),
	}, nil
}
