package storage

import (
	"time"

	"github.com/plateworks/caterops/internal/domain"
)

// quoteRecord is the persisted form of domain.Quote. The snapshot
// columns (subtotal, tax, grand total, deposit) exist for reporting
// queries only; reads always recompute the summary from items, config,
// and payments, so the snapshot is never authoritative.
type quoteRecord struct {
	ID        string `gorm:"primaryKey"`
	Number    string `gorm:"uniqueIndex;not null"`
	InquiryID string `gorm:"index;not null"`
	Status    string `gorm:"not null"`

	ValidUntil time.Time
	Terms      string

	TaxRate      float64
	DepositType  string
	DepositValue float64

	Subtotal   float64
	Tax        float64
	GrandTotal float64
	Deposit    float64

	Items    []lineItemRecord `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	Payments []paymentRecord  `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`

	Version   int `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (quoteRecord) TableName() string { return "quotes" }

type lineItemRecord struct {
	ID          string `gorm:"primaryKey"`
	QuoteID     string `gorm:"index;not null"`
	Position    int    `gorm:"not null"`
	Category    string `gorm:"not null"`
	Description string
	Quantity    float64
	UnitPrice   float64
	Hours       *float64
	Taxable     bool
}

func (lineItemRecord) TableName() string { return "quote_line_items" }

type paymentRecord struct {
	ID       string `gorm:"primaryKey"`
	QuoteID  string `gorm:"index;not null"`
	Position int    `gorm:"not null"`
	Date     time.Time
	Amount   float64 `gorm:"not null"`
	Method   string
	Notes    string
}

func (paymentRecord) TableName() string { return "quote_payments" }

type inquiryRecord struct {
	ID string `gorm:"primaryKey"`

	ContactName  string `gorm:"not null"`
	ContactEmail string
	ContactPhone string

	ServiceCategory string
	EventDate       time.Time
	EventLocation   string
	GuestCount      int

	Status   string `gorm:"index;not null"`
	Priority string `gorm:"not null"`

	Notes []noteRecord `gorm:"foreignKey:InquiryID;constraint:OnDelete:CASCADE"`

	Version   int `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (inquiryRecord) TableName() string { return "inquiries" }

type noteRecord struct {
	ID        string `gorm:"primaryKey"`
	InquiryID string `gorm:"index;not null"`
	Position  int    `gorm:"not null"`
	Author    string
	Text      string
	CreatedAt time.Time
}

func (noteRecord) TableName() string { return "inquiry_notes" }

func quoteToRecord(q *domain.Quote) *quoteRecord {
	summary := q.Summary()

	rec := &quoteRecord{
		ID:           q.ID,
		Number:       q.Number,
		InquiryID:    q.InquiryID,
		Status:       string(q.Status),
		ValidUntil:   q.ValidUntil,
		Terms:        q.Terms,
		TaxRate:      q.Config.TaxRate,
		DepositType:  string(q.Config.DepositType),
		DepositValue: q.Config.DepositValue,
		Subtotal:     summary.Subtotal,
		Tax:          summary.Tax,
		GrandTotal:   summary.GrandTotal,
		Deposit:      summary.Deposit,
		Version:      q.Version,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}

	for i, item := range q.Items {
		rec.Items = append(rec.Items, lineItemRecord{
			ID:          item.ID,
			QuoteID:     q.ID,
			Position:    i,
			Category:    string(item.Category),
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Hours:       item.Hours,
			Taxable:     item.Taxable,
		})
	}

	for i, payment := range q.Payments {
		rec.Payments = append(rec.Payments, paymentRecord{
			ID:       payment.ID,
			QuoteID:  q.ID,
			Position: i,
			Date:     payment.Date,
			Amount:   payment.Amount,
			Method:   payment.Method,
			Notes:    payment.Notes,
		})
	}

	return rec
}

func recordToQuote(rec *quoteRecord) *domain.Quote {
	quote := &domain.Quote{
		ID:         rec.ID,
		Number:     rec.Number,
		InquiryID:  rec.InquiryID,
		Status:     domain.QuoteStatus(rec.Status),
		ValidUntil: rec.ValidUntil,
		Terms:      rec.Terms,
		Config: domain.FinancialConfig{
			TaxRate:      rec.TaxRate,
			DepositType:  domain.DepositType(rec.DepositType),
			DepositValue: rec.DepositValue,
		},
		Version:   rec.Version,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}

	for _, item := range rec.Items {
		quote.Items = append(quote.Items, domain.LineItem{
			ID:          item.ID,
			Category:    domain.ItemCategory(item.Category),
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Hours:       item.Hours,
			Taxable:     item.Taxable,
		})
	}

	for _, payment := range rec.Payments {
		quote.Payments = append(quote.Payments, domain.Payment{
			ID:     payment.ID,
			Date:   payment.Date,
			Amount: payment.Amount,
			Method: payment.Method,
			Notes:  payment.Notes,
		})
	}

	return quote
}

func inquiryToRecord(inq *domain.Inquiry) *inquiryRecord {
	rec := &inquiryRecord{
		ID:              inq.ID,
		ContactName:     inq.Contact.Name,
		ContactEmail:    inq.Contact.Email,
		ContactPhone:    inq.Contact.Phone,
		ServiceCategory: inq.ServiceCategory,
		EventDate:       inq.EventDate,
		EventLocation:   inq.EventLocation,
		GuestCount:      inq.GuestCount,
		Status:          string(inq.Status),
		Priority:        string(inq.Priority),
		Version:         inq.Version,
		CreatedAt:       inq.CreatedAt,
		UpdatedAt:       inq.UpdatedAt,
	}

	for i, note := range inq.Notes {
		rec.Notes = append(rec.Notes, noteRecord{
			ID:        note.ID,
			InquiryID: inq.ID,
			Position:  i,
			Author:    note.Author,
			Text:      note.Text,
			CreatedAt: note.CreatedAt,
		})
	}

	return rec
}

func recordToInquiry(rec *inquiryRecord) *domain.Inquiry {
	inquiry := &domain.Inquiry{
		ID: rec.ID,
		Contact: domain.Contact{
			Name:  rec.ContactName,
			Email: rec.ContactEmail,
			Phone: rec.ContactPhone,
		},
		ServiceCategory: rec.ServiceCategory,
		EventDate:       rec.EventDate,
		EventLocation:   rec.EventLocation,
		GuestCount:      rec.GuestCount,
		Status:          domain.InquiryStatus(rec.Status),
		Priority:        domain.Priority(rec.Priority),
		Version:         rec.Version,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}

	for _, note := range rec.Notes {
		inquiry.Notes = append(inquiry.Notes, domain.Note{
			ID:        note.ID,
			Author:    note.Author,
			Text:      note.Text,
			CreatedAt: note.CreatedAt,
		})
	}

	return inquiry
}
