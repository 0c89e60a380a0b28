package domain

import (
	"math"
	"time"
)

// DepositType selects how the upfront deposit is computed.
type DepositType string

const (
	// DepositPercentage computes the deposit as a share of the grand total.
	DepositPercentage DepositType = "percentage"

	// DepositFixed uses the configured value as-is, independent of total.
	DepositFixed DepositType = "fixed"
)

// Valid reports whether the deposit type is a known member of the set.
func (d DepositType) Valid() bool {
	return d == DepositPercentage || d == DepositFixed
}

// FinancialConfig holds per-quote financial settings.
type FinancialConfig struct {
	// TaxRate is a percentage, e.g. 8.5 means 8.5%.
	TaxRate float64

	// DepositType selects percentage or fixed deposit computation.
	DepositType DepositType

	// DepositValue is a percentage for DepositPercentage, an absolute
	// amount for DepositFixed.
	DepositValue float64
}

// Validate checks the configuration against business rules.
func (c FinancialConfig) Validate() error {
	if c.TaxRate < 0 {
		return NewValidationErrorWithValue("taxRate", "must not be negative", c.TaxRate)
	}

	if !c.DepositType.Valid() {
		return NewValidationErrorWithValue("depositType", "unknown deposit type", string(c.DepositType))
	}

	if c.DepositValue < 0 {
		return NewValidationErrorWithValue("depositValue", "must not be negative", c.DepositValue)
	}

	return nil
}

// Payment is a recorded amount applied against a quote's grand total.
type Payment struct {
	// ID is the unique identifier for this payment.
	ID string

	// Date is when the payment was received.
	Date time.Time

	// Amount is the applied amount. Must be positive.
	Amount float64

	// Method records how the payment was made (card, check, transfer...).
	Method string

	// Notes is optional staff commentary.
	Notes string
}

// Validate checks the payment against business rules.
func (p Payment) Validate() error {
	if p.Amount <= 0 {
		return NewValidationErrorWithValue("amount", "must be positive", p.Amount)
	}

	return nil
}

// Summary is the derived financial view of a quote. Every field is a pure
// function of (line items, financial configuration, payments); nothing
// here is ever mutated independently or trusted from storage.
type Summary struct {
	Subtotal      float64
	TaxableAmount float64
	Tax           float64
	GrandTotal    float64
	Deposit       float64
	TotalPayments float64
	Balance       float64
}

// Overpaid reports whether recorded payments exceed the grand total.
// Overpayment is surfaced for human review, never silently clamped.
// Amounts are compared at cent precision so float noise below a cent
// never flips the result.
func (s Summary) Overpaid() bool {
	return Round2(s.TotalPayments) > Round2(s.GrandTotal)
}

// CoversDeposit reports whether recorded payments meet the required
// deposit, compared at cent precision.
func (s Summary) CoversDeposit() bool {
	return s.Deposit > 0 && Round2(s.TotalPayments) >= Round2(s.Deposit)
}

// CoversTotal reports whether recorded payments meet the grand total,
// compared at cent precision.
func (s Summary) CoversTotal() bool {
	return Round2(s.TotalPayments) >= Round2(s.GrandTotal)
}

// Summarize derives the full financial summary. It is idempotent and
// order-independent: reordering line items or payments never changes the
// result. Values are kept at full float64 precision; rounding happens
// only at presentation time via Round2.
func Summarize(items []LineItem, cfg FinancialConfig, payments []Payment) Summary {
	var s Summary

	for _, li := range items {
		total := li.Total()
		s.Subtotal += total

		if li.Taxable {
			s.TaxableAmount += total
		}
	}

	s.Tax = s.TaxableAmount * (cfg.TaxRate / 100)
	s.GrandTotal = s.Subtotal + s.Tax

	if cfg.DepositType == DepositPercentage {
		s.Deposit = s.GrandTotal * (cfg.DepositValue / 100)
	} else {
		s.Deposit = cfg.DepositValue
	}

	for _, p := range payments {
		s.TotalPayments += p.Amount
	}

	s.Balance = s.GrandTotal - s.TotalPayments

	return s
}

// Round2 rounds to two decimals, half away from zero. This is the single
// presentation-time rounding rule; computation never rounds, so repeated
// recomputation cannot compound rounding error.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a copy of the summary with every amount passed through
// Round2, for presentation.
func (s Summary) Rounded() Summary {
	return Summary{
		Subtotal:      Round2(s.Subtotal),
		TaxableAmount: Round2(s.TaxableAmount),
		Tax:           Round2(s.Tax),
		GrandTotal:    Round2(s.GrandTotal),
		Deposit:       Round2(s.Deposit),
		TotalPayments: Round2(s.TotalPayments),
		Balance:       Round2(s.Balance),
	}
}
