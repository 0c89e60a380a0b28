package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// quoteNumberSuffixLen is the number of random hex characters appended
// to a quote number.
const quoteNumberSuffixLen = 4

// NewQuoteNumber generates a human-readable quote number such as
// "Q-20260901-4F2A": the creation date plus a short random suffix.
// Uniqueness is ultimately enforced by the storage layer's unique
// constraint on the number column.
func NewQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:quoteNumberSuffixLen]

	return fmt.Sprintf("Q-%s-%s", now.Format("20060102"), suffix)
}
