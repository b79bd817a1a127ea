package utils

import (
	"strings"

	"github.com/google/uuid"
)

// BookingRefPrefix is the fixed prefix on human-facing booking reference ids.
const BookingRefPrefix = "SCRP-"

// NewBookingReference generates a human-readable booking reference id,
// e.g. "SCRP-9F1C2B3A". Uniqueness is enforced by the database; the 8 hex
// chars of a fresh UUID make collisions a retry case, not a design concern.
func NewBookingReference() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return BookingRefPrefix + strings.ToUpper(raw[:8])
}

// InvoiceNumberFromReference derives the stable invoice number for a
// booking: strip the booking prefix, prepend "INV-". One booking, one number.
func InvoiceNumberFromReference(referenceID string) string {
	return "INV-" + strings.TrimPrefix(referenceID, BookingRefPrefix)
}
