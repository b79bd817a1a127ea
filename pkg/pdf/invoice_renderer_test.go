package pdf

import (
	"strings"
	"testing"
	"time"

	"scrap-pickup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvoice(t *testing.T) {
	renderer := NewInvoiceRenderer()

	invoice := &models.Invoice{
		InvoiceNumber: "INV-9F1C2B3A",
		BookingID:     "booking-1",
		CustomerName:  "Asha Kumari",
		CustomerPhone: "9876543210",
		VendorName:    "Ravi Scrap Traders",
		VendorPhone:   "9000000001",
		TotalValue:    "1000.00",
		PlatformFee:   "50.00",
		NetAmount:     "950.00",
		PaymentMode:   models.PaymentCash,
		CreatedAt:     time.Now(),
	}
	booking := &models.Booking{
		ReferenceID: "SCRP-9F1C2B3A",
		Address:     "12 MG Road",
		Pincode:     "560001",
		District:    "Bengaluru Urban",
		State:       "Karnataka",
		Items: []models.BookingItem{
			{CategoryName: "Newspaper", Quantity: 10, Rate: 14, Value: 140},
			{CategoryName: "Iron", Quantity: 5, Rate: 27, Value: 135},
		},
	}

	data, err := renderer.RenderInvoice(invoice, booking)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output is a PDF document")
	assert.Greater(t, len(data), 1000, "document body is not empty")
}
