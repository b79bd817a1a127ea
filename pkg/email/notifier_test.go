package email

import (
	"context"
	"testing"

	"scrap-pickup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingSender struct {
	to, subject, text, html string
	calls                   int
}

func (s *capturingSender) SendEmail(_ context.Context, to, subject, plainTextContent, htmlContent string) error {
	s.calls++
	s.to = to
	s.subject = subject
	s.text = plainTextContent
	s.html = htmlContent
	return nil
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ReferenceID:   "SCRP-9F1C2B3A",
		CustomerName:  "Asha Kumari",
		CustomerPhone: "9876543210",
		Address:       "12 MG Road",
		Pincode:       "560001",
		TotalValue:    275,
		Items: []models.BookingItem{
			{CategoryName: "Newspaper", Quantity: 10, Rate: 14, Value: 140},
			{CategoryName: "Iron", Quantity: 5, Rate: 27, Value: 135},
		},
	}
}

func TestNotifyBookingCreated(t *testing.T) {
	templates, err := NewTemplateManager()
	require.NoError(t, err)

	sender := &capturingSender{}
	notifier := NewBookingNotifier(sender, templates, "ops@example.com")

	require.NoError(t, notifier.NotifyBookingCreated(context.Background(), sampleBooking()))

	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "ops@example.com", sender.to)
	assert.Contains(t, sender.subject, "SCRP-9F1C2B3A")
	assert.Contains(t, sender.html, "Asha Kumari")
	assert.Contains(t, sender.html, "Newspaper")
	assert.Contains(t, sender.html, "275.00")
	assert.Contains(t, sender.text, "560001")
}

func TestNotifyBookingCreatedWithoutDestination(t *testing.T) {
	templates, err := NewTemplateManager()
	require.NoError(t, err)

	sender := &capturingSender{}
	notifier := NewBookingNotifier(sender, templates, "")

	require.NoError(t, notifier.NotifyBookingCreated(context.Background(), sampleBooking()))
	assert.Equal(t, 0, sender.calls, "no destination disables the sink")
}
