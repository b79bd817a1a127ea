package email

import (
	"context"
	"fmt"
	"strconv"

	"scrap-pickup/internal/models"
)

// BookingNotifier turns a freshly created booking into the structured
// summary email the admin inbox receives. It satisfies the bookings
// module's Notifier interface; callers dispatch it detached from the
// response path and only log failures.
type BookingNotifier struct {
	sender    SenderInterface
	templates *TemplateManager
	toEmail   string
}

func NewBookingNotifier(sender SenderInterface, templates *TemplateManager, toEmail string) *BookingNotifier {
	return &BookingNotifier{sender: sender, templates: templates, toEmail: toEmail}
}

// NotifyBookingCreated sends the booking summary. A missing destination
// address disables the sink silently.
func (n *BookingNotifier) NotifyBookingCreated(ctx context.Context, booking *models.Booking) error {
	if n.toEmail == "" {
		return nil
	}

	data := BookingTemplateData{
		ReferenceID:  booking.ReferenceID,
		CustomerName: booking.CustomerName,
		Phone:        booking.CustomerPhone,
		Address:      booking.Address,
		Pincode:      booking.Pincode,
		TotalValue:   strconv.FormatFloat(booking.TotalValue, 'f', 2, 64),
	}
	for _, item := range booking.Items {
		data.Items = append(data.Items, BookingTemplateItem{
			Name:     item.CategoryName,
			Quantity: strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			Rate:     strconv.FormatFloat(item.Rate, 'f', 2, 64),
			Value:    strconv.FormatFloat(item.Value, 'f', 2, 64),
		})
	}

	htmlContent, err := n.templates.GenerateBookingCreatedHTML(data)
	if err != nil {
		return fmt.Errorf("render booking notification: %w", err)
	}

	subject := fmt.Sprintf("New pickup booking %s", booking.ReferenceID)
	plainText := fmt.Sprintf("%s (%s) requested a scrap pickup at %s, %s. Estimated total: %s",
		booking.CustomerName, booking.CustomerPhone, booking.Address, booking.Pincode, data.TotalValue)

	return n.sender.SendEmail(ctx, n.toEmail, subject, plainText, htmlContent)
}
