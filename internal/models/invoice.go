package models

import "time"

// Invoice is the derived financial record generated once a booking
// completes. Identity strings are snapshots; amounts are fixed to two
// decimal places at generation time. At most one invoice exists per booking.
type Invoice struct {
	ID            string    `json:"id" db:"id"`
	InvoiceNumber string    `json:"invoice_number" db:"invoice_number"`
	BookingID     string    `json:"booking_id" db:"booking_id"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	CustomerPhone string    `json:"customer_phone" db:"customer_phone"`
	VendorName    string    `json:"vendor_name" db:"vendor_name"`
	VendorPhone   string    `json:"vendor_phone" db:"vendor_phone"`
	TotalValue    string    `json:"total_value" db:"total_value"`
	PlatformFee   string    `json:"platform_fee" db:"platform_fee"`
	NetAmount     string    `json:"net_amount" db:"net_amount"`
	PaymentMode   string    `json:"payment_mode" db:"payment_mode"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
