package models

import "time"

// Review is a one-to-one rating for a completed booking, tied to the
// customer and vendor involved.
type Review struct {
	ID         string    `json:"id" db:"id"`
	BookingID  string    `json:"booking_id" db:"booking_id"`
	CustomerID string    `json:"customer_id" db:"customer_id"`
	VendorID   string    `json:"vendor_id" db:"vendor_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateReviewRequest defines the body for the review endpoint.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=500"`
}
