package models

import (
	"database/sql"
	"time"
)

// Booking lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusAssigned  = "assigned"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// Payment modes, recorded only at completion.
const (
	PaymentCash = "cash"
	PaymentUPI  = "upi"
)

// Booking is the central transactional entity. Customer contact fields are
// snapshots copied at creation time, not live joins, so the record stays
// accurate even if the user later edits their profile.
type Booking struct {
	ID              string          `json:"id"`
	ReferenceID     string          `json:"reference_id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	Address         string          `json:"address"`
	Pincode         string          `json:"pincode"`
	District        string          `json:"district"`
	State           string          `json:"state"`
	TotalValue      float64         `json:"total_value"`
	PaymentMode     sql.NullString  `json:"payment_mode,omitempty"`
	Status          string          `json:"status"`
	RejectionReason sql.NullString  `json:"rejection_reason,omitempty"`
	VendorID        sql.NullString  `json:"vendor_id,omitempty"`
	VendorLatitude  sql.NullFloat64 `json:"vendor_latitude,omitempty"`
	VendorLongitude sql.NullFloat64 `json:"vendor_longitude,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     sql.NullTime    `json:"completed_at,omitempty"`

	Items []BookingItem `json:"items,omitempty"`
}

// BookingItem is a line within a booking. Owned exclusively by its booking,
// replaced wholesale on edit and deleted in cascade with it.
type BookingItem struct {
	ID           string  `json:"id"`
	BookingID    string  `json:"booking_id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"` // snapshot, survives category renames
	Quantity     float64 `json:"quantity"`
	Rate         float64 `json:"rate"`
	Value        float64 `json:"value"` // rate * quantity, derived server-side
}

// BookingItemRequest is one requested line. The caller may send a value but
// it is re-derived from rate and quantity, never trusted.
type BookingItemRequest struct {
	CategoryID   string  `json:"category_id" validate:"required,uuid4"`
	CategoryName string  `json:"category_name" validate:"required,min=1,max=100"`
	Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	Rate         float64 `json:"rate" validate:"required,gt=0"`
	Value        float64 `json:"value,omitempty"`
}

// CreateBookingRequest defines the body for booking creation. TotalValue is
// accepted for wire compatibility and ignored; the server recomputes it.
type CreateBookingRequest struct {
	Name       string               `json:"name" validate:"required,min=1,max=100"`
	Phone      string               `json:"phone" validate:"required,min=10,max=15"`
	Address    string               `json:"address" validate:"required,min=1"`
	Pincode    string               `json:"pincode" validate:"required,len=6,numeric"`
	District   string               `json:"district" validate:"required,min=1,max=100"`
	State      string               `json:"state" validate:"required,min=1,max=100"`
	Items      []BookingItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalValue float64              `json:"total_value,omitempty"`
}

// UpdateBookingRequest replaces the contact snapshot and the entire item
// list of a pending booking.
type UpdateBookingRequest = CreateBookingRequest

// AssignVendorRequest defines the body for the admin assignment endpoint.
type AssignVendorRequest struct {
	VendorID string `json:"vendor_id" validate:"required,uuid4"`
}

// RejectBookingRequest carries the mandatory rejection reason.
type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

// UpdateStatusRequest moves a booking along the lifecycle graph. PaymentMode
// is mandatory if and only if Status is "completed".
type UpdateStatusRequest struct {
	Status      string `json:"status" validate:"required,oneof=pending assigned completed rejected cancelled"`
	PaymentMode string `json:"payment_mode,omitempty" validate:"omitempty,oneof=cash upi"`
}
