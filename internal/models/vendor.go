package models

import "time"

// Vendor is a collector profile attached to exactly one user.
type Vendor struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Location       string    `json:"location" db:"location"`
	Pincode        string    `json:"pincode" db:"pincode"`
	District       string    `json:"district" db:"district"`
	State          string    `json:"state" db:"state"`
	AadhaarNumber  string    `json:"aadhaar_number,omitempty" db:"aadhaar_number"`
	PanNumber      string    `json:"pan_number,omitempty" db:"pan_number"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	ActivePickups  int       `json:"active_pickups" db:"active_pickups"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Populated by the joined reads; zero-valued elsewhere.
	Name          string  `json:"name,omitempty" db:"-"`
	Phone         string  `json:"phone,omitempty" db:"-"`
	AverageRating float64 `json:"average_rating,omitempty" db:"-"`
}

// OnboardVendorRequest promotes an existing user to vendor and creates the
// profile in one transaction.
type OnboardVendorRequest struct {
	UserID        string `json:"user_id" validate:"required,uuid4"`
	Location      string `json:"location" validate:"required,min=1"`
	Pincode       string `json:"pincode" validate:"required,len=6,numeric"`
	District      string `json:"district" validate:"required,min=1,max=100"`
	State         string `json:"state" validate:"required,min=1,max=100"`
	AadhaarNumber string `json:"aadhaar_number,omitempty" validate:"omitempty,len=12,numeric"`
	PanNumber     string `json:"pan_number,omitempty" validate:"omitempty,len=10,alphanum"`
}

// UpdateVendorLocationRequest carries a vendor's live coordinates, mirrored
// onto their assigned bookings for the customer to see.
type UpdateVendorLocationRequest struct {
	// Zero is a valid coordinate, so only the range validators apply.
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// SetVendorActiveRequest toggles whether a vendor can take new pickups.
type SetVendorActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
