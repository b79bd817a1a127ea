package models

import "time"

// User roles. Role is authoritative for every permission check.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
)

// User is an identity record, created on first authenticated contact with a
// given phone number. Never hard-deleted.
type User struct {
	ID        string    `json:"id" db:"id"` // UUID string from DB
	Phone     string    `json:"phone" db:"phone"`
	Name      string    `json:"name,omitempty" db:"name"`
	Address   string    `json:"address,omitempty" db:"address"`
	Pincode   string    `json:"pincode,omitempty" db:"pincode"`
	District  string    `json:"district,omitempty" db:"district"`
	State     string    `json:"state,omitempty" db:"state"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateProfileRequest defines the fields a user may change on their own profile.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address  *string `json:"address,omitempty" validate:"omitempty,min=1"`
	Pincode  *string `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
	District *string `json:"district,omitempty" validate:"omitempty,min=1,max=100"`
	State    *string `json:"state,omitempty" validate:"omitempty,min=1,max=100"`
}

// UpdateRoleRequest defines the body for the admin role-change endpoint.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer admin vendor"`
}
