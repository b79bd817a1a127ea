package models

import "time"

// Units of measure for a category's rate band.
const (
	UnitPiece = "unit"
	UnitKg    = "kg"
)

// Category is a pickup-able scrap item type.
type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Unit      string    `json:"unit" db:"unit"`
	MinRate   float64   `json:"min_rate" db:"min_rate"`
	MaxRate   float64   `json:"max_rate" db:"max_rate"`
	Icon      string    `json:"icon" db:"icon"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateCategoryRequest defines the body for the admin create endpoint.
type CreateCategoryRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	Unit    string  `json:"unit" validate:"required,oneof=unit kg"`
	MinRate float64 `json:"min_rate" validate:"gte=0"`
	MaxRate float64 `json:"max_rate" validate:"gtefield=MinRate"`
	Icon    string  `json:"icon,omitempty" validate:"omitempty,max=100"`
}

// UpdateCategoryRequest defines the body for the admin update endpoint.
type UpdateCategoryRequest struct {
	Name    *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Unit    *string  `json:"unit,omitempty" validate:"omitempty,oneof=unit kg"`
	MinRate *float64 `json:"min_rate,omitempty" validate:"omitempty,gte=0"`
	MaxRate *float64 `json:"max_rate,omitempty" validate:"omitempty,gte=0"`
	Icon    *string  `json:"icon,omitempty" validate:"omitempty,max=100"`
}
