package models

import "time"

// Well-known settings keys.
const (
	SettingPlatformFeePercent = "platform_fee_percent"
)

// Setting is one row of the admin-editable key/value tunables store.
type Setting struct {
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UpsertSettingRequest defines the body for the admin settings endpoint.
type UpsertSettingRequest struct {
	Key   string `json:"key" validate:"required,min=1,max=100"`
	Value string `json:"value" validate:"required,max=500"`
}
