package models

import "time"

// Part is a single inventory record for an electronic component.
type Part struct {
	ID           int64     `json:"id"`
	Category     string    `json:"category"`
	Subcategory  string    `json:"subcategory,omitempty"`
	Description  string    `json:"description"`
	Package      string    `json:"package,omitempty"`
	ContainerID  string    `json:"container_id,omitempty"`
	Quantity     int       `json:"quantity"`
	Notes        string    `json:"notes,omitempty"`
	DatasheetURL string    `json:"datasheet_url,omitempty"`
	PinoutURL    string    `json:"pinout_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PartCreate carries the add-part form. Length limits match the schema the
// web form presents; quantity is clamped, not rejected, so no "gte" tag.
type PartCreate struct {
	Category     string `json:"category" validate:"required,max=24"`
	Subcategory  string `json:"subcategory" validate:"max=64"`
	Description  string `json:"description" validate:"required,max=200"`
	Package      string `json:"package" validate:"max=32"`
	ContainerID  string `json:"container_id" validate:"max=32"`
	Quantity     int    `json:"quantity" validate:"max=1000000"`
	Notes        string `json:"notes" validate:"max=1000"`
	DatasheetURL string `json:"datasheet_url"`
	PinoutURL    string `json:"pinout_url"`
}
