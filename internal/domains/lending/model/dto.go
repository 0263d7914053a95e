package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AvailabilityRequest carries the query parameters of the availability
// endpoint.
type AvailabilityRequest struct {
	BookName string `form:"book_name"`
}

func (r AvailabilityRequest) Validate() error {
	return validation.Validate(r.BookName,
		validation.Required.Error("book name is required"))
}

// AvailabilityResponse is the public wire shape of an availability check.
// NextAvailableDate is a plain calendar date (YYYY-MM-DD).
type AvailabilityResponse struct {
	IsAvailable       bool   `json:"isAvailable"`
	NextAvailableDate string `json:"nextAvailableDate"`
}

// ChargeItem is one entry of the batch charges payload.
type ChargeItem struct {
	CustomerName string `json:"customer_name"`
	BookName     string `json:"book_name"`
}

// Validate enforces field presence with the exact messages the batch
// contract promises per item.
func (i ChargeItem) Validate() error {
	if err := validation.Validate(i.CustomerName,
		validation.Required.Error("customer name should be present")); err != nil {
		return err
	}

	return validation.Validate(i.BookName,
		validation.Required.Error("book name should be present"))
}

// ValidateChargesPayload rejects an absent or empty batch. Per-item problems
// are not checked here; they stay item-local.
func ValidateChargesPayload(items []ChargeItem) error {
	return validation.Validate(items,
		validation.Required.Error("Data should be present"))
}

// ChargeResult is the per-item outcome of a batch charges call: either
// Charges or Message is set, never both.
type ChargeResult struct {
	CustomerName string   `json:"customer_name"`
	BookName     string   `json:"book_name"`
	Charges      *float64 `json:"charges,omitempty"`
	Message      string   `json:"message,omitempty"`
}
