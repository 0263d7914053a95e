package service

import (
	"context"

	"library-backend/internal/domains/lending/model"
)

type Service interface {
	// CheckAvailability reports whether the named book can be lent right
	// now and the date it next becomes available.
	CheckAvailability(ctx context.Context, bookName string) (*model.AvailabilityResponse, error)

	// ResolveCharges computes the charges owed for each (customer, book)
	// pair. The result has one entry per input item in input order; a
	// failing item carries its message and never aborts the rest.
	ResolveCharges(ctx context.Context, items []model.ChargeItem) []model.ChargeResult
}
