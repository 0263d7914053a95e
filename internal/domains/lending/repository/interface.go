package repository

import (
	"context"

	"library-backend/internal/domains/lending/model"
)

type Repository interface {
	// FindOpenByBook returns the open lending record for a book, or
	// model.ErrRecordNotFound.
	FindOpenByBook(ctx context.Context, bookID int64) (*model.LendingRecord, error)

	// FindOpenByBookAndCustomer returns the open lending record for a
	// (book, customer) pair, or model.ErrRecordNotFound.
	FindOpenByBookAndCustomer(ctx context.Context, bookID, customerID int64) (*model.LendingRecord, error)
}
