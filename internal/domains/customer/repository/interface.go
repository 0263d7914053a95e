package repository

import (
	"context"

	"library-backend/internal/domains/customer/model"
)

type Repository interface {
	// FindByName returns the customer with the given unique name, or
	// model.ErrCustomerNotFound.
	FindByName(ctx context.Context, name string) (*model.Customer, error)
}
