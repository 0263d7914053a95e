package repository

import (
	"context"

	"library-backend/internal/domains/book/model"
)

type Repository interface {
	// FindByName returns the book with the given unique name, or
	// model.ErrBookNotFound.
	FindByName(ctx context.Context, name string) (*model.Book, error)
}
