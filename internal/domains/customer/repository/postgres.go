package repository

import (
	"context"
	"errors"
	"fmt"

	"library-backend/internal/domains/customer/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*model.Customer, error) {
	const query = `
		SELECT id, name
		FROM customer
		WHERE name = $1
	`

	customer := &model.Customer{}
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&customer.ID,
		&customer.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by name: %w", err)
	}

	return customer, nil
}
