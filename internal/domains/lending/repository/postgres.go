package repository

import (
	"context"
	"errors"
	"fmt"

	"library-backend/internal/domains/lending/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// Both lookups order by lend_date, id and take the first row. The store
// should never hold more than one open record per book; if that invariant is
// ever violated the earliest record wins instead of an arbitrary one.

func (r *postgresRepository) FindOpenByBook(ctx context.Context, bookID int64) (*model.LendingRecord, error) {
	const query = `
		SELECT id, book_id, customer_id, lend_date, days_to_return, is_returned
		FROM lending_record
		WHERE book_id = $1 AND is_returned = false
		ORDER BY lend_date ASC, id ASC
		LIMIT 1
	`

	return r.scanRecord(r.pool.QueryRow(ctx, query, bookID))
}

func (r *postgresRepository) FindOpenByBookAndCustomer(ctx context.Context, bookID, customerID int64) (*model.LendingRecord, error) {
	const query = `
		SELECT id, book_id, customer_id, lend_date, days_to_return, is_returned
		FROM lending_record
		WHERE book_id = $1 AND customer_id = $2 AND is_returned = false
		ORDER BY lend_date ASC, id ASC
		LIMIT 1
	`

	return r.scanRecord(r.pool.QueryRow(ctx, query, bookID, customerID))
}

func (r *postgresRepository) scanRecord(row pgx.Row) (*model.LendingRecord, error) {
	record := &model.LendingRecord{}
	err := row.Scan(
		&record.ID,
		&record.BookID,
		&record.CustomerID,
		&record.LendDate,
		&record.DaysToReturn,
		&record.IsReturned,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find lending record: %w", err)
	}

	return record, nil
}
