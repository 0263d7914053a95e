package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"library-backend/internal/domains/book/model"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookCacheTTL = 5 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// FindByName is cache-aside: books are immutable after import, so a hit never
// serves stale data.
func (r *postgresRepository) FindByName(ctx context.Context, name string) (*model.Book, error) {
	cacheKey := "book:name:" + name

	if r.cache != nil {
		cached := &model.Book{}
		found, err := r.cache.Get(ctx, cacheKey, cached)
		if err != nil {
			logger.Error("FindByName: cache read failed", err)
		}
		if found {
			return cached, nil
		}
	}

	const query = `
		SELECT id, name, author_name, category
		FROM book
		WHERE name = $1
	`

	book := &model.Book{}
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&book.ID,
		&book.Name,
		&book.AuthorName,
		&book.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book by name: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, book, bookCacheTTL); err != nil {
			// Cache failures never fail the request
			logger.Error("FindByName: cache write failed", err)
		}
	}

	return book, nil
}
