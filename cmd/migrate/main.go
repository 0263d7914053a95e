// One-off import: loads the legacy lending spreadsheet into postgres.
// Each row holds a customer and a JSON array of the books lent to them;
// is_returned is derived from whether the due date has already passed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strconv"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

const schema = `
	CREATE TABLE IF NOT EXISTS customer (
		id   BIGINT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS book (
		id          BIGINT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		author_name TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT 'regular'
	);

	CREATE TABLE IF NOT EXISTS lending_record (
		id             BIGSERIAL PRIMARY KEY,
		book_id        BIGINT NOT NULL REFERENCES book (id),
		customer_id    BIGINT NOT NULL REFERENCES customer (id),
		lend_date      DATE NOT NULL,
		days_to_return INT NOT NULL CHECK (days_to_return > 0),
		is_returned    BOOLEAN NOT NULL DEFAULT false
	);

	CREATE INDEX IF NOT EXISTS idx_lending_record_open
		ON lending_record (book_id, customer_id)
		WHERE is_returned = false;
`

type importedBook struct {
	BookID       int64  `json:"book_id"`
	BookName     string `json:"book_name"`
	AuthorName   string `json:"author_name"`
	Category     string `json:"category"`
	LendDate     string `json:"lend_date"`
	DaysToReturn int    `json:"days_to_return"`
}

type importedCustomer struct {
	ID   int64
	Name string
}

type importedRecord struct {
	BookID       int64
	CustomerID   int64
	LendDate     time.Time
	DaysToReturn int
	IsReturned   bool
}

func main() {
	filePath := flag.String("file", "fileData.xlsx", "path to the lending spreadsheet")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}
	logger.Init("development")

	if err := run(*filePath); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	log.Info().Msg("Migration completed")
}

func run(filePath string) error {
	customers, books, records, err := readSpreadsheet(filePath)
	if err != nil {
		return err
	}

	log.Info().
		Int("customers", len(customers)).
		Int("books", len(books)).
		Int("lending_records", len(records)).
		Msg("Spreadsheet parsed")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return insertAll(ctx, db, customers, books, records)
}

func readSpreadsheet(filePath string) ([]importedCustomer, []importedBook, []importedRecord, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, nil, fmt.Errorf("spreadsheet has no data rows")
	}

	today := time.Now()

	var customers []importedCustomer
	booksByID := map[int64]importedBook{}
	var records []importedRecord

	// Row layout: customer_id | customer_name | books (JSON array)
	for i, row := range rows[1:] {
		if len(row) < 3 {
			return nil, nil, nil, fmt.Errorf("row %d: expected 3 columns, got %d", i+2, len(row))
		}

		customerID, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("row %d: invalid customer_id %q: %w", i+2, row[0], err)
		}

		customers = append(customers, importedCustomer{ID: customerID, Name: row[1]})

		var lentBooks []importedBook
		if err := json.Unmarshal([]byte(row[2]), &lentBooks); err != nil {
			return nil, nil, nil, fmt.Errorf("row %d: invalid books payload: %w", i+2, err)
		}

		for _, lent := range lentBooks {
			if lent.Category == "" {
				lent.Category = "regular"
			}
			booksByID[lent.BookID] = lent

			lendDate, err := time.Parse(dateLayout, lent.LendDate)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("row %d: invalid lend_date %q: %w", i+2, lent.LendDate, err)
			}

			dueDate := lendDate.AddDate(0, 0, lent.DaysToReturn)
			records = append(records, importedRecord{
				BookID:       lent.BookID,
				CustomerID:   customerID,
				LendDate:     lendDate,
				DaysToReturn: lent.DaysToReturn,
				IsReturned:   dueDate.Before(today),
			})
		}
	}

	books := make([]importedBook, 0, len(booksByID))
	for _, b := range booksByID {
		books = append(books, b)
	}

	return customers, books, records, nil
}

func insertAll(ctx context.Context, db *database.PostgresDB, customers []importedCustomer, books []importedBook, records []importedRecord) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range customers {
		_, err := tx.Exec(ctx,
			`INSERT INTO customer (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer %d: %w", c.ID, err)
		}
	}

	for _, b := range books {
		_, err := tx.Exec(ctx,
			`INSERT INTO book (id, name, author_name, category) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			b.BookID, b.BookName, b.AuthorName, b.Category,
		)
		if err != nil {
			return fmt.Errorf("failed to insert book %d: %w", b.BookID, err)
		}
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"lending_record"},
		[]string{"book_id", "customer_id", "lend_date", "days_to_return", "is_returned"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.BookID, r.CustomerID, r.LendDate, r.DaysToReturn, r.IsReturned}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy lending records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	log.Info().Int64("lending_records", copied).Msg("Bulk insert done")
	return nil
}
