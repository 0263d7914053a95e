package model

import "time"

// LendingRecord relates one book to one customer. The store guarantees at
// most one open record (IsReturned=false) per book; this API only reads
// records, the write path owns the invariant.
type LendingRecord struct {
	ID           int64     `json:"id" db:"id"`
	BookID       int64     `json:"book_id" db:"book_id"`
	CustomerID   int64     `json:"customer_id" db:"customer_id"`
	LendDate     time.Time `json:"lend_date" db:"lend_date"`
	DaysToReturn int       `json:"days_to_return" db:"days_to_return"`
	IsReturned   bool      `json:"is_returned" db:"is_returned"`
}

// ReturnDueDate is the calendar date the book is due back, time of day
// discarded.
func (r *LendingRecord) ReturnDueDate() time.Time {
	lend := time.Date(r.LendDate.Year(), r.LendDate.Month(), r.LendDate.Day(), 0, 0, 0, 0, r.LendDate.Location())
	return lend.AddDate(0, 0, r.DaysToReturn)
}
