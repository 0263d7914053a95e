package service

import (
	"math"
	"time"

	"library-backend/internal/domains/lending/model"
)

// Availability is the outcome of the availability computation.
type Availability struct {
	IsAvailable       bool
	NextAvailableDate time.Time
}

// resolveAvailability decides lendability from the single open lending
// record for a book (nil when none exists). A record past its due date but
// not yet marked returned counts as available today.
func resolveAvailability(record *model.LendingRecord, now time.Time) Availability {
	today := truncateToDay(now)

	if record == nil {
		return Availability{IsAvailable: true, NextAvailableDate: today}
	}

	// The record's dates can carry a different location than now (DATE
	// columns scan as UTC). Rebuild the due date in today's location so the
	// strict comparison is between calendar days, not instants.
	due := record.ReturnDueDate()
	due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, today.Location())
	if due.After(today) {
		return Availability{IsAvailable: false, NextAvailableDate: due}
	}

	return Availability{IsAvailable: true, NextAvailableDate: today}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// elapsedDays counts whole calendar days from lendDate to now, never
// negative. Rounding absorbs DST days that are not exactly 24h long.
func elapsedDays(lendDate, now time.Time) int {
	diff := truncateToDay(now).Sub(truncateToDay(lendDate))
	days := int(math.Round(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
