package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"library-backend/internal/domains/lending/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveAvailabilityNoOpenRecord(t *testing.T) {
	now := time.Date(2024, time.June, 15, 14, 42, 7, 0, time.UTC)

	availability := resolveAvailability(nil, now)

	assert.True(t, availability.IsAvailable)
	assert.Equal(t, date(2024, time.June, 15), availability.NextAvailableDate)
}

func TestResolveAvailabilityLentOut(t *testing.T) {
	record := &model.LendingRecord{
		LendDate:     date(2024, time.April, 21),
		DaysToReturn: 20,
	}

	testCases := []struct {
		now time.Time
	}{
		{date(2024, time.April, 22)},
		{date(2024, time.May, 1)},
		{date(2024, time.May, 10)},
	}

	for _, tt := range testCases {
		availability := resolveAvailability(record, tt.now)

		assert.False(t, availability.IsAvailable, "evaluated on %s", tt.now)
		assert.Equal(t, date(2024, time.May, 11), availability.NextAvailableDate)
	}
}

func TestResolveAvailabilityOverdue(t *testing.T) {
	record := &model.LendingRecord{
		LendDate:     date(2024, time.April, 21),
		DaysToReturn: 20,
	}

	// Due date reached or passed but the record is still open: the book
	// counts as available today.
	testCases := []struct {
		now time.Time
	}{
		{date(2024, time.May, 11)},
		{date(2024, time.May, 12)},
		{date(2024, time.July, 1)},
	}

	for _, tt := range testCases {
		availability := resolveAvailability(record, tt.now)

		assert.True(t, availability.IsAvailable, "evaluated on %s", tt.now)
		assert.Equal(t, truncateToDay(tt.now), availability.NextAvailableDate)
	}
}

func TestResolveAvailabilityDueDateAcrossLocations(t *testing.T) {
	// DATE columns scan as UTC while the clock runs in server-local time.
	// Only the calendar day may decide availability, never the offset
	// between the two locations.
	kolkata := time.FixedZone("IST", int((5*time.Hour + 30*time.Minute).Seconds()))

	record := &model.LendingRecord{
		LendDate:     date(2024, time.April, 21),
		DaysToReturn: 20,
	}

	// On the due date itself the book is available again, even though
	// UTC midnight of 2024-05-11 is still ahead of 09:00 IST as an instant.
	onDueDate := time.Date(2024, time.May, 11, 9, 0, 0, 0, kolkata)
	availability := resolveAvailability(record, onDueDate)

	assert.True(t, availability.IsAvailable)
	assert.Equal(t, time.Date(2024, time.May, 11, 0, 0, 0, 0, kolkata), availability.NextAvailableDate)

	// The day before it is still out, and the reported date is a plain
	// 2024-05-11 regardless of location.
	dayBefore := time.Date(2024, time.May, 10, 23, 0, 0, 0, kolkata)
	availability = resolveAvailability(record, dayBefore)

	assert.False(t, availability.IsAvailable)
	assert.Equal(t, "2024-05-11", availability.NextAvailableDate.Format("2006-01-02"))
}

func TestElapsedDays(t *testing.T) {
	testCases := []struct {
		lendDate time.Time
		now      time.Time
		expected int
	}{
		{date(2024, time.June, 10), date(2024, time.June, 10), 0},
		{date(2024, time.June, 10), date(2024, time.June, 11), 1},
		{date(2024, time.June, 10), date(2024, time.June, 15), 5},
		// time of day is discarded on both sides
		{
			time.Date(2024, time.June, 10, 23, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 15, 1, 0, 0, 0, time.UTC),
			5,
		},
		// lend date in the future never yields negative days
		{date(2024, time.June, 20), date(2024, time.June, 10), 0},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.expected, elapsedDays(tt.lendDate, tt.now))
	}
}
