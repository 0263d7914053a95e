package service

import (
	"github.com/shopspring/decimal"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/lending/model"
)

// rateSchedule is a flat base charge covering the first daysCovered days of
// a loan plus a per-day overage beyond them.
type rateSchedule struct {
	base          decimal.Decimal
	daysCovered   int
	overagePerDay decimal.Decimal
}

// Fiction has no base charge: every elapsed day is billed, including the
// first.
var rateSchedules = map[bookmodel.Category]rateSchedule{
	bookmodel.CategoryRegular: {
		base:          decimal.NewFromFloat(2.0),
		daysCovered:   2,
		overagePerDay: decimal.NewFromFloat(1.5),
	},
	bookmodel.CategoryFiction: {
		base:          decimal.Zero,
		daysCovered:   0,
		overagePerDay: decimal.NewFromInt(3),
	},
	bookmodel.CategoryNovel: {
		base:          decimal.NewFromFloat(4.5),
		daysCovered:   3,
		overagePerDay: decimal.NewFromFloat(1.5),
	},
}

// computeCharges prices numberOfDays elapsed loan days for a category:
// base + max(0, numberOfDays-daysCovered) * overagePerDay. An unrecognized
// category fails with model.ErrInvalidCategory; there is no default rate.
func computeCharges(category bookmodel.Category, numberOfDays int) (decimal.Decimal, error) {
	schedule, ok := rateSchedules[category]
	if !ok {
		return decimal.Zero, model.ErrInvalidCategory
	}

	overageDays := numberOfDays - schedule.daysCovered
	if overageDays < 0 {
		overageDays = 0
	}

	overage := schedule.overagePerDay.Mul(decimal.NewFromInt(int64(overageDays)))
	return schedule.base.Add(overage), nil
}
