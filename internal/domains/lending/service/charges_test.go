package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/lending/model"
)

func TestComputeCharges(t *testing.T) {
	testCases := []struct {
		category bookmodel.Category
		days     int
		expected string
	}{
		{bookmodel.CategoryRegular, 0, "2"},
		{bookmodel.CategoryRegular, 1, "2"},
		{bookmodel.CategoryRegular, 2, "2"},
		{bookmodel.CategoryRegular, 3, "3.5"},
		{bookmodel.CategoryRegular, 5, "6.5"},
		{bookmodel.CategoryNovel, 0, "4.5"},
		{bookmodel.CategoryNovel, 1, "4.5"},
		{bookmodel.CategoryNovel, 3, "4.5"},
		{bookmodel.CategoryNovel, 4, "6"},
		{bookmodel.CategoryNovel, 5, "7.5"},
		{bookmodel.CategoryFiction, 0, "0"},
		{bookmodel.CategoryFiction, 1, "3"},
		{bookmodel.CategoryFiction, 3, "9"},
		{bookmodel.CategoryFiction, 10, "30"},
	}

	for _, tt := range testCases {
		amount, err := computeCharges(tt.category, tt.days)
		require.NoError(t, err)

		expected := decimal.RequireFromString(tt.expected)
		assert.True(t, amount.Equal(expected),
			"%s for %d days: expected %s, got %s", tt.category, tt.days, expected, amount)
	}
}

func TestComputeChargesUnknownCategory(t *testing.T) {
	for _, days := range []int{0, 1, 5, 100} {
		_, err := computeCharges("comics", days)
		assert.ErrorIs(t, err, model.ErrInvalidCategory)
	}

	_, err := computeCharges("", 3)
	assert.ErrorIs(t, err, model.ErrInvalidCategory)
}

func TestComputeChargesMonotonic(t *testing.T) {
	categories := []bookmodel.Category{
		bookmodel.CategoryRegular,
		bookmodel.CategoryFiction,
		bookmodel.CategoryNovel,
	}

	for _, category := range categories {
		prev := decimal.NewFromInt(-1)
		for days := 0; days <= 60; days++ {
			amount, err := computeCharges(category, days)
			require.NoError(t, err)

			assert.True(t, amount.GreaterThanOrEqual(prev),
				"%s: charge for %d days (%s) dropped below %s", category, days, amount, prev)
			prev = amount
		}
	}
}
