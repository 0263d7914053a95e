package service

import (
	"context"
	"errors"
	"time"

	bookmodel "library-backend/internal/domains/book/model"
	bookrepo "library-backend/internal/domains/book/repository"
	customermodel "library-backend/internal/domains/customer/model"
	customerrepo "library-backend/internal/domains/customer/repository"
	"library-backend/internal/domains/lending/model"
	lendingrepo "library-backend/internal/domains/lending/repository"
	"library-backend/pkg/logger"
)

const dateLayout = "2006-01-02"

type service struct {
	books     bookrepo.Repository
	customers customerrepo.Repository
	records   lendingrepo.Repository

	// now is sampled once per request / batch item so all date arithmetic
	// inside one computation sees the same reference time.
	now func() time.Time
}

func NewService(
	books bookrepo.Repository,
	customers customerrepo.Repository,
	records lendingrepo.Repository,
) Service {
	return &service{
		books:     books,
		customers: customers,
		records:   records,
		now:       time.Now,
	}
}

func (s *service) CheckAvailability(ctx context.Context, bookName string) (*model.AvailabilityResponse, error) {
	book, err := s.books.FindByName(ctx, bookName)
	if err != nil {
		return nil, err
	}

	record, err := s.records.FindOpenByBook(ctx, book.ID)
	if err != nil && !errors.Is(err, model.ErrRecordNotFound) {
		return nil, err
	}

	// record stays nil when there is no open lending record: available today
	availability := resolveAvailability(record, s.now())

	return &model.AvailabilityResponse{
		IsAvailable:       availability.IsAvailable,
		NextAvailableDate: availability.NextAvailableDate.Format(dateLayout),
	}, nil
}

func (s *service) ResolveCharges(ctx context.Context, items []model.ChargeItem) []model.ChargeResult {
	results := make([]model.ChargeResult, 0, len(items))
	for _, item := range items {
		results = append(results, s.resolveItem(ctx, item))
	}
	return results
}

// resolveItem turns one (customer, book) pair into an outcome. Failures stay
// local to the item so the caller keeps iterating.
func (s *service) resolveItem(ctx context.Context, item model.ChargeItem) model.ChargeResult {
	result := model.ChargeResult{
		CustomerName: item.CustomerName,
		BookName:     item.BookName,
	}

	if err := item.Validate(); err != nil {
		result.Message = err.Error()
		return result
	}

	customer, err := s.customers.FindByName(ctx, item.CustomerName)
	if err != nil {
		result.Message = itemMessage(err)
		return result
	}

	book, err := s.books.FindByName(ctx, item.BookName)
	if err != nil {
		result.Message = itemMessage(err)
		return result
	}

	record, err := s.records.FindOpenByBookAndCustomer(ctx, book.ID, customer.ID)
	if err != nil {
		result.Message = itemMessage(err)
		return result
	}

	amount, err := computeCharges(book.Category, elapsedDays(record.LendDate, s.now()))
	if err != nil {
		result.Message = itemMessage(err)
		return result
	}

	charges, _ := amount.Float64()
	result.Charges = &charges
	return result
}

// itemMessage maps known domain errors to their contract messages and hides
// everything else behind a generic one.
func itemMessage(err error) string {
	switch {
	case errors.Is(err, customermodel.ErrCustomerNotFound),
		errors.Is(err, bookmodel.ErrBookNotFound),
		errors.Is(err, model.ErrRecordNotFound),
		errors.Is(err, model.ErrInvalidCategory):
		return err.Error()
	default:
		logger.Error("resolveItem: unexpected failure", err)
		return model.MsgUnexpected
	}
}
