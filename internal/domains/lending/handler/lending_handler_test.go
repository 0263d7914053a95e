package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/lending/model"
)

type stubService struct {
	availability *model.AvailabilityResponse
	err          error
	results      []model.ChargeResult
	gotBookName  string
	gotItems     []model.ChargeItem
}

func (s *stubService) CheckAvailability(_ context.Context, bookName string) (*model.AvailabilityResponse, error) {
	s.gotBookName = bookName
	return s.availability, s.err
}

func (s *stubService) ResolveCharges(_ context.Context, items []model.ChargeItem) []model.ChargeResult {
	s.gotItems = items
	return s.results
}

func setupRouter(stub *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewHandler(stub)
	router.GET("/api/v1/books/availability", h.CheckAvailability)
	router.POST("/api/v1/books/charges", h.GetCharges)

	return router
}

func TestCheckAvailabilityOK(t *testing.T) {
	stub := &stubService{
		availability: &model.AvailabilityResponse{
			IsAvailable:       false,
			NextAvailableDate: "2024-05-11",
		},
	}
	router := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/availability?book_name=BookName", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BookName", stub.gotBookName)
	assert.JSONEq(t, `{
		"success": true,
		"data": {"isAvailable": false, "nextAvailableDate": "2024-05-11"}
	}`, w.Body.String())
}

func TestCheckAvailabilityMissingBookName(t *testing.T) {
	router := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/availability", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "book name is required"}`, w.Body.String())
}

func TestCheckAvailabilityBookNotFound(t *testing.T) {
	router := setupRouter(&stubService{err: bookmodel.ErrBookNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/availability?book_name=NonExistentBook", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Book not found"}`, w.Body.String())
}

func TestGetChargesMissingPayload(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"no body", ""},
		{"null body", "null"},
		{"empty list", "[]"},
		{"not a list", `{"customer_name": "Customer"}`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&stubService{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/books/charges", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"success": false, "message": "Data should be present"}`, w.Body.String())
		})
	}
}

func TestGetChargesOK(t *testing.T) {
	charges := 7.5
	stub := &stubService{
		results: []model.ChargeResult{
			{CustomerName: "Customer", BookName: "Book", Charges: &charges},
			{CustomerName: "Other", BookName: "Missing Book", Message: "Book not found"},
		},
	}
	router := setupRouter(stub)

	body := `[
		{"customer_name": "Customer", "book_name": "Book"},
		{"customer_name": "Other", "book_name": "Missing Book"}
	]`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books/charges", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, stub.gotItems, 2)
	assert.JSONEq(t, `{
		"success": true,
		"data": [
			{"customer_name": "Customer", "book_name": "Book", "charges": 7.5},
			{"customer_name": "Other", "book_name": "Missing Book", "message": "Book not found"}
		]
	}`, w.Body.String())
}
