package handler

import (
	"errors"
	"net/http"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/lending/model"
	"library-backend/internal/domains/lending/service"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// CheckAvailability - GET /api/v1/books/availability?book_name=X
func (h *Handler) CheckAvailability(c *gin.Context) {
	req := model.AvailabilityRequest{BookName: c.Query("book_name")}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, err := h.service.CheckAvailability(c.Request.Context(), req.BookName)
	if err != nil {
		if errors.Is(err, bookmodel.ErrBookNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("CheckAvailability failed", err)
		response.InternalServerError(c, model.MsgUnexpected)
		return
	}

	response.Success(c, http.StatusOK, data)
}

// GetCharges - POST /api/v1/books/charges
// Body: ordered list of {customer_name, book_name}. The response keeps the
// input order and reports per-item failures inline.
func (h *Handler) GetCharges(c *gin.Context) {
	var items []model.ChargeItem
	if err := c.ShouldBindJSON(&items); err != nil {
		response.BadRequest(c, "Data should be present")
		return
	}

	if err := model.ValidateChargesPayload(items); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	results := h.service.ResolveCharges(c.Request.Context(), items)
	response.Success(c, http.StatusOK, results)
}
