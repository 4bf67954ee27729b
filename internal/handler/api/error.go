package api

import (
	"errors"
	"log/slog"
	"net/http"

	"catalog-service/internal/handler/httperr"
	"catalog-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// abortUseCaseError maps use case sentinel errors to the HTTP status codes
// and messages of the public API. Anything unrecognized is a 500.
func abortUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, usecase.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, usecase.ErrNoActiveDiscount):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No active coupon found for product", nil)
	case errors.Is(err, usecase.ErrProductAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Product already exists", nil)
	case errors.Is(err, usecase.ErrCouponAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon code already exists", nil)
	case errors.Is(err, usecase.ErrDiscountConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Product already has an active coupon", nil)
	case errors.Is(err, usecase.ErrCouponNotUsable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon is not valid", nil)
	case errors.Is(err, usecase.ErrPriceBelowMinimum):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Final price must be at least 1 cent", nil)
	case errors.Is(err, usecase.ErrNoFieldsToUpdate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No fields to update", nil)
	case errors.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
	default:
		slog.Error("unexpected use case error", "error", err, "path", c.Request.URL.Path)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
