package api

import (
	"net/http"

	reqdto "catalog-service/internal/handler/dto/request"
	resdto "catalog-service/internal/handler/dto/response"
	"catalog-service/internal/handler/httperr"
	"catalog-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	uc usecase.DiscountUseCase
}

func NewDiscountHandler(uc usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

// @Summary Apply coupon
// @Description Apply a coupon to a product
// @Tags discounts
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.ApplyCouponRequest true "Apply coupon request"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /products/{id}/discount/coupon [post]
func (h *DiscountHandler) ApplyCoupon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ApplyCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	details, err := h.uc.ApplyCoupon(c.Request.Context(), id, req.Code)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetails(details))
}

// @Summary Apply percent discount
// @Description Apply a direct percent discount (1-80) backed by a one-shot coupon
// @Tags discounts
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.ApplyPercentRequest true "Apply percent request"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /products/{id}/discount/percent [post]
func (h *DiscountHandler) ApplyPercent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ApplyPercentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	details, err := h.uc.ApplyPercent(c.Request.Context(), id, req.Percent)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetails(details))
}

// @Summary Remove discount
// @Description Remove the product's active coupon; an optional code must match it
// @Tags discounts
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.RemoveDiscountRequest false "Remove discount request"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/discount [delete]
func (h *DiscountHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RemoveDiscountRequest
	// Body is optional on DELETE; ignore bind errors from an empty body.
	_ = c.ShouldBindJSON(&req)
	code := ""
	if req.Code != nil {
		code = *req.Code
	}
	details, err := h.uc.RemoveCoupon(c.Request.Context(), id, code)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetails(details))
}
