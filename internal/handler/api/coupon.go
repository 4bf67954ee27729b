package api

import (
	"net/http"

	reqdto "catalog-service/internal/handler/dto/request"
	resdto "catalog-service/internal/handler/dto/response"
	"catalog-service/internal/handler/httperr"
	"catalog-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	uc usecase.CouponUseCase
}

func NewCouponHandler(uc usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{uc: uc}
}

// @Summary Create coupon
// @Description Create a new coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.uc.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoupon(created))
}

// @Summary List coupons
// @Description List coupons with filters and pagination
// @Tags coupons
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Param search query string false "Substring match on code"
// @Param valid_from query string false "Lower bound on validity window"
// @Param valid_until query string false "Upper bound on validity window"
// @Param is_active query bool false "Filter by current usability"
// @Success 200 {object} resdto.CouponListResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var q reqdto.ListCouponsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	list, err := h.uc.List(c.Request.Context(), q.ToParams())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(list))
}

// @Summary Get coupon
// @Description Get a coupon by code
// @Tags coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{code} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	found, err := h.uc.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(found))
}

// @Summary Update coupon
// @Description Partially update a coupon; the code itself is immutable
// @Tags coupons
// @Accept json
// @Produce json
// @Param code path string true "Coupon code"
// @Param request body reqdto.UpdateCouponRequest true "Update coupon request"
// @Success 200 {object} resdto.UpdatedCouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{code} [patch]
func (h *CouponHandler) Update(c *gin.Context) {
	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, changes, err := h.uc.Update(c.Request.Context(), c.Param("code"), req.ToParams())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UpdatedCouponResponse{
		Coupon:  resdto.FromCoupon(updated),
		Changes: changes,
	})
}

// @Summary Delete coupon
// @Description Soft-delete a coupon
// @Tags coupons
// @Param code path string true "Coupon code"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{code} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
