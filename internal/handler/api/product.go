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

type ProductHandler struct {
	uc usecase.ProductUseCase
}

func NewProductHandler(uc usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// @Summary Create product
// @Description Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Create product request"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	details, err := h.uc.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProductDetails(details))
}

// @Summary List products
// @Description List products with filters and pagination
// @Tags products
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Param search query string false "Substring match on name or description"
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Param has_discount query bool false "Filter by active discount"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var q reqdto.ListProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	list, err := h.uc.List(c.Request.Context(), q.ToParams())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductList(list))
}

// @Summary Get product
// @Description Get a product by ID with its effective price
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	details, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetails(details))
}

// @Summary Update product
// @Description Partially update a product; only provided fields change
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Update product request"
// @Success 200 {object} resdto.UpdatedProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	details, changes, err := h.uc.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UpdatedProductResponse{
		Product: resdto.FromProductDetails(details),
		Changes: changes,
	})
}

// @Summary Delete product
// @Description Soft-delete a product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Restore product
// @Description Restore a soft-deleted product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{id}/restore [post]
func (h *ProductHandler) Restore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	details, err := h.uc.Restore(c.Request.Context(), id)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetails(details))
}
