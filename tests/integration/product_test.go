//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	reqdto "catalog-service/internal/handler/dto/request"
	resdto "catalog-service/internal/handler/dto/response"
	"catalog-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type ProductAPITestSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	router *gin.Engine
}

func (s *ProductAPITestSuite) SetupSuite() {
	s.pool, s.router = setupEnvironment(s.T())
}

func (s *ProductAPITestSuite) SetupTest() {
	resetDB(s.T(), s.pool)
}

func TestProductAPISuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(ProductAPITestSuite))
}

func (s *ProductAPITestSuite) createProduct(name string, price int64) resdto.ProductResponse {
	desc := "integration fixture"
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products",
		reqdto.CreateProductRequest{Name: name, Description: &desc, Stock: 100, Price: price})

	var body resdto.ProductResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

func (s *ProductAPITestSuite) TestCreateAndGet() {
	created := s.createProduct("Gaming  Mouse", 2590)
	s.Equal("gaming mouse", created.Name, "name is normalized on write")
	s.Equal(int64(2590), created.FinalPrice)
	s.False(created.HasCouponApplied)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+created.ID.String(), nil)
	var fetched resdto.ProductResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
	s.Equal(created.ID, fetched.ID)
}

func (s *ProductAPITestSuite) TestCreateConflictsOnNormalizedName() {
	s.createProduct("Gaming Mouse", 2590)

	desc := "integration fixture"
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products",
		reqdto.CreateProductRequest{Name: "  gaming   MOUSE ", Description: &desc, Stock: 1, Price: 100})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Product already exists")
}

func (s *ProductAPITestSuite) TestUpdateChangeLog() {
	created := s.createProduct("stable product", 500)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/products/"+created.ID.String(),
		map[string]any{"stock": 42})

	var body resdto.UpdatedProductResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int32(42), body.Product.Stock)
	s.Equal(int64(500), body.Product.Price)

	paths := make([]string, 0, len(body.Changes))
	for _, ch := range body.Changes {
		paths = append(paths, ch.Path)
	}
	s.ElementsMatch([]string{"/stock", "/updated_at"}, paths)
}

func (s *ProductAPITestSuite) TestDeleteRestoreCycle() {
	created := s.createProduct("phoenix", 100)
	url := "/products/" + created.ID.String()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/restore", nil)
	var restored resdto.ProductResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &restored)
	s.Equal("phoenix", restored.Name)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *ProductAPITestSuite) TestRestoreBlockedByNameCollision() {
	original := s.createProduct("contested name", 100)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/products/"+original.ID.String(), nil)
	s.Equal(http.StatusNoContent, rec.Code)

	s.createProduct("contested name", 200)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products/"+original.ID.String()+"/restore", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Product already exists")
}

func (s *ProductAPITestSuite) TestListPaginationAndFilters() {
	for i := range 25 {
		s.createProduct(fmt.Sprintf("product %02d", i), int64(100+i))
	}

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?page=3&limit=10", nil)
	var page3 resdto.ProductListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page3)
	s.Len(page3.Data, 5)
	s.Equal(int64(25), page3.Meta.TotalItems)
	s.Equal(int32(3), page3.Meta.TotalPages)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?page=4&limit=10", nil)
	var beyond resdto.ProductListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &beyond)
	s.Empty(beyond.Data)
	s.Equal(int64(25), beyond.Meta.TotalItems)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?min_price=120&max_price=122", nil)
	var ranged resdto.ProductListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ranged)
	s.Len(ranged.Data, 3)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?search=product+07", nil)
	var searched resdto.ProductListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &searched)
	s.Require().Len(searched.Data, 1)
	s.Equal("product 07", searched.Data[0].Name)
}
