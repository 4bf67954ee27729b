//go:build integration

package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	reqdto "catalog-service/internal/handler/dto/request"
	resdto "catalog-service/internal/handler/dto/response"
	"catalog-service/tests/common/dbtest"
	"catalog-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type DiscountAPITestSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	router *gin.Engine
}

func (s *DiscountAPITestSuite) SetupSuite() {
	s.pool, s.router = setupEnvironment(s.T())
}

func (s *DiscountAPITestSuite) SetupTest() {
	resetDB(s.T(), s.pool)
}

func TestDiscountAPISuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(DiscountAPITestSuite))
}

func (s *DiscountAPITestSuite) seedProduct(name string, price int64) uuid.UUID {
	return dbtest.CreateTestProduct(s.T(), s.pool, name, price)
}

func (s *DiscountAPITestSuite) seedCoupon(code string, value int64) {
	now := time.Now()
	dbtest.CreateTestCoupon(s.T(), s.pool, code, "percent", value, now.Add(-time.Hour), now.Add(24*time.Hour))
}

func (s *DiscountAPITestSuite) usesCount(code string) int32 {
	var uses int32
	err := s.pool.QueryRow(context.Background(),
		"SELECT uses_count FROM coupons WHERE code = $1", code).Scan(&uses)
	s.Require().NoError(err)
	return uses
}

func (s *DiscountAPITestSuite) activeApplications(productID uuid.UUID) int {
	var n int
	err := s.pool.QueryRow(context.Background(),
		"SELECT count(*) FROM product_coupon_applications WHERE product_id = $1 AND removed_at IS NULL",
		productID).Scan(&n)
	s.Require().NoError(err)
	return n
}

func (s *DiscountAPITestSuite) TestApplyCouponRoundTrip() {
	productID := s.seedProduct("gaming mouse", 2590)
	s.seedCoupon("save20", 20)

	url := "/products/" + productID.String() + "/discount"

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/coupon",
		reqdto.ApplyCouponRequest{Code: "SAVE20"})

	var body resdto.ProductResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(2590), body.Price)
	s.Equal(int64(2072), body.FinalPrice)
	s.True(body.HasCouponApplied)
	s.Require().NotNil(body.Discount)
	s.Equal("save20", body.Discount.Code)

	s.Equal(int32(1), s.usesCount("save20"))
	s.Equal(1, s.activeApplications(productID))

	// A second coupon must be rejected while the first is active.
	s.seedCoupon("extra10", 10)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/coupon",
		reqdto.ApplyCouponRequest{Code: "extra10"})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Product already has an active coupon")
	s.Equal(int32(0), s.usesCount("extra10"), "rejected application must not consume a use")

	// Remove, then the second coupon goes through.
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.False(body.HasCouponApplied)
	s.Equal(int64(2590), body.FinalPrice)
	s.Equal(0, s.activeApplications(productID))

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/coupon",
		reqdto.ApplyCouponRequest{Code: "extra10"})
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(2331), body.FinalPrice)
}

func (s *DiscountAPITestSuite) TestApplyExpiredCoupon() {
	productID := s.seedProduct("webcam", 3000)
	now := time.Now()
	dbtest.CreateTestCoupon(s.T(), s.pool, "expired1", "fixed", 500,
		now.Add(-48*time.Hour), now.Add(-24*time.Hour))

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/products/"+productID.String()+"/discount/coupon",
		reqdto.ApplyCouponRequest{Code: "expired1"})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Coupon is not valid")

	s.Equal(int32(0), s.usesCount("expired1"))
	s.Equal(0, s.activeApplications(productID))
}

func (s *DiscountAPITestSuite) TestApplyPercentMintsOneShotCoupon() {
	productID := s.seedProduct("keyboard", 2000)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/products/"+productID.String()+"/discount/percent",
		reqdto.ApplyPercentRequest{Percent: 25})

	var body resdto.ProductResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(1500), body.FinalPrice)
	s.Require().NotNil(body.Discount)

	var oneShot bool
	var maxUses int32
	err := s.pool.QueryRow(context.Background(),
		"SELECT one_shot, max_uses FROM coupons WHERE code = $1", body.Discount.Code).
		Scan(&oneShot, &maxUses)
	s.Require().NoError(err)
	s.True(oneShot)
	s.Equal(int32(1), maxUses)
}

func (s *DiscountAPITestSuite) TestRemoveMismatchedCode() {
	productID := s.seedProduct("monitor", 40000)
	s.seedCoupon("applied1", 10)
	s.seedCoupon("unrelated", 10)

	url := "/products/" + productID.String() + "/discount"

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/coupon",
		reqdto.ApplyCouponRequest{Code: "applied1"})
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	code := "unrelated"
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url,
		reqdto.RemoveDiscountRequest{Code: &code})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active coupon found for product")

	s.Equal(1, s.activeApplications(productID), "mismatched removal must not touch the active row")
}

// Concurrent applications race on the partial unique index; exactly one
// may win.
func (s *DiscountAPITestSuite) TestConcurrentApplications() {
	productID := s.seedProduct("contended product", 10000)

	const workers = 8
	codes := make([]string, workers)
	for i := range codes {
		codes[i] = "race" + string(rune('a'+i)) + "001"
		s.seedCoupon(codes[i], 10)
	}

	var wg sync.WaitGroup
	results := make([]int, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
				"/products/"+productID.String()+"/discount/coupon",
				reqdto.ApplyCouponRequest{Code: codes[i]})
			results[i] = rec.Code
		}()
	}
	wg.Wait()

	wins := 0
	for _, code := range results {
		switch code {
		case http.StatusOK:
			wins++
		case http.StatusConflict:
		default:
			s.Failf("unexpected status", "got %d", code)
		}
	}
	s.Equal(1, wins, "exactly one concurrent application may succeed")
	s.Equal(1, s.activeApplications(productID))

	var totalUses int32
	err := s.pool.QueryRow(context.Background(),
		"SELECT coalesce(sum(uses_count), 0) FROM coupons").Scan(&totalUses)
	s.Require().NoError(err)
	s.Equal(int32(1), totalUses, "losing applications must not consume uses")
}
