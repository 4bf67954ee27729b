//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"catalog-service/internal/domain/coupon"
	"catalog-service/internal/handler/api"
	resdto "catalog-service/internal/handler/dto/response"
	"catalog-service/internal/usecase"
	"catalog-service/tests/common/builder"
	"catalog-service/tests/common/httptest"
	"catalog-service/tests/common/testutil"
	usecasemock "catalog-service/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockCouponUseCase
	handler  *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockCouponUseCase(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockUC)

	s.router.POST("/coupons", s.handler.Create)
	s.router.GET("/coupons", s.handler.List)
	s.router.GET("/coupons/:code", s.handler.Get)
	s.router.PATCH("/coupons/:code", s.handler.Update)
	s.router.DELETE("/coupons/:code", s.handler.Delete)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/coupons"

	b := builder.NewCouponBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnCoupon := b.BuildDomain()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), reqBody.ToParams()).
			Return(returnCoupon, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("save20", body.Code)
		s.Equal("percent", body.Type)
		s.Equal(int32(0), body.UsesCount)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: code (required)", mutate: testutil.Field("code", nil)},
			{name: "missing field: type (required)", mutate: testutil.Field("type", nil)},
			{name: "missing field: value (required)", mutate: testutil.Field("value", nil)},
			{name: "missing field: valid_from (required)", mutate: testutil.Field("valid_from", nil)},
			{name: "missing field: valid_until (required)", mutate: testutil.Field("valid_until", nil)},
			{name: "wrong type: value as string", mutate: testutil.Field("value", "twenty")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate code",
				usecaseError:   usecase.ErrCouponAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Coupon code already exists",
			},
			{
				name:           "domain validation failure",
				usecaseError:   usecase.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CouponHandlerTestSuite) TestGet() {
	b := builder.NewCouponBuilder()

	s.Run("success: returns 200 OK with the coupon", func() {
		s.mockUC.EXPECT().Get(gomock.Any(), "save20").
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/save20", nil)

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("save20", body.Code)
	})

	s.Run("error: 404 Not Found for unknown or deleted coupon", func() {
		s.mockUC.EXPECT().Get(gomock.Any(), "ghost123").
			Return(nil, usecase.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/ghost123", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 Bad Request for malformed code", func() {
		s.mockUC.EXPECT().Get(gomock.Any(), "ab").
			Return(nil, usecase.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/ab", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *CouponHandlerTestSuite) TestList() {
	url := "/coupons"

	s.Run("success: returns 200 OK with data and meta", func() {
		c := builder.NewCouponBuilder().BuildDomain()
		s.mockUC.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(&usecase.CouponList{
				Items: []*coupon.Coupon{c},
				Meta:  usecase.NewPaginationMeta(1, 10, 1),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.CouponListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Data, 1)
		s.Equal("save20", body.Data[0].Code)
	})

	s.Run("success: forwards is_active to the usecase", func() {
		s.mockUC.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.ListCouponsParams) (*usecase.CouponList, error) {
				s.Require().NotNil(params.IsActive)
				s.True(*params.IsActive)
				return &usecase.CouponList{Meta: usecase.NewPaginationMeta(1, 10, 0)}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?is_active=true", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for a malformed query", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?valid_from=yesterday", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *CouponHandlerTestSuite) TestUpdate() {
	b := builder.NewCouponBuilder()
	url := "/coupons/save20"
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: returns 200 OK with the change log", func() {
		changes := []usecase.FieldChange{usecase.ReplaceOp("/value", b.Value)}
		s.mockUC.EXPECT().Update(gomock.Any(), "save20", reqBody.ToParams()).
			Return(b.BuildDomain(), changes, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)

		var body resdto.UpdatedCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Changes, 1)
		s.Equal("/value", body.Changes[0].Path)
	})

	s.Run("error: 400 Bad Request on empty patch", func() {
		s.mockUC.EXPECT().Update(gomock.Any(), "save20", gomock.Any()).
			Return(nil, nil, usecase.ErrNoFieldsToUpdate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No fields to update")
	})

	s.Run("error: 404 Not Found for unknown code", func() {
		s.mockUC.EXPECT().Update(gomock.Any(), "save20", gomock.Any()).
			Return(nil, nil, usecase.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})
}

func (s *CouponHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockUC.EXPECT().Delete(gomock.Any(), "save20").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/coupons/save20", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for already deleted coupon", func() {
		s.mockUC.EXPECT().Delete(gomock.Any(), "save20").
			Return(usecase.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/coupons/save20", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})
}
