//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"coupon-processor/internal/domain/coupon"
	"coupon-processor/internal/handler/api"
	resdto "coupon-processor/internal/handler/dto/response"
	"coupon-processor/internal/handler/middleware"
	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/usecase/commands"
	"coupon-processor/internal/usecase/readmodel"
	"coupon-processor/tests/common/builder"
	"coupon-processor/tests/common/httptest"
	commandsmock "coupon-processor/tests/mock/commands"
	queriesmock "coupon-processor/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/coupon", s.handler.Create)
	s.router.GET("/coupon/:id", s.handler.Get)
	s.router.DELETE("/coupon/:id", s.handler.Delete)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

type testCaseCoupon struct {
	name         string
	mutate       builder.BodyMutation
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/coupon"

	reqBuilder := builder.NewCouponBuilder()
	reqBody := reqBuilder.BuildCreateRequestDTO()
	stored := builder.NewCouponBuilder().WithID(10).BuildRM()

	optional := []testCaseCoupon{
		{name: "description omitted", mutate: builder.Without("description"), expectCode: http.StatusCreated},
		{name: "published omitted", mutate: builder.Without("published"), expectCode: http.StatusCreated},
		{name: "discount as JSON number", mutate: builder.Set("discountValue", 0.8), expectCode: http.StatusCreated},
		{name: "description length OK (1000 chars)", mutate: builder.Set("description", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "discount above ten billion", mutate: builder.Set("discountValue", "12345678901.25"), expectCode: http.StatusCreated},
		{name: "discount at storage maximum", mutate: builder.Set("discountValue", strings.Repeat("9", 36)+".99"), expectCode: http.StatusCreated},
	}

	invalid := []testCaseCoupon{
		{name: "missing field: code", mutate: builder.Without("code"), expectCode: http.StatusBadRequest, expectInBody: "code cannot be null"},
		{name: "missing field: discountValue", mutate: builder.Without("discountValue"), expectCode: http.StatusBadRequest, expectInBody: "discountValue cannot be null"},
		{name: "missing field: expirationDate", mutate: builder.Without("expirationDate"), expectCode: http.StatusBadRequest, expectInBody: "expirationDate cannot be null"},
		{name: "description length invalid (1001 chars)", mutate: builder.Set("description", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest, expectInBody: "description must be at most 1000 characters"},
		{name: "expirationDate not a timestamp", mutate: builder.Set("expirationDate", "tomorrow"), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "discountValue not a number", mutate: builder.Set("discountValue", "lots"), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "discountValue beyond storage range", mutate: builder.Set("discountValue", "1"+strings.Repeat("0", 36)), expectCode: http.StatusBadRequest, expectInBody: "discountValue is out of range"},
	}

	s.Run("success: returns 201 Created with Location header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateCouponRequest) (*readmodel.CouponRM, error) {
				s.Equal("ABC123", req.Code)
				s.Equal("0.8", req.DiscountValue.String())
				return stored, nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("10", body.ID)
		s.Equal("ABC123", body.Code)
		s.Equal("0.8", body.DiscountValue.String())
		s.Equal("ACTIVE", body.Status)
		s.False(body.Redeemed)
		httptest.AssertLocation(s.T(), rec, "/coupon/10")
	})

	s.Run("success: optional fields and accepted formats", func() {
		for _, tc := range optional {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil).Times(1)
				requestMap := reqBuilder.BuildCreateRequestBody(s.T(), tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		for _, tc := range invalid {
			s.Run(tc.name, func() {
				requestMap := reqBuilder.BuildCreateRequestBody(s.T(), tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("success: caller supplied id is ignored with unknown fields disallowed", func() {
		binding.EnableDecoderDisallowUnknownFields = true
		defer func() { binding.EnableDecoderDisallowUnknownFields = false }()

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil).Times(1)
		requestMap := reqBuilder.BuildCreateRequestBody(s.T(), builder.Set("id", 99))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("10", body.ID)
		httptest.AssertLocation(s.T(), rec, "/coupon/10")
	})

	s.Run("error: 400 Bad Request on unknown field with unknown fields disallowed", func() {
		binding.EnableDecoderDisallowUnknownFields = true
		defer func() { binding.EnableDecoderDisallowUnknownFields = false }()

		requestMap := reqBuilder.BuildCreateRequestBody(s.T(), builder.Set("discount", 0.8))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"code":`))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request on domain validation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, coupon.ErrInvalidCodeLength).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "code must have exactly 6 characters")
	})

	s.Run("error: 500 Internal Server Error on storage failure", func() {
		dbErr := errs.Mark(errors.New("connection refused"), errs.ErrDatabaseOperationFailed)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CouponHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK", func() {
		rm := builder.NewCouponBuilder().WithID(3).AsDeleted().BuildRM()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3)).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupon/3", nil)

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("3", body.ID)
		s.Equal("DELETED", body.Status)
		s.True(body.ExpirationDate.Equal(rm.ExpirationDate))
		s.Require().NotNil(body.Description)
		s.Equal("Summer sale", *body.Description)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupon/abc", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, coupon.NotFoundError(404)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupon/404", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "coupon not found with id: 404")
	})

	s.Run("error: 500 Internal Server Error on unclassified error", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupon/3", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *CouponHandlerTestSuite) TestDelete() {
	cases := []struct {
		name         string
		err          error
		expectCode   int
		expectInBody string
	}{
		{name: "error: 404 Not Found", err: coupon.NotFoundError(7), expectCode: http.StatusNotFound, expectInBody: "coupon not found with id: 7"},
		{name: "error: 409 Conflict when already deleted", err: coupon.ErrCouponAlreadyDeleted, expectCode: http.StatusConflict, expectInBody: "coupon is already deleted"},
		{
			name:         "error: 500 when a storage failure also carries a not-found mark",
			err:          errs.Mark(errs.Mark(errors.New("driver"), errs.ErrCouponNotFound), errs.ErrDatabaseOperationFailed),
			expectCode:   http.StatusInternalServerError,
			expectInBody: "Internal server error",
		},
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/coupon/7", nil)

		s.Equal(http.StatusNoContent, rec.Code)
		httptest.AssertEmptyBody(s.T(), rec)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/coupon/1.5", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Delete(gomock.Any(), int64(7)).Return(tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/coupon/7", nil)

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}
}
