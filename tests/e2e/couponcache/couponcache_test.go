//go:build e2e

package couponcache_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	resdto "coupon-processor/internal/handler/dto/response"
	"coupon-processor/tests/common/builder"
	"coupon-processor/tests/common/httptest"
	"coupon-processor/tests/e2e"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type CouponCacheE2ETestSuite struct {
	e2e.SharedSuite
	redis *redis.Client
}

func TestCouponCacheE2ESuite(t *testing.T) {
	s := new(CouponCacheE2ETestSuite)
	s.WithCache = true
	suite.Run(t, s)
}

func (s *CouponCacheE2ETestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.redis = redis.NewClient(&redis.Options{Addr: s.Config.Cache.Addr})
}

func (s *CouponCacheE2ETestSuite) TearDownSuite() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
}

// Ids restart after every reset, so cached entries must go too.
func (s *CouponCacheE2ETestSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.Require().NoError(s.redis.FlushAll(context.Background()).Err())
}

func (s *CouponCacheE2ETestSuite) createCoupon() resdto.CouponResponse {
	req := builder.NewCouponBuilder().
		WithExpirationDate(time.Now().Add(48*time.Hour).UTC()).
		BuildCreateRequestBody(s.T())
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/coupon", req)

	var body resdto.CouponResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

func (s *CouponCacheE2ETestSuite) TestReadThroughCache() {
	s.Run("first read fills the cache", func() {
		created := s.createCoupon()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/coupon/"+created.ID, nil)
		s.Equal(http.StatusOK, rec.Code)

		n, err := s.redis.Exists(context.Background(), "coupon:"+created.ID).Result()
		s.Require().NoError(err)
		s.Equal(int64(1), n)
	})

	s.Run("cached entry is served when the row changes underneath", func() {
		created := s.createCoupon()
		httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/coupon/"+created.ID, nil)

		id, err := strconv.ParseInt(created.ID, 10, 64)
		s.Require().NoError(err)
		_, err = s.DB.Exec(context.Background(), "UPDATE coupons SET published = true WHERE id = $1", id)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/coupon/"+created.ID, nil)
		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Published)
	})

	s.Run("delete invalidates the cached entry", func() {
		created := s.createCoupon()
		httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/coupon/"+created.ID, nil)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/coupon/"+created.ID, nil)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/coupon/"+created.ID, nil)
		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("DELETED", body.Status)
	})
}
