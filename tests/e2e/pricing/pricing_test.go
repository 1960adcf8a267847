//go:build e2e

package pricing_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/handler/dto/request"
	"rincon-reservas/internal/handler/dto/response"
	"rincon-reservas/internal/handler/middleware"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/tests/common/httptest"
	"rincon-reservas/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	exchangeRateURL = "/api/exchange-rate"
	quoteURL        = "/api/quote"
)

type PricingSuite struct {
	e2e.SharedSuite
}

func TestPricingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PricingSuite))
}

func (s *PricingSuite) TestExchangeRate() {
	s.Run("Normal case: first read hits upstream and later reads come from redis", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, exchangeRateURL, nil)
		var first response.ExchangeRateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Equal(t, pricing.SourceSimulated, first.Source)
		require.Equal(t, s.Config.Pricing.FallbackRate, first.Rate)

		key := s.Config.Redis.KeyPrefix + ":exchange-rate:bcv"
		ttl, err := s.Redis.TTL(context.Background(), key).Result()
		require.NoError(t, err)
		require.Positive(t, ttl)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, exchangeRateURL, nil)
		var second response.ExchangeRateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Equal(t, pricing.SourceCache, second.Source)
		require.Equal(t, first.Rate, second.Rate)
	})
}

func (s *PricingSuite) TestQuote() {
	s.Run("Normal case: quote uses the cached rate", func() {
		t := s.T()
		req := request.QuoteRequest{
			Category:      "general",
			Entradas:      2,
			Exonerados:    1,
			SelectedAreas: []string{"bohio_potrero"},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req)
		var res response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		require.Equal(t, 3, res.TotalPeople)
		require.InDelta(t, 40.0, res.SubtotalUSD, 0.001)
		require.InDelta(t, 40*s.Config.Pricing.FallbackRate*1.16, res.TotalVEF, 0.01)
	})
}

// RateLimitSuite runs against its own app with a tiny bucket.
type RateLimitSuite struct {
	e2e.SharedSuite
}

func TestRateLimitSuite(t *testing.T) {
	t.Parallel()
	s := new(RateLimitSuite)
	s.ConfigOverride = func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.Capacity = 2
		cfg.RateLimit.RefillInterval = time.Hour
	}
	suite.Run(t, s)
}

func (s *RateLimitSuite) TestQuoteIsThrottled() {
	s.Run("Error case: third request in the window gets 429", func() {
		t := s.T()
		req := request.QuoteRequest{Category: "general", Entradas: 1}

		for i := range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req)
			require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
			httptest.AssertHeaders(t, w, map[string]string{
				"X-RateLimit-Limit":     "2",
				"X-RateLimit-Remaining": strconv.Itoa(1 - i),
			})
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req)
		httptest.AssertRateLimited(t, w, middleware.MsgTooManyRequests)
	})

	s.Run("Normal case: GET endpoints are not limited", func() {
		t := s.T()

		for range 5 {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, exchangeRateURL, nil)
			require.Equal(t, http.StatusOK, w.Code)
		}
	})
}
