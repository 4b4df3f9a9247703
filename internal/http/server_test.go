package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	httptransport "alterquote/internal/http"
	"alterquote/internal/modules/pricing"
	"alterquote/internal/modules/quote"
)

func TestRoutes_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pricingSvc := pricing.NewDefaultService()
	quoteSvc := quote.NewService(quote.NewSampleSource(), quote.NewNopSink(nil), pricingSvc, pricing.DefaultDistance)
	srv := httptransport.NewServer(httptransport.ServerDeps{Pricing: pricingSvc, Quote: quoteSvc})

	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("GET /health = %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotes", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /api/quotes = %d", w.Code)
	}

	w = httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/quotes/2/accept", nil))
	if w.Code != http.StatusOK {
		t.Errorf("POST /api/quotes/2/accept = %d", w.Code)
	}
}

func TestRoutes_OverflowingDistanceIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pricingSvc := pricing.NewDefaultService()
	quoteSvc := quote.NewService(quote.NewSampleSource(), quote.NewNopSink(nil), pricingSvc, pricing.DefaultDistance)
	srv := httptransport.NewServer(httptransport.ServerDeps{Pricing: pricingSvc, Quote: quoteSvc})

	req := httptest.NewRequest(http.MethodPost, "/api/estimates",
		strings.NewReader(`{"clothing_item":"dress","distance_one_way":1e308}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("POST /api/estimates = %d %s", w.Code, w.Body.String())
	}
}
