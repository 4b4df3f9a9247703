// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"alterquote/internal/http/handlers"
	"alterquote/internal/http/middleware"
	"alterquote/internal/maps"
	"alterquote/internal/modules/pricing"
	"alterquote/internal/modules/quote"
)

type ServerDeps struct {
	Pricing  *pricing.Service
	Quote    *quote.Service
	Distance maps.DistanceSource // optional
	Log      *zap.Logger
}

type Server struct {
	pricing  *pricing.Service
	quote    *quote.Service
	distance maps.DistanceSource
	log      *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		pricing:  deps.Pricing,
		quote:    deps.Quote,
		distance: deps.Distance,
		log:      log,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(s.log), middleware.Logging(s.log))

	estimateHandler := handlers.NewEstimateHandler(s.pricing, s.distance)
	r.POST("/api/estimates", estimateHandler.Create)

	quoteHandler := handlers.NewQuoteHandler(s.quote)
	r.GET("/api/quotes", quoteHandler.Review)
	r.POST("/api/quotes", quoteHandler.Submit)
	r.POST("/api/quotes/:id/accept", quoteHandler.Accept)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}
