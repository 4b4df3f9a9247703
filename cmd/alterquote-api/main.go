// README: Entry point; loads config, wires services and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"alterquote/internal/config"
	httptransport "alterquote/internal/http"
	"alterquote/internal/infra"
	"alterquote/internal/logger"
	"alterquote/internal/maps"
	"alterquote/internal/modules/pricing"
	"alterquote/internal/modules/quote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		logger.Fatal("init logger", zap.Error(err))
	}
	log := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pricingSvc := pricing.NewDefaultService()
	quoteSvc := quote.NewService(quote.NewSampleSource(), quote.NewNopSink(log), pricingSvc, cfg.Review.DistanceOneWay)

	distance := newDistanceSource(ctx, cfg, log)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Pricing:  pricingSvc,
		Quote:    quoteSvc,
		Distance: distance,
		Log:      log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("http server", zap.Error(err))
	}
}

// newDistanceSource falls back to coordinate-only distances without a Maps key; Redis is optional on top.
func newDistanceSource(ctx context.Context, cfg config.Config, log *zap.Logger) maps.DistanceSource {
	if cfg.Distance.MapsAPIKey == "" {
		log.Info("maps lookup disabled, accepting lat,lng pairs only")
		return maps.CoordinateDistance{}
	}
	routes, err := maps.NewRouteService(cfg.Distance.MapsAPIKey)
	if err != nil {
		log.Warn("maps lookup disabled, accepting lat,lng pairs only", zap.Error(err))
		return maps.CoordinateDistance{}
	}
	if cfg.Redis.Addr == "" {
		return routes
	}
	rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
	if err != nil {
		log.Warn("distance cache disabled", zap.Error(err))
		return routes
	}
	return maps.NewCachedDistance(routes, rdb, cfg.Distance.CacheTTL, log)
}
