package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/marsnewbie/kiwipure-cleaning/docs"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/handlers"
	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/middleware"
	"github.com/marsnewbie/kiwipure-cleaning/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Estimate *handlers.EstimateHandler
	Quote    *handlers.QuoteHandler
	Contact  *handlers.ContactHandler
	Deposit  *handlers.DepositHandler
}

// Run wires the service from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	app, err := Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(app.Handlers, cfg, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", cfg.Storage.Driver).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts middleware, swagger and the /v1 routes.
func NewRouter(h Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Error().Err(err).Msg("invalid trusted proxies, forwarded headers ignored")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.HTTP.AllowedOrigins)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.Estimate)
	addQuoteRoutes(v1, h.Quote, limiter.Limit())
	addContactRoutes(v1, h.Contact, limiter.Limit())
	addDepositRoutes(v1, h.Deposit)
	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	c.ExposeHeaders = []string{"Content-Disposition"}
	c.MaxAge = 12 * time.Hour
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
