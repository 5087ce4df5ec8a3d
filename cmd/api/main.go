package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Farhad-Valipour/MongoDB-News-API/internal/common/pagination"
	appcfg "github.com/Farhad-Valipour/MongoDB-News-API/internal/config"
	mongoRepo "github.com/Farhad-Valipour/MongoDB-News-API/internal/infra/adapter/persistence/mongodb"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/infra/db"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/observability/logging"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/observability/tracing"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/resilience/circuitbreaker"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/resilience/retry"
	"github.com/Farhad-Valipour/MongoDB-News-API/pkg/ratelimit"

	aggUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/aggregation"
	newsUC "github.com/Farhad-Valipour/MongoDB-News-API/internal/usecase/news"

	hhttp "github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http"
	haggregation "github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/aggregation"
	hauth "github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/auth"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/middleware"
	hnews "github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/news"
	"github.com/Farhad-Valipour/MongoDB-News-API/internal/handler/http/requestid"
)

// @title           MongoDB News API
// @version         1.0
// @description     Read-oriented REST API over a MongoDB news collection:
// @description     cursor-paginated listing, slug lookup, and aggregation reports.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description API key auth. Send "Bearer {key}" or use the api_key query parameter.

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := appcfg.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, cfg.Name, cfg.Version)
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	client := connectDatabase(ctx, logger)
	defer func() {
		if err := db.Close(client); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, limiter := setupServer(client, cfg, logger)
	runServer(ctx, cancel, logger, handler, limiter, cfg)
}

// connectDatabase opens the MongoDB client, retrying with backoff so the API
// survives a database that comes up after it does.
func connectDatabase(ctx context.Context, logger *slog.Logger) *mongo.Client {
	connCfg := db.LoadConnectionConfig()

	var client *mongo.Client
	err := retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
		var openErr error
		client, openErr = db.Open(ctx, connCfg)
		return openErr
	})
	if err != nil {
		logger.Error("failed to connect to MongoDB", slog.Any("error", err))
		os.Exit(1)
	}
	return client
}

// setupServer wires repositories, services, routes, and the middleware
// chain. It returns the root handler plus the rate limiter (nil when
// disabled) so the caller can run its cleanup loop.
func setupServer(client *mongo.Client, cfg appcfg.AppConfig, logger *slog.Logger) (http.Handler, *ratelimit.Limiter) {
	coll := circuitbreaker.NewMongoCollection(client.Database(cfg.Database).Collection(cfg.NewsColl))

	newsSvc := &newsUC.Service{Repo: mongoRepo.NewNewsRepo(coll)}
	aggSvc := &aggUC.Service{Repo: mongoRepo.NewAggregationRepo(coll)}

	verifier := hauth.NewVerifierFromEnv()
	if verifier.Open() {
		logger.Warn("no API keys configured - authentication disabled (development mode)")
	}
	protect := hauth.Middleware(verifier)

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()

	// Public routes
	mux.Handle("GET /health", &hhttp.HealthHandler{Client: client, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Client: client})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	mux.Handle("GET /", &hhttp.InfoHandler{Name: cfg.Name, Version: cfg.Version})

	// Protected API routes. Report routes are exact matches and take
	// precedence over the news slug subtree.
	hnews.Register(mux, newsSvc, paginationCfg, logger, protect)
	haggregation.Register(mux, aggSvc, logger, protect)

	handler, limiter := applyMiddleware(logger, mux)
	return handler, limiter
}

// applyMiddleware wraps the mux with the middleware chain, outermost first:
// CORS → request ID → tracing → rate limit → recover → logging →
// body limit → process time → metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) (http.Handler, *ratelimit.Limiter) {
	corsCfg := middleware.LoadCORSConfig()
	logger.Info("CORS enabled", slog.Any("allowed_origins", corsCfg.AllowedOrigins))

	rlCfg := ratelimit.LoadConfig()
	var limiter *ratelimit.Limiter
	var extractor middleware.IPExtractor = &middleware.RemoteAddrExtractor{}

	proxyCfg, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if proxyCfg.Enabled {
		extractor = middleware.NewTrustedProxyExtractor(*proxyCfg)
		logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxyCfg.AllowedCIDRs)))
	}

	if rlCfg.Enabled {
		limiter = ratelimit.NewLimiter(rlCfg.Limit, rlCfg.Window, ratelimit.SystemClock{})
		logger.Info("rate limiting initialized",
			slog.Int("limit", rlCfg.Limit),
			slog.Duration("window", rlCfg.Window))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.ProcessTime(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	if limiter != nil {
		chain = middleware.RateLimit(limiter, extractor)(chain)
	}
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsCfg)(chain)

	return chain, limiter
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *slog.Logger,
	handler http.Handler,
	limiter *ratelimit.Limiter,
	cfg appcfg.AppConfig,
) {
	if limiter != nil {
		rlCfg := ratelimit.LoadConfig()
		go hhttp.StartRateLimitCleanup(ctx, limiter, rlCfg.CleanupInterval)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr()),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// Stop background goroutines (rate limit cleanup)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
