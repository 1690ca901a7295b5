package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/jwt"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Rate providers selectable with RATES_PROVIDER.
const (
	providerHTTP = "http"
	providerGRPC = "grpc"
)

// config holds application, rate provider, Redis, session and logging settings.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogEncoding string

	RatesProvider string
	RatesAPIURL   string
	RatesAPIKey   string
	RatesTimeout  time.Duration

	GWHost string
	GWPort string

	RedisHost         string // empty keeps sessions in memory
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SessionTTL   time.Duration
	JWTSecretKey string
}

// @title gw-currency-converter API
// @version 1.0.0
// @description Currency converter screen backed by live exchange rates
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration. Variables already set in the environment win.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")

	// Rate provider config
	cfg.RatesProvider = getEnv("RATES_PROVIDER", providerHTTP)
	cfg.RatesAPIURL = getEnv("RATES_API_URL", facades.ExchangeRatesAPIURL)
	cfg.RatesAPIKey = getEnv("RATES_API_KEY", "")
	timeoutSecond, err := getInt("RATES_TIMEOUT_SECOND", "10")
	if err != nil {
		return
	}
	cfg.RatesTimeout = time.Duration(timeoutSecond) * time.Second

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Session config
	ttlSecond, err := getInt("SESSION_TTL_SECOND", "3600")
	if err != nil {
		return
	}
	cfg.SessionTTL = time.Duration(ttlSecond) * time.Second
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")

	return cfg, nil
}

// newRatesFetcher builds the rate fetcher selected by cfg.RatesProvider.
// The returned close function releases the provider connection.
func newRatesFetcher(cfg config) (services.RatesFetcher, func() error, error) {
	switch cfg.RatesProvider {
	case providerHTTP:
		logger.Log.Infow("using HTTP rate provider", "url", cfg.RatesAPIURL)
		fetcher := facades.NewExchangeRatesHTTPFacade(cfg.RatesAPIURL, cfg.RatesAPIKey, cfg.RatesTimeout)
		return fetcher, func() error { return nil }, nil
	case providerGRPC:
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to gRPC exchanger at %s: %w", grpcAddr, err)
		}
		logger.Log.Infow("using gRPC rate provider", "addr", grpcAddr)
		fetcher := facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
		return fetcher, conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown rates provider %q", cfg.RatesProvider)
	}
}

// newSessionStore connects to Redis when configured and falls back to memory.
func newSessionStore(ctx context.Context, cfg config) (services.SessionStore, func() error, error) {
	if cfg.RedisHost == "" {
		logger.Log.Infow("Using in-memory session store", "ttl", cfg.SessionTTL)
		return repositories.NewScreenMemoryRepository(cfg.SessionTTL), func() error { return nil }, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis connection error: %w", err)
	}
	logger.Log.Infow("Using Redis session store", "host", cfg.RedisHost, "port", cfg.RedisPort)

	return repositories.NewScreenRedisRepository(rdb, cfg.SessionTTL), rdb.Close, nil
}

// newRouter wires handlers and middleware.
func newRouter(svc *services.ScreenService, tokens *jwt.JWT, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/currencies", handlers.NewListCurrenciesHandler())
		r.Post("/sessions", handlers.NewOpenSessionHandler(svc, tokens))

		// Session routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			session := middlewares.SessionIDFromContext
			r.Get("/screen", handlers.NewGetScreenHandler(svc, session))
			r.Delete("/screen", handlers.NewCloseScreenHandler(svc, session))
			r.Put("/screen/amount", handlers.NewSetAmountHandler(svc, session))
			r.Put("/screen/base", handlers.NewSetBaseHandler(svc, session))
			r.Put("/screen/target", handlers.NewSetTargetHandler(svc, session))
			r.Post("/screen/refresh", handlers.NewRefreshRatesHandler(svc, session))
			r.Post("/screen/convert", handlers.NewConvertHandler(svc, session))
			r.Post("/screen/theme", handlers.NewToggleThemeHandler(svc, session))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// run initializes the logger, session store, rate provider and HTTP server.
// It handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	fetcher, closeFetcher, err := newRatesFetcher(cfg)
	if err != nil {
		return err
	}
	defer closeFetcher()

	tokens := jwt.New(cfg.JWTSecretKey, cfg.SessionTTL)
	svc := services.NewScreenService(store, fetcher, cfg.RatesTimeout)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(svc, tokens, fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	// Let in-flight rate fetches settle before the store closes.
	svc.Wait()

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
