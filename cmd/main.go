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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/yamdb/internal/handlers"
	"github.com/sbilibin2017/yamdb/internal/jwt"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/mailer"
	"github.com/sbilibin2017/yamdb/internal/middlewares"
	"github.com/sbilibin2017/yamdb/internal/migrations"
	"github.com/sbilibin2017/yamdb/internal/ratelimit"
	"github.com/sbilibin2017/yamdb/internal/repositories"
	"github.com/sbilibin2017/yamdb/internal/services"
	"github.com/sbilibin2017/yamdb/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/yamdb/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	PageSize int

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	PGMigrate      bool

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	AuthRateLimit  int
	AuthRateWindow time.Duration

	KafkaBrokers   []string
	KafkaMailTopic string
	MailFrom       string

	JWTSecretKey string
	JWTExp       time.Duration
}

// @title YaMDb API
// @version 1.0.0
// @description Reviews and ratings of books, films and music
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, and JWT configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	atoi := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	cfg := &config{}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.PageSize = atoi("APP_PAGE_SIZE", "10")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGPort = atoi("POSTGRES_PORT", "5432")
	cfg.PGMaxOpenConns = atoi("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = atoi("POSTGRES_MAX_IDLE_CONNS", "8")
	if err == nil {
		cfg.PGMigrate, err = strconv.ParseBool(getEnv("POSTGRES_MIGRATE", "true"))
	}

	// Redis config; an empty host disables throttling
	cfg.RedisHost, _ = os.LookupEnv("REDIS_HOST")
	cfg.RedisPort = atoi("REDIS_PORT", "6379")
	cfg.RedisDB = atoi("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = atoi("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = atoi("REDIS_MIN_IDLE_CONNS", "2")
	cfg.AuthRateLimit = atoi("AUTH_RATE_LIMIT", "20")
	cfg.AuthRateWindow = time.Duration(atoi("AUTH_RATE_WINDOW_SECOND", "60")) * time.Second

	// Kafka config; no brokers means mail is only logged
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaMailTopic = getEnv("KAFKA_MAIL_TOPIC", "mail.outgoing")
	cfg.MailFrom = getEnv("MAIL_FROM", "YaMDb")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = time.Duration(atoi("JWT_EXP_SECOND", "86400")) * time.Second

	if err != nil {
		return nil, err
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("APP_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.PGMigrate {
		if err := migrations.Run(db.DB); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		logger.Log.Info("Database schema is up to date")
	}

	// Connect to Redis
	var limiter *ratelimit.Limiter
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		if limiter, err = ratelimit.New(rdb, "yamdb:auth", cfg.AuthRateLimit, cfg.AuthRateWindow); err != nil {
			return err
		}
	} else {
		logger.Log.Warn("REDIS_HOST is empty, auth endpoints are not throttled")
	}

	// Mail transport
	var mail services.Mailer = mailer.LogMailer{}
	if len(cfg.KafkaBrokers) > 0 {
		km := mailer.NewKafkaMailer(&kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaMailTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			Async:                  true,
			BatchTimeout:           10 * time.Millisecond,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Log.Errorw("failed to deliver mail", "messages", len(messages), "error", err)
				}
			},
		}, cfg.MailFrom)
		defer km.Close()
		mail = km
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, confirmation mail is only logged")
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := newRouter(db, reg, tokens, limiter, mail, cfg.PageSize)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
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

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the API router.
// A nil limiter leaves the auth endpoints unthrottled.
func newRouter(
	db *sqlx.DB,
	reg *prometheus.Registry,
	tokens *jwt.JWT,
	limiter *ratelimit.Limiter,
	mail services.Mailer,
	pageSize int,
) chi.Router {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)
	categoryRepo := repositories.NewCategoryRepository(db, middlewares.GetTxFromContext)
	genreRepo := repositories.NewGenreRepository(db, middlewares.GetTxFromContext)
	titleRepo := repositories.NewTitleRepository(db, middlewares.GetTxFromContext)
	reviewRepo := repositories.NewReviewRepository(db, middlewares.GetTxFromContext)
	commentRepo := repositories.NewCommentRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	v := validation.New()
	authService := services.NewAuthService(userRepo, mail, tokens, v, services.WithAfterCommit(middlewares.OnCommit))
	userService := services.NewUserService(userRepo, v)
	categoryService := services.NewCategoryService(categoryRepo, v)
	genreService := services.NewGenreService(genreRepo, v)
	titleService := services.NewTitleService(titleRepo, categoryRepo, genreRepo, reviewRepo, v)
	reviewService := services.NewReviewService(titleRepo, reviewRepo, v)
	commentService := services.NewCommentService(reviewRepo, commentRepo, v)

	metrics := middlewares.NewMetrics(reg)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Use(middlewares.AuthMiddleware(tokens, userRepo))

		r.Route("/auth", func(r chi.Router) {
			if limiter != nil {
				r.Use(ratelimit.Middleware(limiter))
			}
			r.Post("/signup/", handlers.NewSignupHandler(authService))
			r.Post("/token/", handlers.NewTokenHandler(authService))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", handlers.NewListUsersHandler(userService, pageSize))
			r.Post("/", handlers.NewCreateUserHandler(userService))
			r.Get("/me/", handlers.NewMeHandler(userService))
			r.Patch("/me/", handlers.NewUpdateMeHandler(userService))
			r.Get("/{username}/", handlers.NewGetUserHandler(userService))
			r.Patch("/{username}/", handlers.NewUpdateUserHandler(userService))
			r.Delete("/{username}/", handlers.NewDeleteUserHandler(userService))
		})

		for prefix, svc := range map[string]*services.TaxonService{
			"/categories": categoryService,
			"/genres":     genreService,
		} {
			r.Route(prefix, func(r chi.Router) {
				r.Get("/", handlers.NewListTaxonsHandler(svc, pageSize))
				r.Post("/", handlers.NewCreateTaxonHandler(svc))
				r.Delete("/{slug}/", handlers.NewDeleteTaxonHandler(svc))
			})
		}

		r.Route("/titles", func(r chi.Router) {
			r.Get("/", handlers.NewListTitlesHandler(titleService, pageSize))
			r.Post("/", handlers.NewCreateTitleHandler(titleService))
			r.Get("/{title_id}/", handlers.NewGetTitleHandler(titleService))
			r.Patch("/{title_id}/", handlers.NewUpdateTitleHandler(titleService))
			r.Delete("/{title_id}/", handlers.NewDeleteTitleHandler(titleService))

			r.Route("/{title_id}/reviews", func(r chi.Router) {
				r.Get("/", handlers.NewListReviewsHandler(reviewService))
				r.Post("/", handlers.NewCreateReviewHandler(reviewService))
				r.Get("/{review_id}/", handlers.NewGetReviewHandler(reviewService))
				r.Patch("/{review_id}/", handlers.NewUpdateReviewHandler(reviewService))
				r.Delete("/{review_id}/", handlers.NewDeleteReviewHandler(reviewService))

				r.Route("/{review_id}/comments", func(r chi.Router) {
					r.Get("/", handlers.NewListCommentsHandler(commentService))
					r.Post("/", handlers.NewCreateCommentHandler(commentService))
					r.Get("/{comment_id}/", handlers.NewGetCommentHandler(commentService))
					r.Patch("/{comment_id}/", handlers.NewUpdateCommentHandler(commentService))
					r.Delete("/{comment_id}/", handlers.NewDeleteCommentHandler(commentService))
				})
			})
		})
	})

	return r
}
