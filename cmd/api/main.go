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
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mkarpushin/recipe-api/internal/handlers"
	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/middlewares"
	"github.com/mkarpushin/recipe-api/internal/migrations"
	"github.com/mkarpushin/recipe-api/internal/repositories"
	"github.com/mkarpushin/recipe-api/internal/services"
	"github.com/mkarpushin/recipe-api/internal/token"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mkarpushin/recipe-api/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title recipe-api
// @version 1.0.0
// @description Backend for per-user recipe data with token authentication
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		tokenCacheExpSecond,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		tokenCacheExpSecond,
		kafkaBrokers, kafkaTopic,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, and logging configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	tokenCacheExpSecond int,
	kafkaBrokers, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "recipes")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Auth token cache config
	if tokenCacheExpSecond, err = strconv.Atoi(getEnv("TOKEN_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "recipe-api-events")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It applies migrations, sets up routes, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	tokenCacheExpSecond int,
	kafkaBrokers, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("goose dialect error:", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		log.Fatal("migration error:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize token issuer
	issuer := token.New()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	tokenReadRepo := repositories.NewTokenReadRepository(db)
	tokenWriteRepo := repositories.NewTokenWriteRepository(db)
	tokenCacheRepo := repositories.NewTokenCacheRepository(rdb, time.Duration(tokenCacheExpSecond)*time.Second)
	tagReadRepo := repositories.NewTagReadRepository(db)
	tagWriteRepo := repositories.NewTagWriteRepository(db)
	ingredientReadRepo := repositories.NewIngredientReadRepository(db)
	ingredientWriteRepo := repositories.NewIngredientWriteRepository(db)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo,
		tokenReadRepo, tokenWriteRepo, tokenCacheRepo,
		issuer, kafkaWriter,
	)
	profileService := services.NewProfileService(userWriteRepo)
	tagService := services.NewTagService(tagReadRepo, tagWriteRepo)
	ingredientService := services.NewIngredientService(ingredientReadRepo, ingredientWriteRepo)
	recipeService := services.NewRecipeService(
		recipeReadRepo, recipeWriteRepo,
		tagReadRepo, ingredientReadRepo,
		kafkaWriter,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	authMiddleware := middlewares.AuthMiddleware(issuer, authService)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.With(txMiddleware).Post("/user/create", handlers.NewCreateUserHandler(authService))
		r.With(txMiddleware).Post("/user/token", handlers.NewCreateTokenHandler(authService))
		// Account creation happens only through signup; 405 regardless
		// of authentication state.
		r.Post("/user/me", handlers.NewMeNotAllowedHandler())

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/user/me", handlers.NewGetMeHandler())
			r.With(txMiddleware).Patch("/user/me", handlers.NewUpdateMeHandler(profileService))

			r.Get("/recipe/tags", handlers.NewListTagsHandler(tagService))
			r.With(txMiddleware).Post("/recipe/tags", handlers.NewCreateTagHandler(tagService))

			r.Get("/recipe/ingredients", handlers.NewListIngredientsHandler(ingredientService))
			r.With(txMiddleware).Post("/recipe/ingredients", handlers.NewCreateIngredientHandler(ingredientService))

			r.Get("/recipe/recipes", handlers.NewListRecipesHandler(recipeService))
			r.With(txMiddleware).Post("/recipe/recipes", handlers.NewCreateRecipeHandler(recipeService))
			r.Get("/recipe/recipes/{recipeID}", handlers.NewGetRecipeHandler(recipeService))
			r.With(txMiddleware).Patch("/recipe/recipes/{recipeID}", handlers.NewUpdateRecipeHandler(recipeService))
			r.With(txMiddleware).Delete("/recipe/recipes/{recipeID}", handlers.NewDeleteRecipeHandler(recipeService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
