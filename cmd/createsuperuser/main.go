package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mkarpushin/recipe-api/internal/repositories"
	"github.com/mkarpushin/recipe-api/internal/services"
	"github.com/mkarpushin/recipe-api/internal/token"
)

// createsuperuser provisions a staff/superuser account from the
// command line. Signup over HTTP never grants these flags.
func main() {
	configPath, email, password := parseFlags()
	if email == "" || password == "" {
		log.Fatal("both -email and -password are required")
	}

	dsn, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatalf("PostgreSQL connection error: %v", err)
	}
	defer db.Close()

	svc := services.NewAuthService(
		repositories.NewUserReadRepository(db),
		repositories.NewUserWriteRepository(db),
		repositories.NewTokenReadRepository(db),
		repositories.NewTokenWriteRepository(db),
		nil,
		token.New(),
		nil,
	)

	user, err := svc.CreateSuperuser(ctx, email, password)
	if err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}

	fmt.Printf("Superuser %s created (id %s)\n", user.Email, user.UserID)
}

// parseFlags parses command-line flags and returns the config file
// path and the superuser credentials.
func parseFlags() (configPath, email, password string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	e := flag.String("email", "", "Superuser email address")
	p := flag.String("password", "", "Superuser password")
	flag.Parse()
	return *c, *e, *p
}

// parseConfig loads environment variables from a file and returns the
// PostgreSQL DSN.
func parseConfig(path string) (string, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgHost := getEnv("POSTGRES_HOST", "localhost")
	pgUser := getEnv("POSTGRES_USER", "user")
	pgPassword := getEnv("POSTGRES_PASSWORD", "password")
	pgDB := getEnv("POSTGRES_DB", "recipes")
	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB), nil
}
