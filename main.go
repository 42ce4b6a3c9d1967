package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/venoxy/portfolio-backend/api"
	"github.com/venoxy/portfolio-backend/config"
	"github.com/venoxy/portfolio-backend/database"
	"github.com/venoxy/portfolio-backend/models"
	"github.com/venoxy/portfolio-backend/portfolio"
	"github.com/venoxy/portfolio-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "portfolio"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "require"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)
	if err := currentDB.Migrate(); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	// If generating models, run generation and exit
	if getEnv("GENERATE_MODELS", "") == "true" {
		fmt.Println("Generating models and query helpers...")
		models.GenerateModels(db)
		return
	}

	ctx := context.Background()
	cfg := config.New()

	// The store always yields a usable dataset: Load falls back to the
	// bundled seed data when the remote store is empty or unreachable.
	store := portfolio.NewStore(currentDB.ProjectRepo())
	store.Load(ctx)

	collab := buildCollaborators(ctx, cfg, store)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(store, collab)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// buildCollaborators wires the optional external services. A missing
// configuration disables the related endpoints instead of failing startup.
func buildCollaborators(ctx context.Context, cfg map[string]string, store *portfolio.Store) api.Collaborators {
	var collab api.Collaborators

	assistant, err := services.NewAssistant(ctx, cfg, store.Data())
	if err != nil {
		zlog.Warn().Err(err).Msg("assistant disabled")
	} else {
		collab.Assistant = assistant
	}

	uploader, err := services.NewUploader(ctx, cfg)
	if err != nil {
		zlog.Warn().Err(err).Msg("image hosting disabled")
	} else {
		collab.Uploader = uploader
	}

	mailer, err := services.NewMailer(cfg)
	if err != nil {
		zlog.Warn().Err(err).Msg("contact relay disabled")
	} else {
		collab.Mailer = mailer
	}

	return collab
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
