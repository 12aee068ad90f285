package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/nutritrack/internal/api"
	"github.com/terraincognita07/nutritrack/internal/cli"
	"github.com/terraincognita07/nutritrack/internal/config"
	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/llm"
	"github.com/terraincognita07/nutritrack/internal/prefs"
	"github.com/terraincognita07/nutritrack/internal/provider/fruityvice"
	"github.com/terraincognita07/nutritrack/internal/seed"
	"github.com/terraincognita07/nutritrack/internal/services"
	"github.com/terraincognita07/nutritrack/internal/stream"
	"gorm.io/gorm"
)

func main() {
	resetUserID := flag.String("reset-password", "", "reset the password for the given participant id and exit")
	flag.Parse()

	cfg := config.Load()

	if *resetUserID != "" {
		if err := cli.RunResetPasswordCommand(cfg.DBPath, *resetUserID); err != nil {
			log.Fatalf("password reset failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	// The seed runs before anything subscribes or serves; it is a no-op
	// against a non-empty store.
	if err := runSeed(database, cfg.DatasetPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	broker := stream.NewBroker()
	repositories := db.NewRepositories(database, broker)
	preferenceStore := prefs.NewStore(database)
	cache := prefs.StartCache(preferenceStore, repositories, broker)
	defer cache.Stop()

	authService := services.NewAuthService(repositories.Users, preferenceStore)
	questionnaireService := services.NewQuestionnaireService(
		repositories.Users,
		repositories.FoodPreferences,
		repositories.TimePreferences,
		repositories.Catalogs,
	)
	insightsService := services.NewInsightsService(repositories.Users, repositories.Scores)

	var chatService *services.ChatService
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini init failed: %v", err)
		}
		defer gemini.Close()
		chatService = services.NewChatService(repositories.ChatMessages, repositories.Users, repositories.Catalogs, gemini)
	} else {
		log.Print("GEMINI_API_KEY unset, chat routes disabled")
	}

	fruitClient := &fruityvice.Client{BaseURL: cfg.FruitAPIURL}

	handler := api.NewHandler(
		repositories,
		preferenceStore,
		authService,
		questionnaireService,
		insightsService,
		chatService,
		fruitClient,
		cfg.SecretKey,
		cfg.CookieSecure,
	)

	app := fiber.New(fiber.Config{
		AppName:               "NutriTrack",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("NutriTrack listening on http://0.0.0.0:%s (db: %s)", cfg.Port, cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// runSeed imports the dataset on first launch, preferring an on-disk CSV
// override when one is configured.
func runSeed(database *gorm.DB, datasetPath string) error {
	if datasetPath == "" {
		return seed.RunEmbedded(database)
	}
	file, err := os.Open(datasetPath)
	if err != nil {
		return err
	}
	defer file.Close()
	return seed.Run(database, file)
}
