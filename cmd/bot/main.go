package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-trivia-bot/internal/config"
	"github.com/diegoclair/slack-trivia-bot/internal/database"
	"github.com/diegoclair/slack-trivia-bot/internal/domain/service"
	"github.com/diegoclair/slack-trivia-bot/internal/facts"
	"github.com/diegoclair/slack-trivia-bot/internal/handlers"
	"github.com/diegoclair/slack-trivia-bot/internal/logger"
	"github.com/diegoclair/slack-trivia-bot/internal/metrics"
	"github.com/diegoclair/slack-trivia-bot/internal/observability"
	"github.com/diegoclair/slack-trivia-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.Env)
	log := logger.WithComponent("main")

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, "slack-trivia-bot")
	if err != nil {
		log.Fatalf("Failed to initialize Sentry: %v", err)
	}
	defer flushSentry()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Migrations completed successfully")

	dm := database.NewInstance(db)

	slackClient := slack.New(cfg.SlackBotToken)
	factsClient := facts.NewClient(cfg.FactsAPIKey, cfg.FactsAPIURL)

	services := service.NewInstance(dm, slackClient, factsClient, cfg.ScheduleOffsetHours, cfg.TriviaImageURL)

	if err := services.Dispatcher.Start(); err != nil {
		log.Fatalf("Failed to start dispatch scheduler: %v", err)
	}
	defer services.Dispatcher.Stop()

	handler := handlers.New(services.Trivia, cfg.SlackSigningSecret, cfg.AdminUserIDs)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	mux.Handle("/metrics", metrics.Handler())

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
}
