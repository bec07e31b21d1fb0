// cmd/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"vocario/internal/handlers"
	"vocario/internal/repository"
	"vocario/internal/router"
	"vocario/internal/service"

	"github.com/spf13/cobra"
)

// shutdownTimeout はグレースフルシャットダウンの待ち時間
const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		logger.Info("Application starting...", slog.String("llm_provider", cfg.LLM.Provider))

		dsn, err := cfg.DatabaseDSN()
		if err != nil {
			return err
		}
		db, err := repository.NewDB(dsn, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("initialize database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get sql.DB: %w", err)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Error closing database connection", slog.Any("error", err))
			} else {
				logger.Info("Database connection closed.")
			}
		}()

		textGenerator, err := service.NewTextGenerator(cfg.LLM)
		if err != nil {
			return err
		}

		// Dependency Injection
		userRepo := repository.NewGormUserProfileRepository()
		langRepo := repository.NewGormLangProfileRepository()
		deckRepo := repository.NewGormDeckRepository()
		senseRepo := repository.NewGormSenseRepository()
		cardRepo := repository.NewGormCardRepository()
		historyRepo := repository.NewGormSentenceHistoryRepository()

		userService := service.NewUserService(db, userRepo, langRepo)
		deckService := service.NewDeckService(db, userRepo, deckRepo, senseRepo, cardRepo)
		sentenceService := service.NewSentenceService(db, userRepo, senseRepo, historyRepo,
			service.NewSentenceGenerator(textGenerator), cfg.App)

		r := router.NewRouter(cfg, router.Handlers{
			User:     handlers.NewUserHandler(userService, logger),
			Deck:     handlers.NewDeckHandler(deckService, logger),
			Sentence: handlers.NewSentenceHandler(sentenceService, logger),
			Health:   handlers.NewHealthHandler(sqlDB, logger),
		}, logger)

		server := &http.Server{
			Addr:         cfg.Server.Port,
			Handler:      r,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("Server listening", slog.String("port", cfg.Server.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.Server.Port, err)
			}
		case <-ctx.Done():
		}

		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", slog.Any("error", err))
			return err
		}
		logger.Info("Server exiting")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
