// cmd/seed.go
package main

import (
	"context"
	"fmt"
	"log/slog"

	"vocario/internal/middleware"
	"vocario/internal/model"
	"vocario/internal/repository"
	"vocario/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// seedCards は開発用のサンプルカード (単語, 訳)
var seedCards = [][2]string{
	{"hola", "hello"},
	{"gracias", "thank you"},
	{"perro", "dog"},
	{"gato", "cat"},
	{"biblioteca", "library"},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a sample user, deck and cards for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		migrate, _ := cmd.Flags().GetBool("migrate")
		email, _ := cmd.Flags().GetString("email")
		deckName, _ := cmd.Flags().GetString("deck")

		cfg, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dsn, err := cfg.DatabaseDSN()
		if err != nil {
			return err
		}
		db, err := repository.NewDB(dsn, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("initialize database: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		// 本番のスキーマはストア側で管理する。ローカルの空DBに限って使う。
		if migrate {
			logger.Warn("Running AutoMigrate (local development only)")
			if err := db.AutoMigrate(repository.Models()...); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
		}

		if email == "" {
			email = fmt.Sprintf("seed-%s@example.com", uuid.NewString()[:8])
		}

		ctx := middleware.WithLogger(context.Background(), logger.With(slog.String("command", "seed")))
		userRepo := repository.NewGormUserProfileRepository()
		userService := service.NewUserService(db, userRepo, repository.NewGormLangProfileRepository())
		deckService := service.NewDeckService(db, userRepo, repository.NewGormDeckRepository(),
			repository.NewGormSenseRepository(), repository.NewGormCardRepository())

		user, err := userService.CreateUserProfile(ctx, &model.CreateUserProfileRequest{Email: email})
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if _, err := userService.CreateLangProfile(ctx, user.ID, &model.CreateLangProfileRequest{Lang: "es", Level: "A1"}); err != nil {
			return fmt.Errorf("seed lang profile: %w", err)
		}
		deck, err := deckService.CreateDeck(ctx, user.ID, &model.CreateDeckRequest{Name: deckName})
		if err != nil {
			return fmt.Errorf("seed deck: %w", err)
		}
		for _, c := range seedCards {
			if _, err := deckService.CreateCard(ctx, deck.ID, &model.CreateCardRequest{Word: c[0], Translation: c[1]}); err != nil {
				return fmt.Errorf("seed card %q: %w", c[0], err)
			}
		}

		logger.Info("Seed completed",
			slog.Uint64("user_id", uint64(user.ID)),
			slog.String("email", user.Email),
			slog.Uint64("deck_id", uint64(deck.ID)),
			slog.Int("cards", len(seedCards)),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("migrate", false, "create tables with AutoMigrate before seeding")
	seedCmd.Flags().String("email", "", "email of the seeded user (random when empty)")
	seedCmd.Flags().String("deck", "Spanish basics", "name of the seeded deck")
	rootCmd.AddCommand(seedCmd)
}
