// cmd/main.go
package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"vocario/internal/config"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// configDir は --config で指定される config.yaml のディレクトリ
var configDir string

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "Vocabulary flashcard backend with generated example sentences",
	Version:       config.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// loadConfig は設定を読み込み、ロガーを初期化してデフォルトに設定する
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configDir, "../configs")
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のハンドラを使う
func newLogger(level string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}
