// internal/service/text_generator.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"vocario/internal/config"
	"vocario/internal/middleware"
)

// TextGenerator はプロンプトを1回だけ外部のテキスト生成APIに送る
//
//go:generate mockery --name TextGenerator --output ./mocks --outpkg mocks --case=underscore
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// logSentence は LogTextGenerator が返す固定の例文
const logSentence = "[log provider] example sentence"

// --- LogTextGenerator ---
// ローカル開発用。プロンプトをログに出して固定の文を返す。
type LogTextGenerator struct{}

func (g *LogTextGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Generating Text (LogTextGenerator) ---", "prompt", prompt)
	return logSentence, nil
}

// --- NewTextGenerator ファクトリ関数 ---
func NewTextGenerator(cfg config.LLMConfig) (TextGenerator, error) {
	logger := slog.Default()
	switch cfg.Provider {
	case config.LLMProviderOpenAI:
		logger.Info("Initializing OpenAI text generator...", "model", cfg.Model, "base_url", cfg.BaseURL)
		return NewOpenAITextGenerator(cfg), nil
	case config.LLMProviderLog:
		logger.Warn("Initializing Log text generator. Generated sentences are placeholders.")
		return &LogTextGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
