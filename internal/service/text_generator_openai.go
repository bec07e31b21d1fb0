// internal/service/text_generator_openai.go
package service

import (
	"context"
	"errors"
	"fmt"

	"vocario/internal/config"
	"vocario/internal/middleware"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextGenerator は OpenAI の Chat Completions API でテキストを生成する実装です
type OpenAITextGenerator struct {
	client *openai.Client
	cfg    config.LLMConfig
}

// NewOpenAITextGenerator は API キーとベースURLからクライアントを生成します。
// BaseURL を差し替えれば OpenAI 互換のエンドポイントにも向けられる。
func NewOpenAITextGenerator(cfg config.LLMConfig) *OpenAITextGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAITextGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
	}
}

// Complete はプロンプトを1件のユーザーメッセージとして送り、最初の候補の本文を返します。
func (g *OpenAITextGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	logger := middleware.GetLogger(ctx)

	req := openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	logger.Debug("Sending chat completion request", "model", req.Model, "max_tokens", req.MaxTokens)
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			logger.Error("OpenAI API returned an error",
				"status_code", apiErr.HTTPStatusCode,
				"type", apiErr.Type,
				"message", apiErr.Message,
			)
		} else {
			logger.Error("Failed to call OpenAI API", "error", err)
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		logger.Error("OpenAI API returned no choices", "response_id", resp.ID)
		return "", errors.New("chat completion: response has no choices")
	}

	logger.Debug("Chat completion received",
		"response_id", resp.ID,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)
	return resp.Choices[0].Message.Content, nil
}
