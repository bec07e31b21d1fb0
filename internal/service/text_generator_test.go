// internal/service/text_generator_test.go
package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vocario/internal/config"
	"vocario/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeOpenAI は /chat/completions だけを受けるテスト用サーバー
func newFakeOpenAI(t *testing.T, status int, body string, gotPrompt *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && len(req.Messages) > 0 && gotPrompt != nil {
			assert.Equal(t, "gpt-test", req.Model)
			*gotPrompt = req.Messages[0].Content
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func llmConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		Provider:    config.LLMProviderOpenAI,
		APIKey:      "test-key",
		BaseURL:     baseURL + "/v1",
		Model:       "gpt-test",
		MaxTokens:   50,
		Temperature: 0.5,
	}
}

func TestOpenAITextGenerator_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("最初の候補の本文を返す", func(t *testing.T) {
		var prompt string
		srv := newFakeOpenAI(t, http.StatusOK, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": " Hola, Marta. "}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
		}`, &prompt)

		text, err := service.NewOpenAITextGenerator(llmConfig(srv.URL)).Complete(ctx, "say hola")
		require.NoError(t, err)
		assert.Equal(t, " Hola, Marta. ", text)
		assert.Equal(t, "say hola", prompt)
	})

	t.Run("APIエラーはエラーとして返す", func(t *testing.T) {
		srv := newFakeOpenAI(t, http.StatusTooManyRequests,
			`{"error": {"message": "quota exceeded", "type": "insufficient_quota"}}`, nil)

		_, err := service.NewOpenAITextGenerator(llmConfig(srv.URL)).Complete(ctx, "p")
		assert.Error(t, err)
	})

	t.Run("候補が無い応答はエラー", func(t *testing.T) {
		srv := newFakeOpenAI(t, http.StatusOK, `{"id": "chatcmpl-2", "choices": []}`, nil)

		_, err := service.NewOpenAITextGenerator(llmConfig(srv.URL)).Complete(ctx, "p")
		assert.Error(t, err)
	})
}

func TestNewTextGenerator(t *testing.T) {
	gen, err := service.NewTextGenerator(config.LLMConfig{Provider: config.LLMProviderLog})
	require.NoError(t, err)
	text, err := gen.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.NotEmpty(t, text)

	gen, err = service.NewTextGenerator(llmConfig("http://localhost"))
	require.NoError(t, err)
	assert.IsType(t, &service.OpenAITextGenerator{}, gen)

	_, err = service.NewTextGenerator(config.LLMConfig{Provider: "bard"})
	assert.Error(t, err)
}
