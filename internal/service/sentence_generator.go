// internal/service/sentence_generator.go
package service

import (
	"context"
	"fmt"
	"strings"

	"vocario/internal/middleware"
	"vocario/internal/model"
)

// SentenceRequest は例文生成の入力。Previous は新しい順の過去の例文。
type SentenceRequest struct {
	Word        string
	Translation string
	Language    string
	Previous    []string
}

//go:generate mockery --name SentenceGenerator --output ./mocks --outpkg mocks --case=underscore
type SentenceGenerator interface {
	Generate(ctx context.Context, req SentenceRequest) (string, error)
}

type sentenceGenerator struct {
	client TextGenerator
}

func NewSentenceGenerator(client TextGenerator) SentenceGenerator {
	return &sentenceGenerator{client: client}
}

// BuildSentencePrompt は入力だけから決まるプロンプトを組み立てる。
func BuildSentencePrompt(req SentenceRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target language: %s.\n", req.Language)
	fmt.Fprintf(&b, "Word: %q (meaning: %q).\n", req.Word, req.Translation)

	if len(req.Previous) > 0 {
		b.WriteString("\nThese example sentences have already been generated for this word:\n")
		for i, sentence := range req.Previous {
			fmt.Fprintf(&b, "%d. %s\n", i+1, sentence)
		}
		fmt.Fprintf(&b, "\nWrite one new example sentence in %s that uses the word and differs in structure and meaning from all of the sentences above.\n", req.Language)
	} else {
		fmt.Fprintf(&b, "\nWrite one simple, natural example sentence in %s that uses the word.\n", req.Language)
	}

	b.WriteString("Respond with only the sentence, with no explanation, translation or quotation marks.")
	return b.String()
}

// Generate はプロンプトを1回だけ送る。失敗時は model.ErrGeneration を返し、再試行も代替文も無い。
func (g *sentenceGenerator) Generate(ctx context.Context, req SentenceRequest) (string, error) {
	logger := middleware.GetLogger(ctx)

	if len(req.Previous) > model.DefaultSentenceHistoryLimit {
		req.Previous = req.Previous[:model.DefaultSentenceHistoryLimit]
	}
	prompt := BuildSentencePrompt(req)

	text, err := g.client.Complete(ctx, prompt)
	if err != nil {
		logger.Error("Text generation failed", "error", err, "word", req.Word, "language", req.Language)
		return "", fmt.Errorf("%w: %v", model.ErrGeneration, err)
	}

	sentence := strings.TrimSpace(text)
	if sentence == "" {
		logger.Error("Text generation returned an empty sentence", "word", req.Word, "language", req.Language)
		return "", fmt.Errorf("%w: empty response", model.ErrGeneration)
	}
	return sentence, nil
}
