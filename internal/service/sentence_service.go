// internal/service/sentence_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vocario/internal/config"
	"vocario/internal/middleware"
	"vocario/internal/model"
	"vocario/internal/repository"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

//go:generate mockery --name SentenceService --output ./mocks --outpkg mocks --case=underscore
type SentenceService interface {
	GenerateSentence(ctx context.Context, userID, senseID uint, req *model.GenerateSentenceRequest) (*model.GenerateSentenceResponse, error)
	ListSentenceHistory(ctx context.Context, userID, senseID uint, limit int) ([]*model.SentenceHistory, error)
}

type sentenceService struct {
	db          *gorm.DB
	userRepo    repository.UserProfileRepository
	senseRepo   repository.SenseRepository
	historyRepo repository.SentenceHistoryRepository
	generator   SentenceGenerator
	cfg         config.AppConfig
}

func NewSentenceService(
	db *gorm.DB,
	userRepo repository.UserProfileRepository,
	senseRepo repository.SenseRepository,
	historyRepo repository.SentenceHistoryRepository,
	generator SentenceGenerator,
	cfg config.AppConfig,
) SentenceService {
	return &sentenceService{
		db:          db,
		userRepo:    userRepo,
		senseRepo:   senseRepo,
		historyRepo: historyRepo,
		generator:   generator,
		cfg:         cfg,
	}
}

// historyLimit は生成時に参照する履歴件数 (1..5)
func (s *sentenceService) historyLimit() int {
	if s.cfg.SentenceHistoryLimit <= 0 || s.cfg.SentenceHistoryLimit > model.DefaultSentenceHistoryLimit {
		return model.DefaultSentenceHistoryLimit
	}
	return s.cfg.SentenceHistoryLimit
}

// GenerateSentence はユーザーとSenseを確認し、直近の履歴を避けた例文を生成して履歴に追記する。
// どの段階の失敗も再試行せずにそのまま返す。
func (s *sentenceService) GenerateSentence(ctx context.Context, userID, senseID uint, req *model.GenerateSentenceRequest) (*model.GenerateSentenceResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "sense_id", senseID)

	if _, err := s.userRepo.FindByID(ctx, s.db, userID); err != nil {
		return nil, fmt.Errorf("generate sentence: user: %w", err)
	}
	sense, err := s.senseRepo.FindByID(ctx, s.db, senseID)
	if err != nil {
		return nil, fmt.Errorf("generate sentence: sense: %w", err)
	}

	history, err := s.historyRepo.FindLatest(ctx, s.db, userID, senseID, s.historyLimit())
	if err != nil {
		return nil, fmt.Errorf("generate sentence: history: %w", err)
	}

	sentence, err := s.generator.Generate(ctx, SentenceRequest{
		Word:        sense.Word,
		Translation: sense.Translation,
		Language:    strings.TrimSpace(req.Language),
		Previous: lo.Map(history, func(h *model.SentenceHistory, _ int) string {
			return h.Sentence
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("generate sentence: %w", err)
	}

	entry := &model.SentenceHistory{UserID: userID, SenseID: senseID, Sentence: sentence}
	if err := s.historyRepo.Append(ctx, s.db, entry); err != nil {
		if s.cfg.RequirePersistedSentence {
			return nil, fmt.Errorf("generate sentence: persist: %w", persistFailure(err))
		}
		logger.Warn("Generated sentence was not saved to history", "error", err, "sentence", sentence)
	} else {
		logger.Info("Sentence generated", "history_id", entry.ID, "previous_count", len(history))
	}

	return &model.GenerateSentenceResponse{
		UserID:   userID,
		SenseID:  senseID,
		Sentence: sentence,
	}, nil
}

// persistFailure は生成後の保存失敗をストア障害として扱う。
// 入力はすでに検証済みなので、ここでの拒否はクライアントの誤りではない。
func persistFailure(err error) error {
	if errors.Is(err, model.ErrUpstream) {
		return err
	}
	return fmt.Errorf("%w: %v", model.ErrUpstream, err)
}

func (s *sentenceService) ListSentenceHistory(ctx context.Context, userID, senseID uint, limit int) ([]*model.SentenceHistory, error) {
	switch {
	case limit <= 0:
		limit = model.DefaultSentenceHistoryLimit
	case limit > model.MaxSentenceHistoryListLimit:
		limit = model.MaxSentenceHistoryListLimit
	}

	entries, err := s.historyRepo.FindLatest(ctx, s.db, userID, senseID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sentence history: %w", err)
	}
	return entries, nil
}
