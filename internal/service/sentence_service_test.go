// internal/service/sentence_service_test.go
package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"vocario/internal/config"
	"vocario/internal/model"
	repomocks "vocario/internal/repository/mocks"
	"vocario/internal/service"
	"vocario/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sentenceDeps struct {
	userRepo    *repomocks.UserProfileRepository
	senseRepo   *repomocks.SenseRepository
	historyRepo *repomocks.SentenceHistoryRepository
	generator   *mocks.SentenceGenerator
}

func newSentenceService(t *testing.T, cfg config.AppConfig) (service.SentenceService, sentenceDeps) {
	deps := sentenceDeps{
		userRepo:    repomocks.NewUserProfileRepository(t),
		senseRepo:   repomocks.NewSenseRepository(t),
		historyRepo: repomocks.NewSentenceHistoryRepository(t),
		generator:   mocks.NewSentenceGenerator(t),
	}
	svc := service.NewSentenceService(nil, deps.userRepo, deps.senseRepo, deps.historyRepo, deps.generator, cfg)
	return svc, deps
}

func TestSentenceService_GenerateSentence(t *testing.T) {
	ctx := context.Background()
	cfg := config.AppConfig{SentenceHistoryLimit: 5, RequirePersistedSentence: true}
	sense := &model.Sense{ID: 3, Word: "hola", Translation: "hello"}
	req := &model.GenerateSentenceRequest{Language: "Spanish"}

	t.Run("履歴を新しい順に渡し、生成文を保存して返す", func(t *testing.T) {
		svc, deps := newSentenceService(t, cfg)
		deps.userRepo.On("FindByID", ctx, mock.Anything, uint(1)).Return(&model.UserProfile{ID: 1}, nil).Once()
		deps.senseRepo.On("FindByID", ctx, mock.Anything, uint(3)).Return(sense, nil).Once()
		deps.historyRepo.On("FindLatest", ctx, mock.Anything, uint(1), uint(3), 5).
			Return([]*model.SentenceHistory{{Sentence: "newest"}, {Sentence: "older"}}, nil).Once()
		deps.generator.On("Generate", ctx, service.SentenceRequest{
			Word: "hola", Translation: "hello", Language: "Spanish", Previous: []string{"newest", "older"},
		}).Return("Hola, amigo.", nil).Once()
		deps.historyRepo.On("Append", ctx, mock.Anything, mock.MatchedBy(func(e *model.SentenceHistory) bool {
			return e.UserID == 1 && e.SenseID == 3 && e.Sentence == "Hola, amigo."
		})).Return(nil).Once()

		resp, err := svc.GenerateSentence(ctx, 1, 3, req)
		require.NoError(t, err)
		assert.Equal(t, &model.GenerateSentenceResponse{UserID: 1, SenseID: 3, Sentence: "Hola, amigo."}, resp)
	})

	t.Run("ユーザーが存在しなければ ErrNotFound で何も呼ばない", func(t *testing.T) {
		svc, deps := newSentenceService(t, cfg)
		deps.userRepo.On("FindByID", ctx, mock.Anything, uint(999)).
			Return(nil, fmt.Errorf("find: %w", model.ErrNotFound)).Once()

		_, err := svc.GenerateSentence(ctx, 999, 3, req)
		assert.ErrorIs(t, err, model.ErrNotFound)
		deps.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		deps.historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Senseが存在しなければ ErrNotFound", func(t *testing.T) {
		svc, deps := newSentenceService(t, cfg)
		deps.userRepo.On("FindByID", ctx, mock.Anything, uint(1)).Return(&model.UserProfile{ID: 1}, nil).Once()
		deps.senseRepo.On("FindByID", ctx, mock.Anything, uint(404)).
			Return(nil, fmt.Errorf("find: %w", model.ErrNotFound)).Once()

		_, err := svc.GenerateSentence(ctx, 1, 404, req)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("生成に失敗したら履歴は書かれない", func(t *testing.T) {
		svc, deps := newSentenceService(t, cfg)
		deps.userRepo.On("FindByID", ctx, mock.Anything, uint(1)).Return(&model.UserProfile{ID: 1}, nil).Once()
		deps.senseRepo.On("FindByID", ctx, mock.Anything, uint(3)).Return(sense, nil).Once()
		deps.historyRepo.On("FindLatest", ctx, mock.Anything, uint(1), uint(3), 5).Return([]*model.SentenceHistory{}, nil).Once()
		deps.generator.On("Generate", ctx, mock.Anything).
			Return("", fmt.Errorf("%w: timeout", model.ErrGeneration)).Once()

		_, err := svc.GenerateSentence(ctx, 1, 3, req)
		assert.ErrorIs(t, err, model.ErrGeneration)
		deps.historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("保存必須なら保存失敗は ErrUpstream", func(t *testing.T) {
		svc, deps := newSentenceService(t, cfg)
		deps.userRepo.On("FindByID", ctx, mock.Anything, uint(1)).Return(&model.UserProfile{ID: 1}, nil).Once()
		deps.senseRepo.On("FindByID", ctx, mock.Anything, uint(3)).Return(sense, nil).Once()
		deps.historyRepo.On("FindLatest", ctx, mock.Anything, uint(1), uint(3), 5).Return([]*model.SentenceHistory{}, nil).Once()
		deps.generator.On("Generate", ctx, mock.Anything).Return("Hola.", nil).Once()
		deps.historyRepo.On("Append", ctx, mock.Anything, mock.Anything).
			Return(model.NewAppError("STORE_REJECTED", "rejected", "", model.ErrValidation)).Once()

		resp, err := svc.GenerateSentence(ctx, 1, 3, req)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrUpstream)
		assert.NotErrorIs(t, err, model.ErrValidation)
	})

	t.Run("保存が任意なら保存失敗でも文を返す", func(t *testing.T) {
		svc, deps := newSentenceService(t, config.AppConfig{SentenceHistoryLimit: 3, RequirePersistedSentence: false})
		deps.userRepo.On("FindByID", ctx, mock.Anything, uint(1)).Return(&model.UserProfile{ID: 1}, nil).Once()
		deps.senseRepo.On("FindByID", ctx, mock.Anything, uint(3)).Return(sense, nil).Once()
		deps.historyRepo.On("FindLatest", ctx, mock.Anything, uint(1), uint(3), 3).Return([]*model.SentenceHistory{}, nil).Once()
		deps.generator.On("Generate", ctx, mock.Anything).Return("Hola.", nil).Once()
		deps.historyRepo.On("Append", ctx, mock.Anything, mock.Anything).
			Return(errors.Join(model.ErrUpstream, errors.New("connection reset"))).Once()

		resp, err := svc.GenerateSentence(ctx, 1, 3, req)
		require.NoError(t, err)
		assert.Equal(t, "Hola.", resp.Sentence)
	})
}

func TestSentenceService_ListSentenceHistory(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"未指定はデフォルト件数", 0, model.DefaultSentenceHistoryLimit},
		{"指定件数をそのまま使う", 12, 12},
		{"上限で切り詰める", 500, model.MaxSentenceHistoryListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newSentenceService(t, config.AppConfig{})
			deps.historyRepo.On("FindLatest", ctx, mock.Anything, uint(1), uint(2), tt.wantLimit).
				Return([]*model.SentenceHistory{}, nil).Once()

			entries, err := svc.ListSentenceHistory(ctx, 1, 2, tt.limit)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}
