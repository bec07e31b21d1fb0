//go:generate mockery --name SentenceHistoryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"vocario/internal/model"

	"gorm.io/gorm"
)

type SentenceHistoryRepository interface {
	Append(ctx context.Context, db *gorm.DB, entry *model.SentenceHistory) error
	// FindLatest は (user, sense) の例文を新しい順に最大 limit 件返す。limit <= 0 ならデフォルト件数。
	FindLatest(ctx context.Context, db *gorm.DB, userID, senseID uint, limit int) ([]*model.SentenceHistory, error)
}

type gormSentenceHistoryRepository struct{}

func NewGormSentenceHistoryRepository() SentenceHistoryRepository {
	return &gormSentenceHistoryRepository{}
}

func (r *gormSentenceHistoryRepository) Append(ctx context.Context, db *gorm.DB, entry *model.SentenceHistory) error {
	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		err = translateError("gormSentenceHistoryRepository.Append", err)
		logFailure(ctx, "Error appending sentence history in DB", err, "user_id", entry.UserID, "sense_id", entry.SenseID)
		return err
	}
	return nil
}

func (r *gormSentenceHistoryRepository) FindLatest(ctx context.Context, db *gorm.DB, userID, senseID uint, limit int) ([]*model.SentenceHistory, error) {
	if limit <= 0 {
		limit = model.DefaultSentenceHistoryLimit
	}
	entries := []*model.SentenceHistory{}
	result := db.WithContext(ctx).
		Where("user_id = ? AND sense_id = ?", userID, senseID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		err := translateError("gormSentenceHistoryRepository.FindLatest", result.Error)
		logFailure(ctx, "Error listing sentence history in DB", err, "user_id", userID, "sense_id", senseID)
		return nil, err
	}
	return entries, nil
}
