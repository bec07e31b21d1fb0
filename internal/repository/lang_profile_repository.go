//go:generate mockery --name LangProfileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"vocario/internal/model"

	"gorm.io/gorm"
)

type LangProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *model.LangProfile) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]*model.LangProfile, error)
}

type gormLangProfileRepository struct{}

func NewGormLangProfileRepository() LangProfileRepository {
	return &gormLangProfileRepository{}
}

func (r *gormLangProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *model.LangProfile) error {
	if err := db.WithContext(ctx).Create(profile).Error; err != nil {
		err = translateError("gormLangProfileRepository.Create", err)
		logFailure(ctx, "Error creating lang profile in DB", err, "user_id", profile.UserID, "lang", profile.Lang)
		return err
	}
	return nil
}

func (r *gormLangProfileRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]*model.LangProfile, error) {
	profiles := []*model.LangProfile{}
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&profiles).Error; err != nil {
		err = translateError("gormLangProfileRepository.FindByUser", err)
		logFailure(ctx, "Error listing lang profiles in DB", err, "user_id", userID)
		return nil, err
	}
	return profiles, nil
}
