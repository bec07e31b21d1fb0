//go:generate mockery --name SenseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"vocario/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SenseRepository interface {
	// Upsert は (word, translation) で重複排除し、既存または新規の行で sense を上書きする
	Upsert(ctx context.Context, db *gorm.DB, sense *model.Sense) error
	FindByID(ctx context.Context, db *gorm.DB, senseID uint) (*model.Sense, error)
	FindByWordAndTranslation(ctx context.Context, db *gorm.DB, word, translation string) (*model.Sense, error)
}

type gormSenseRepository struct{}

func NewGormSenseRepository() SenseRepository {
	return &gormSenseRepository{}
}

// Upsert は INSERT ... ON CONFLICT (word, translation) DO NOTHING の後、自然キーで読み直す。
// 競合時は INSERT が行を返さないため、2段階で ID を確定させる。
func (r *gormSenseRepository) Upsert(ctx context.Context, db *gorm.DB, sense *model.Sense) error {
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word"}, {Name: "translation"}},
		DoNothing: true,
	}).Create(sense)
	if result.Error != nil {
		err := translateError("gormSenseRepository.Upsert", result.Error)
		logFailure(ctx, "Error upserting sense in DB", err, "word", sense.Word, "translation", sense.Translation)
		return err
	}

	stored, err := r.FindByWordAndTranslation(ctx, db, sense.Word, sense.Translation)
	if err != nil {
		return err
	}
	*sense = *stored
	return nil
}

func (r *gormSenseRepository) FindByID(ctx context.Context, db *gorm.DB, senseID uint) (*model.Sense, error) {
	var sense model.Sense
	if err := db.WithContext(ctx).First(&sense, senseID).Error; err != nil {
		err = translateError("gormSenseRepository.FindByID", err)
		logFailure(ctx, "Error finding sense by ID in DB", err, "sense_id", senseID)
		return nil, err
	}
	return &sense, nil
}

func (r *gormSenseRepository) FindByWordAndTranslation(ctx context.Context, db *gorm.DB, word, translation string) (*model.Sense, error) {
	var sense model.Sense
	result := db.WithContext(ctx).Where("word = ? AND translation = ?", word, translation).First(&sense)
	if result.Error != nil {
		err := translateError("gormSenseRepository.FindByWordAndTranslation", result.Error)
		logFailure(ctx, "Error finding sense by natural key in DB", err, "word", word, "translation", translation)
		return nil, err
	}
	return &sense, nil
}
