//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"vocario/internal/model"

	"gorm.io/gorm"
)

type CardRepository interface {
	Create(ctx context.Context, db *gorm.DB, card *model.Card) error
	// FindByDeck はカードを作成順に返し、各カードの Sense を読み込み済みにする
	FindByDeck(ctx context.Context, db *gorm.DB, deckID uint) ([]*model.Card, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, db *gorm.DB, card *model.Card) error {
	if err := db.WithContext(ctx).Create(card).Error; err != nil {
		err = translateError("gormCardRepository.Create", err)
		logFailure(ctx, "Error creating card in DB", err, "deck_id", card.DeckID, "sense_id", card.SenseID)
		return err
	}
	return nil
}

// Preload は Sense を1回の IN クエリでまとめて取得する (カードごとの N+1 問い合わせにはしない)。
func (r *gormCardRepository) FindByDeck(ctx context.Context, db *gorm.DB, deckID uint) ([]*model.Card, error) {
	cards := []*model.Card{}
	result := db.WithContext(ctx).
		Preload("Sense").
		Where("deck_id = ?", deckID).
		Order("id ASC").
		Find(&cards)
	if result.Error != nil {
		err := translateError("gormCardRepository.FindByDeck", result.Error)
		logFailure(ctx, "Error listing cards in DB", err, "deck_id", deckID)
		return nil, err
	}
	return cards, nil
}
