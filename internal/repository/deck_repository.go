//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"vocario/internal/model"

	"gorm.io/gorm"
)

type DeckRepository interface {
	Create(ctx context.Context, db *gorm.DB, deck *model.Deck) error
	FindByID(ctx context.Context, db *gorm.DB, deckID uint) (*model.Deck, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]*model.Deck, error)
}

type gormDeckRepository struct{}

func NewGormDeckRepository() DeckRepository {
	return &gormDeckRepository{}
}

func (r *gormDeckRepository) Create(ctx context.Context, db *gorm.DB, deck *model.Deck) error {
	if err := db.WithContext(ctx).Create(deck).Error; err != nil {
		err = translateError("gormDeckRepository.Create", err)
		logFailure(ctx, "Error creating deck in DB", err, "user_id", deck.UserID, "name", deck.Name)
		return err
	}
	return nil
}

func (r *gormDeckRepository) FindByID(ctx context.Context, db *gorm.DB, deckID uint) (*model.Deck, error) {
	var deck model.Deck
	if err := db.WithContext(ctx).First(&deck, deckID).Error; err != nil {
		err = translateError("gormDeckRepository.FindByID", err)
		logFailure(ctx, "Error finding deck by ID in DB", err, "deck_id", deckID)
		return nil, err
	}
	return &deck, nil
}

// FindByUser はユーザーのデッキを作成順に返す。0件なら空スライス。
func (r *gormDeckRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]*model.Deck, error) {
	decks := []*model.Deck{}
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&decks).Error; err != nil {
		err = translateError("gormDeckRepository.FindByUser", err)
		logFailure(ctx, "Error listing decks in DB", err, "user_id", userID)
		return nil, err
	}
	return decks, nil
}
