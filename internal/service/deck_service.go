// internal/service/deck_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"vocario/internal/middleware"
	"vocario/internal/model"
	"vocario/internal/repository"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

//go:generate mockery --name DeckService --output ./mocks --outpkg mocks --case=underscore
type DeckService interface {
	CreateDeck(ctx context.Context, userID uint, req *model.CreateDeckRequest) (*model.Deck, error)
	ListDecks(ctx context.Context, userID uint) ([]*model.Deck, error)
	CreateCard(ctx context.Context, deckID uint, req *model.CreateCardRequest) (*model.Card, error)
	ListCards(ctx context.Context, deckID uint) ([]model.CardResponse, error)
}

type deckService struct {
	db        *gorm.DB
	userRepo  repository.UserProfileRepository
	deckRepo  repository.DeckRepository
	senseRepo repository.SenseRepository
	cardRepo  repository.CardRepository
}

func NewDeckService(
	db *gorm.DB,
	userRepo repository.UserProfileRepository,
	deckRepo repository.DeckRepository,
	senseRepo repository.SenseRepository,
	cardRepo repository.CardRepository,
) DeckService {
	return &deckService{
		db:        db,
		userRepo:  userRepo,
		deckRepo:  deckRepo,
		senseRepo: senseRepo,
		cardRepo:  cardRepo,
	}
}

func (s *deckService) CreateDeck(ctx context.Context, userID uint, req *model.CreateDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)

	deck := &model.Deck{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(ctx, tx, userID); err != nil {
			return err
		}
		return s.deckRepo.Create(ctx, tx, deck)
	})
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}

	logger.Info("Deck created", "user_id", userID, "deck_id", deck.ID)
	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context, userID uint) ([]*model.Deck, error) {
	decks, err := s.deckRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// CreateCard は (word, translation) の Sense を upsert し、そのSenseを指すカードを作る。
// 同じ組で作られたカードは同じ sense_id を共有する。
func (s *deckService) CreateCard(ctx context.Context, deckID uint, req *model.CreateCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)

	var card *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.deckRepo.FindByID(ctx, tx, deckID); err != nil {
			return err
		}

		sense := &model.Sense{
			Word:        strings.TrimSpace(req.Word),
			Translation: strings.TrimSpace(req.Translation),
		}
		if err := s.senseRepo.Upsert(ctx, tx, sense); err != nil {
			return err
		}

		card = &model.Card{DeckID: deckID, SenseID: sense.ID}
		return s.cardRepo.Create(ctx, tx, card)
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	logger.Info("Card created", "deck_id", deckID, "card_id", card.ID, "sense_id", card.SenseID)
	return card, nil
}

// ListCards はデッキのカードを作成順に、Senseの単語と訳を埋め込んで返す。
// デッキが存在しない場合も空のリストになる。
func (s *deckService) ListCards(ctx context.Context, deckID uint) ([]model.CardResponse, error) {
	cards, err := s.cardRepo.FindByDeck(ctx, s.db, deckID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return lo.Map(cards, func(card *model.Card, _ int) model.CardResponse {
		resp := model.CardResponse{
			ID:        card.ID,
			DeckID:    card.DeckID,
			SenseID:   card.SenseID,
			CreatedAt: card.CreatedAt,
		}
		if card.Sense != nil {
			resp.Senses = model.SenseText{Word: card.Sense.Word, Translation: card.Sense.Translation}
		}
		return resp
	}), nil
}
