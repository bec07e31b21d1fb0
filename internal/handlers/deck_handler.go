// internal/handlers/deck_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocario/internal/model"
	"vocario/internal/service"
	"vocario/internal/webutil"
)

type DeckHandler struct {
	service service.DeckService
	logger  *slog.Logger
}

func NewDeckHandler(s service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		service: s,
		logger:  logger,
	}
}

// ListDecks は GET /users/{user_id}/decks
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListDecks"))

	userID, err := webutil.ParseIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	decks, err := h.service.ListDecks(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, decks, logger)
}

// CreateDeck は POST /user_profile/{user_id}/decks
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateDeck"))

	userID, err := webutil.ParseIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Uint64("user_id", uint64(userID)))

	var req model.CreateDeckRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	deck, err := h.service.CreateDeck(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck created successfully", slog.Uint64("deck_id", uint64(deck.ID)))
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

// ListCards は GET /decks/{deck_id}/cards
func (h *DeckHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListCards"))

	deckID, err := webutil.ParseIDParam(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cards, err := h.service.ListCards(r.Context(), deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// CreateCard は POST /decks/{deck_id}/cards
func (h *DeckHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateCard"))

	deckID, err := webutil.ParseIDParam(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Uint64("deck_id", uint64(deckID)))

	var req model.CreateCardRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.CreateCard(r.Context(), deckID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card created successfully",
		slog.Uint64("card_id", uint64(card.ID)),
		slog.Uint64("sense_id", uint64(card.SenseID)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}
