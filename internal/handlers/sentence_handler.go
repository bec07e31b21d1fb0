// internal/handlers/sentence_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"vocario/internal/model"
	"vocario/internal/service"
	"vocario/internal/webutil"
)

type SentenceHandler struct {
	service service.SentenceService
	logger  *slog.Logger
}

func NewSentenceHandler(s service.SentenceService, logger *slog.Logger) *SentenceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SentenceHandler{
		service: s,
		logger:  logger,
	}
}

// parseUserSense は user_id と sense_id のパスパラメータを読む
func parseUserSense(r *http.Request) (uint, uint, error) {
	userID, err := webutil.ParseIDParam(r, "user_id")
	if err != nil {
		return 0, 0, err
	}
	senseID, err := webutil.ParseIDParam(r, "sense_id")
	if err != nil {
		return 0, 0, err
	}
	return userID, senseID, nil
}

// GenerateSentence は POST /users/{user_id}/senses/{sense_id}/sentence_history
func (h *SentenceHandler) GenerateSentence(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GenerateSentence"))

	userID, senseID, err := parseUserSense(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Uint64("user_id", uint64(userID)), slog.Uint64("sense_id", uint64(senseID)))

	var req model.GenerateSentenceRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GenerateSentence(r.Context(), userID, senseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// ListSentenceHistory は GET /users/{user_id}/senses/{sense_id}/sentence_history?limit=
func (h *SentenceHandler) ListSentenceHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListSentenceHistory"))

	userID, senseID, err := parseUserSense(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limit must be a positive integer.", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
	}

	entries, err := h.service.ListSentenceHistory(r.Context(), userID, senseID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}
