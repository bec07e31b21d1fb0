// internal/handlers/user_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"vocario/internal/model"
	"vocario/internal/service"
	"vocario/internal/webutil"
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		service: s,
		logger:  logger,
	}
}

// CreateUserProfile は POST /user_profiles
func (h *UserHandler) CreateUserProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateUserProfile"))

	var req model.CreateUserProfileRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	// 検索側と同じく前後の空白を除いてから形式を検証する
	req.Email = strings.TrimSpace(req.Email)
	if err := webutil.ValidateStruct(&req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.CreateUserProfile(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User profile created successfully", slog.Uint64("user_id", uint64(user.ID)))
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// LookupUser は GET /user_profiles/lookup?email=
func (h *UserHandler) LookupUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "LookupUser"))

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		appErr := model.NewAppError("MISSING_QUERY_PARAM", "email query parameter is required.", "email", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	userID, err := h.service.LookupUserID(r.Context(), email)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.UserLookupResponse{UserID: userID}, logger)
}

// CreateLangProfile は POST /users/{user_id}/lang_profiles
func (h *UserHandler) CreateLangProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateLangProfile"))

	userID, err := webutil.ParseIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Uint64("user_id", uint64(userID)))

	var req model.CreateLangProfileRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.CreateLangProfile(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// ListLangProfiles は GET /users/{user_id}/lang_profiles
func (h *UserHandler) ListLangProfiles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListLangProfiles"))

	userID, err := webutil.ParseIDParam(r, "user_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profiles, err := h.service.ListLangProfiles(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profiles, logger)
}
