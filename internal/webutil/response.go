// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vocario/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	var errResp model.APIErrorResponse
	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		errResp = model.APIErrorResponse{Error: defaultDetail(err)}
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Int("status", statusCode), slog.Any("error", err))
	}
	RespondWithJSON(w, statusCode, errResp, logger)
}

// defaultDetail は AppError 以外のエラーに対するクライアント向けメッセージ
func defaultDetail(err error) model.ErrorDetail {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "The requested resource was not found."}
	case errors.Is(err, model.ErrInvalidInput):
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: "The request is invalid."}
	case errors.Is(err, model.ErrValidation):
		return model.ErrorDetail{Code: "STORE_REJECTED", Message: "The store rejected the data."}
	case errors.Is(err, model.ErrGeneration):
		return model.ErrorDetail{Code: "GENERATION_FAILED", Message: "Sentence generation failed."}
	case errors.Is(err, model.ErrUpstream):
		return model.ErrorDetail{Code: "STORE_UNAVAILABLE", Message: "The data store could not complete the request."}
	default:
		return model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "An internal error occurred."}
	}
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	default:
		// 生成失敗・ストア障害・未分類のエラーは 500
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to build the response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
