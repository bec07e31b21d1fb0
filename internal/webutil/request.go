// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"vocario/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラー。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		msg := "Request body is not valid JSON."
		if errors.Is(err, io.EOF) {
			msg = "Request body is required."
		}
		return model.NewAppError("INVALID_REQUEST_BODY", msg, "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	if decoder.More() {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body must contain a single JSON object.", "", model.ErrInvalidInput)
	}
	return nil
}

// DecodeAndValidate はデコード後に validate タグで検証します。
// 最初のバリデーションエラーを翻訳したメッセージで AppError を返す。
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		return err
	}
	return ValidateStruct(dst)
}

// ValidateStruct は構造体を検証し、失敗時は VALIDATION_ERROR の AppError を返します。
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return model.NewAppError("VALIDATION_ERROR", first.Translate(Trans), first.Field(), model.ErrInvalidInput)
	}
	return fmt.Errorf("validate request: %w", err)
}

// ParseIDParam はURLパラメータを正の整数IDとして解釈します。
func ParseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, model.NewAppError("INVALID_URL_PARAM", fmt.Sprintf("%s must be a positive integer.", name), name, model.ErrInvalidInput)
	}
	return uint(id), nil
}
