package repository

import (
	"context"
	"errors"
	"fmt"

	"vocario/internal/middleware"
	"vocario/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL のエラーコードのうち「データの形が拒否された」とみなすもの
var pgRejectionCodes = map[string]string{
	"23505": "duplicate value violates a unique constraint",
	"23503": "referenced row does not exist",
	"23502": "a required column is missing",
	"23514": "a check constraint was violated",
	"22P02": "a value has an invalid format",
	"22001": "a value is too long",
}

// translateError はストアのエラーをドメインのエラーに変換します。
//   - レコード無し -> model.ErrNotFound
//   - 制約違反など -> model.ErrValidation
//   - それ以外 (接続・認証・タイムアウト) -> model.ErrUpstream
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return rejection(op, pgRejectionCodes["23505"], err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return rejection(op, pgRejectionCodes["23503"], err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, model.ErrUpstream, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if reason, ok := pgRejectionCodes[pgErr.Code]; ok {
			return rejection(op, reason, err)
		}
	}
	return fmt.Errorf("%s: %w: %v", op, model.ErrUpstream, err)
}

// rejection はクライアントに理由を返せる形 (AppError) でストアの拒否を表す
func rejection(op, reason string, cause error) error {
	return model.NewAppError("STORE_REJECTED", "The store rejected the data: "+reason+".", "",
		fmt.Errorf("%s: %w: %v", op, model.ErrValidation, cause))
}

// isRejection はログレベルの判定に使う (拒否は Warn、障害は Error)
func isRejection(err error) bool {
	return errors.Is(err, model.ErrValidation) || errors.Is(err, model.ErrNotFound)
}

// logFailure は拒否を Warn、ストア障害を Error として記録します。
func logFailure(ctx context.Context, msg string, err error, args ...any) {
	logger := middleware.GetLogger(ctx)
	args = append([]any{"error", err}, args...)
	if isRejection(err) {
		logger.Warn(msg, args...)
		return
	}
	logger.Error(msg, args...)
}
