// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// maxLoggedBody はデバッグログに出すボディの最大バイト数
const maxLoggedBody = 4 << 10

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名 (小文字)
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"apikey":        true,
}

// statusRecorder はステータスコードと書き込みバイト数を記録します。
// captureBody が true のときだけレスポンスボディを保持する。
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	captureBody bool
	body        bytes.Buffer
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.captureBody && sr.body.Len() < maxLoggedBody {
		sr.body.Write(b[:min(len(b), maxLoggedBody-sr.body.Len())])
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// LoggingMiddleware はリクエスト単位のロガーをコンテキストに載せ、完了時に1行の概要ログを出します。
// DEBUG レベルではヘッダーとボディも出力する (機密ヘッダーはマスク)。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			debug := logger.Enabled(r.Context(), slog.LevelDebug)

			reqLogger := logger.With(
				slog.String("req_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			r = r.WithContext(WithLogger(r.Context(), reqLogger))

			var reqBody []byte
			if debug && r.Body != nil {
				reqBody, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewReader(reqBody))
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK, captureBody: debug}
			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}
			reqLogger.LogAttrs(r.Context(), level, "Request completed",
				slog.Int("status", rec.status),
				slog.Int("bytes_out", rec.bytes),
				slog.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
			)

			if debug {
				reqLogger.Debug("Request detail",
					slog.Any("headers", formatHeaders(r.Header)),
					slog.String("body", truncate(reqBody)),
				)
				reqLogger.Debug("Response detail",
					slog.Any("headers", formatHeaders(rec.Header())),
					slog.String("body", rec.body.String()),
				)
			}
		})
	}
}

// WithLogger はロガーをコンテキストに格納します。
// HTTP以外の経路 (CLIやテスト) からサービスを呼ぶ場合にも使う。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。無ければデフォルトロガー。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}
