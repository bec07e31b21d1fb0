// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocario"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8000"
	DefaultLogLevel             = "info"
	DefaultReadTimeout          = 5 * time.Second
	DefaultWriteTimeout         = 60 * time.Second
	DefaultIdleTimeout          = 120 * time.Second
	DefaultRequestTimeout       = 45 * time.Second
	DefaultMaxOpenConns         = 20
	DefaultMaxIdleConns         = 5
	DefaultConnMaxLifetime      = time.Hour
	DefaultLLMProvider          = "openai"
	DefaultLLMBaseURL           = "https://api.openai.com/v1"
	DefaultLLMModel             = "gpt-4o-mini"
	DefaultLLMMaxTokens         = 120
	DefaultLLMTemperature       = 0.8
	DefaultSentenceHistoryLimit = 5
	DefaultCORSOrigin           = "http://localhost:5173"
)

// テキスト生成プロバイダ
const (
	LLMProviderOpenAI = "openai"
	LLMProviderLog    = "log" // ローカル開発用。外部APIを呼ばない
)
