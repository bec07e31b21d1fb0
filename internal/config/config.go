// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	Password        string        `mapstructure:"password"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AppConfig struct {
	SentenceHistoryLimit int `mapstructure:"sentence_history_limit"`
	// 例文の保存に失敗した場合にリクエスト自体を失敗させるか
	RequirePersistedSentence bool `mapstructure:"require_persisted_sentence"`
}

// Load は .env, 設定ファイル (config.yaml), 環境変数の順に読み込んで Config を返します。
// 設定ファイルが無い場合はデフォルト値と環境変数だけで構成します。
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	setDefaults(v)

	// 例: VOCARIO_SERVER_PORT -> server.port
	v.SetEnvPrefix("VOCARIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 秘密情報は一般的な環境変数名でも受け付ける
	_ = v.BindEnv("database.url", "VOCARIO_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("database.password", "VOCARIO_DATABASE_PASSWORD", "DATABASE_PASSWORD")
	_ = v.BindEnv("llm.api_key", "VOCARIO_LLM_API_KEY", "OPENAI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		log.Println("Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.idle_timeout", DefaultIdleTimeout)
	v.SetDefault("server.request_timeout", DefaultRequestTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("database.url", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("database.max_idle_conns", DefaultMaxIdleConns)
	v.SetDefault("database.conn_max_lifetime", DefaultConnMaxLifetime)
	v.SetDefault("llm.provider", DefaultLLMProvider)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", DefaultLLMBaseURL)
	v.SetDefault("llm.model", DefaultLLMModel)
	v.SetDefault("llm.max_tokens", DefaultLLMMaxTokens)
	v.SetDefault("llm.temperature", DefaultLLMTemperature)
	v.SetDefault("cors.allowed_origins", []string{DefaultCORSOrigin})
	v.SetDefault("app.sentence_history_limit", DefaultSentenceHistoryLimit)
	v.SetDefault("app.require_persisted_sentence", true)
}

// Validate は起動に必要な設定が揃っているかを確認します。
// 足りない場合はサーバーを起動させない。
func (c *Config) Validate() error {
	var errs []error

	if c.Database.URL == "" {
		errs = append(errs, errors.New("database.url (DATABASE_URL) is required"))
	} else {
		u, err := url.Parse(c.Database.URL)
		if err != nil {
			errs = append(errs, fmt.Errorf("database.url is not a valid URL: %w", err))
		} else if _, hasPassword := u.User.Password(); !hasPassword && c.Database.Password == "" {
			errs = append(errs, errors.New("database credential is required: set it in database.url or database.password (DATABASE_PASSWORD)"))
		}
	}

	switch c.LLM.Provider {
	case LLMProviderOpenAI:
		if c.LLM.APIKey == "" {
			errs = append(errs, errors.New("llm.api_key (OPENAI_API_KEY) is required for the openai provider"))
		}
	case LLMProviderLog:
	default:
		errs = append(errs, fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider))
	}

	if c.App.SentenceHistoryLimit <= 0 || c.App.SentenceHistoryLimit > DefaultSentenceHistoryLimit {
		errs = append(errs, fmt.Errorf("app.sentence_history_limit must be between 1 and %d", DefaultSentenceHistoryLimit))
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("cors.allowed_origins must contain at least one origin"))
	}

	return errors.Join(errs...)
}

// DatabaseDSN はパスワードを埋め込んだ接続URLを返します。
// URLに既にパスワードがある場合はそちらを優先する。
func (c *Config) DatabaseDSN() (string, error) {
	u, err := url.Parse(c.Database.URL)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	if _, ok := u.User.Password(); ok || c.Database.Password == "" {
		return u.String(), nil
	}
	username := "postgres"
	if u.User != nil && u.User.Username() != "" {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, c.Database.Password)
	return u.String(), nil
}
