package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"vocario/internal/config"
	"vocario/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB はホスティングされた PostgreSQL に接続します。
func NewDB(dsn string, poolCfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	return Open(postgres.Open(dsn), poolCfg, appLogger)
}

// Open は任意のダイアレクタでGORMを初期化します (テストでは sqlite を渡す)。
func Open(dialector gorm.Dialector, poolCfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}

	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}
	gormLog := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	).LogMode(gormLogLevel)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLog,
		// ドライバ固有のエラー (一意制約違反など) を gorm.ErrDuplicatedKey 等に変換させる
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if poolCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(poolCfg.MaxOpenConns)
	}
	if poolCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(poolCfg.MaxIdleConns)
	}
	if poolCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(poolCfg.ConnMaxLifetime)
	}

	appLogger.Info("Database connection established with GORM", slog.String("dialect", dialector.Name()))
	return db, nil
}

// Models はスキーマに含まれるエンティティの一覧。
// 本番のスキーマはストア側で管理するため、AutoMigrate はテストとローカル開発の seed でのみ使う。
func Models() []interface{} {
	return []interface{}{
		&model.UserProfile{},
		&model.LangProfile{},
		&model.Deck{},
		&model.Sense{},
		&model.Card{},
		&model.SentenceHistory{},
	}
}
