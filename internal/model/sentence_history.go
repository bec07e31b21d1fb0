// internal/model/sentence_history.go
package model

import "time"

const (
	// DefaultSentenceHistoryLimit は生成時に参照する過去の例文の件数
	DefaultSentenceHistoryLimit = 5
	// MaxSentenceHistoryListLimit は履歴一覧APIで返す最大件数
	MaxSentenceHistoryListLimit = 50
)

// SentenceHistory は生成済みの例文ログ (追記のみ)
type SentenceHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_sentence_history_user_sense" json:"user_id"`
	SenseID   uint      `gorm:"not null;index:idx_sentence_history_user_sense" json:"sense_id"`
	Sentence  string    `gorm:"not null" json:"sentence"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (SentenceHistory) TableName() string {
	return "sentence_history"
}

// 例文生成リクエストDTO
type GenerateSentenceRequest struct {
	Language string `json:"language" validate:"required,notblank,max=35"`
}

// 例文生成レスポンスDTO
type GenerateSentenceResponse struct {
	UserID   uint   `json:"user_id"`
	SenseID  uint   `json:"sense_id"`
	Sentence string `json:"sentence"`
}
