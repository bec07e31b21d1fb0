// internal/model/sense.go
package model

import "time"

// Sense は (単語, 訳) の組。組み合わせごとに1行だけ存在する。
type Sense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Word        string    `gorm:"not null;uniqueIndex:uq_senses_word_translation" json:"word"`
	Translation string    `gorm:"not null;uniqueIndex:uq_senses_word_translation" json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Sense) TableName() string {
	return "senses"
}
