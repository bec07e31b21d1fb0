// internal/model/card.go
package model

import "time"

// Card はデッキとSenseを結ぶ
type Card struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeckID    uint      `gorm:"not null;index" json:"deck_id"`
	SenseID   uint      `gorm:"not null;index" json:"sense_id"`
	CreatedAt time.Time `json:"created_at"`

	// 関連 (Preload用)
	Deck  *Deck  `gorm:"foreignKey:DeckID" json:"-"`
	Sense *Sense `gorm:"foreignKey:SenseID" json:"-"`
}

func (Card) TableName() string {
	return "cards"
}

// カード作成リクエストDTO
type CreateCardRequest struct {
	Word        string `json:"word" validate:"required,notblank,max=200"`
	Translation string `json:"translation" validate:"required,notblank,max=200"`
}

// SenseText はカード一覧に埋め込むSenseの文字列
type SenseText struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

// CardResponse はカード一覧のレスポンスDTO。
// クライアントは senses.word / senses.translation を参照する。
type CardResponse struct {
	ID        uint      `json:"id"`
	DeckID    uint      `json:"deck_id"`
	SenseID   uint      `json:"sense_id"`
	CreatedAt time.Time `json:"created_at"`
	Senses    SenseText `json:"senses"`
}
