// internal/model/deck.go
package model

import "time"

// Deck はユーザーが所有するカードの集まり
type Deck struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	User *UserProfile `gorm:"foreignKey:UserID" json:"-"`
}

func (Deck) TableName() string {
	return "decks"
}

// デッキ作成リクエストDTO
type CreateDeckRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}
