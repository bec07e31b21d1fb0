// internal/model/lang_profile.go
package model

import "time"

// LangProfile はユーザーが学習している言語とレベル
type LangProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Lang      string    `gorm:"not null" json:"lang"`
	Level     string    `gorm:"not null" json:"level"`
	Purpose   *string   `json:"purpose,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	User *UserProfile `gorm:"foreignKey:UserID" json:"-"`
}

func (LangProfile) TableName() string {
	return "lang_profiles"
}

// 言語プロフィール作成リクエストDTO
type CreateLangProfileRequest struct {
	Lang    string  `json:"lang" validate:"required,notblank,max=35"`
	Level   string  `json:"level" validate:"required,notblank,max=20"`
	Purpose *string `json:"purpose,omitempty" validate:"omitempty,max=200"`
}
