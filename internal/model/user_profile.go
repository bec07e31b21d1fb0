// internal/model/user_profile.go
package model

import "time"

// UserProfile はアプリケーションのユーザー
type UserProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // 一意性はストア側の制約で保証する
	Username  *string   `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// ユーザー作成リクエストDTO
type CreateUserProfileRequest struct {
	Email    string  `json:"email" validate:"required,email,max=254"`
	Username *string `json:"username,omitempty" validate:"omitempty,notblank,max=50"`
}

// メールアドレスによる検索結果
type UserLookupResponse struct {
	UserID uint `json:"user_id"`
}
