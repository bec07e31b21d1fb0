//go:generate mockery --name UserProfileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"vocario/internal/model"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.UserProfile) error
	FindByID(ctx context.Context, db *gorm.DB, userID uint) (*model.UserProfile, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.UserProfile, error)
}

type gormUserProfileRepository struct{}

func NewGormUserProfileRepository() UserProfileRepository {
	return &gormUserProfileRepository{}
}

func (r *gormUserProfileRepository) Create(ctx context.Context, db *gorm.DB, user *model.UserProfile) error {
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		err = translateError("gormUserProfileRepository.Create", err)
		logFailure(ctx, "Error creating user profile in DB", err, "email", user.Email)
		return err
	}
	return nil
}

func (r *gormUserProfileRepository) FindByID(ctx context.Context, db *gorm.DB, userID uint) (*model.UserProfile, error) {
	var user model.UserProfile
	if err := db.WithContext(ctx).First(&user, userID).Error; err != nil {
		err = translateError("gormUserProfileRepository.FindByID", err)
		logFailure(ctx, "Error finding user profile by ID in DB", err, "user_id", userID)
		return nil, err
	}
	return &user, nil
}

// FindByEmail は最大1件を返す。見つからない場合は model.ErrNotFound (エラーログは出さない)。
func (r *gormUserProfileRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.UserProfile, error) {
	var users []model.UserProfile
	result := db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&users)
	if result.Error != nil {
		err := translateError("gormUserProfileRepository.FindByEmail", result.Error)
		logFailure(ctx, "Error finding user profile by email in DB", err, "email", email)
		return nil, err
	}
	if len(users) == 0 {
		return nil, model.ErrNotFound
	}
	return &users[0], nil
}
