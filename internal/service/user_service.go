// internal/service/user_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"vocario/internal/middleware"
	"vocario/internal/model"
	"vocario/internal/repository"

	"gorm.io/gorm"
)

//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
type UserService interface {
	CreateUserProfile(ctx context.Context, req *model.CreateUserProfileRequest) (*model.UserProfile, error)
	LookupUserID(ctx context.Context, email string) (uint, error)
	CreateLangProfile(ctx context.Context, userID uint, req *model.CreateLangProfileRequest) (*model.LangProfile, error)
	ListLangProfiles(ctx context.Context, userID uint) ([]*model.LangProfile, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserProfileRepository
	langRepo repository.LangProfileRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserProfileRepository, langRepo repository.LangProfileRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		langRepo: langRepo,
	}
}

// normalizeEmail は保存と検索で同じ表記になるようにメールアドレスを揃える
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) CreateUserProfile(ctx context.Context, req *model.CreateUserProfileRequest) (*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx)

	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "email is required.", "email", model.ErrInvalidInput)
	}

	user := &model.UserProfile{
		Email:    email,
		Username: req.Username,
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		return nil, fmt.Errorf("create user profile: %w", err)
	}

	logger.Info("User profile created", "user_id", user.ID)
	return user, nil
}

func (s *userService) LookupUserID(ctx context.Context, email string) (uint, error) {
	email = normalizeEmail(email)
	if email == "" {
		return 0, model.NewAppError("MISSING_QUERY_PARAM", "email query parameter is required.", "email", model.ErrInvalidInput)
	}

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return 0, fmt.Errorf("lookup user by email: %w", err)
	}
	return user.ID, nil
}

// CreateLangProfile はユーザーの存在を確かめてから言語プロフィールを作成する
func (s *userService) CreateLangProfile(ctx context.Context, userID uint, req *model.CreateLangProfileRequest) (*model.LangProfile, error) {
	logger := middleware.GetLogger(ctx)

	profile := &model.LangProfile{
		UserID:  userID,
		Lang:    strings.TrimSpace(req.Lang),
		Level:   strings.TrimSpace(req.Level),
		Purpose: req.Purpose,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(ctx, tx, userID); err != nil {
			return err
		}
		return s.langRepo.Create(ctx, tx, profile)
	})
	if err != nil {
		return nil, fmt.Errorf("create lang profile: %w", err)
	}

	logger.Info("Lang profile created", "user_id", userID, "lang_profile_id", profile.ID, "lang", profile.Lang)
	return profile, nil
}

func (s *userService) ListLangProfiles(ctx context.Context, userID uint) ([]*model.LangProfile, error) {
	profiles, err := s.langRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("list lang profiles: %w", err)
	}
	return profiles, nil
}
