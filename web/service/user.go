package service

import (
	"context"
	"errors"

	"github.com/fzscripts/fzscripts/database"
	"github.com/fzscripts/fzscripts/database/model"
	"github.com/fzscripts/fzscripts/logger"
	"github.com/fzscripts/fzscripts/util/crypto"

	"gorm.io/gorm"
)

// UserService handles registration, credential checks and account updates.
type UserService struct{}

// Register creates a new account. Only the reserved bootstrap username is
// granted admin and verified flags; the unique constraint on username is the
// final guard against duplicate registrations.
func (s *UserService) Register(ctx context.Context, username, password, profilePicture string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       username,
		Password:       hashed,
		ProfilePicture: profilePicture,
		Verified:       username == database.BootstrapUsername,
		IsAdmin:        username == database.BootstrapUsername,
	}
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// CheckUser verifies a username/password pair. Unknown usernames and wrong
// passwords both fail with ErrInvalidCredentials so usernames cannot be
// enumerated through the login path.
func (s *UserService) CheckUser(ctx context.Context, username, password string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	user := &model.User{}
	err := db.Model(&model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUserById(ctx context.Context, id int) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	user := &model.User{}
	err := db.First(user, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// IsUsernameAvailable reports whether no account holds the given username.
func (s *UserService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	var count int64
	err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// SetVerified flips the verified badge on the target account. Only admins may
// do this.
func (s *UserService) SetVerified(ctx context.Context, actingUser *model.User, targetId int, verified bool) (*model.User, error) {
	if actingUser == nil || !actingUser.IsAdmin {
		return nil, ErrForbidden
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	result := db.Model(&model.User{}).
		Where("id = ?", targetId).
		Update("verified", verified)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetUserById(ctx, targetId)
}

// UpdateProfilePicture replaces the profile picture URL of the given account.
// Ownership is enforced at the HTTP boundary.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userId int, profilePicture string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	result := db.Model(&model.User{}).
		Where("id = ?", userId).
		Update("profile_picture", profilePicture)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetUserById(ctx, userId)
}
