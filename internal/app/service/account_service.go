package service

import (
	"errors"

	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
	"github.com/oclettings/oc-lettings-site/pkg/util"
	"gorm.io/gorm"
)

const kindUser = "user"

var ErrUsernameAlreadyExists = errors.New("username already exists")

// UserInput holds the fields needed to open an account.
type UserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// AccountService manages the accounts that profiles belong to.
type AccountService interface {
	CreateUser(input UserInput) (*model.User, error)
	GetUser(username string) (*model.User, error)
	DeleteUser(username string) error
}

type accountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) AccountService {
	return &accountService{
		userRepo: userRepo,
	}
}

func (s *accountService) CreateUser(input UserInput) (*model.User, error) {
	logger.Info("Creating user account", map[string]interface{}{
		"username": input.Username,
	})

	existing, err := s.userRepo.FindByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"username": input.Username,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Account creation failed: username already exists", map[string]interface{}{
			"username": input.Username,
		})
		return nil, ErrUsernameAlreadyExists
	}

	if len(input.Password) < util.MinPasswordLength {
		return nil, apperrors.NewValidationError(kindUser, "password", apperrors.ValidationTooShort)
	}

	user := &model.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	// Validate before hashing.
	if err := user.Validate(); err != nil {
		return nil, err
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"username": input.Username,
		})
		return nil, err
	}
	user.PasswordHash = hashedPassword

	if err := s.userRepo.Create(user); err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"username": input.Username,
		})
		return nil, err
	}

	logger.Info("User account created successfully", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (s *accountService) GetUser(username string) (*model.User, error) {
	return Resolve(kindUser, username, s.userRepo.FindByUsername)
}

// DeleteUser removes the account and, with it, its profile.
func (s *accountService) DeleteUser(username string) error {
	user, err := s.GetUser(username)
	if err != nil {
		return err
	}

	logger.Info("Deleting user account", map[string]interface{}{
		"user_id":  user.ID,
		"username": username,
	})

	if err := s.userRepo.Delete(user.ID); err != nil {
		logger.Error("Failed to delete user account", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}

	logger.Info("User account deleted successfully", map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}
