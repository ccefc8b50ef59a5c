package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"orthonova/database"
	"orthonova/models"
	"orthonova/repositories"
	"orthonova/utils"
)

const (
	SessionCacheExpiry = 24 * time.Hour
)

type UserService interface {
	ValidateAndCreateUser(ctx context.Context, form utils.UserForm) (*models.User, error)
	AuthenticateUser(ctx context.Context, userID, password string) (*models.User, error)
	GetUserByUserID(ctx context.Context, userID string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUserPassword(ctx context.Context, userID, newPassword string) error
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ValidateAndCreateUser validates the form and creates the account. The
// single-receptionist rule is checked here for a friendly message, but the
// partial unique index on users(role) is what actually enforces it under
// concurrent submissions.
func (s *userService) ValidateAndCreateUser(ctx context.Context, form utils.UserForm) (*models.User, error) {
	lockKey := fmt.Sprintf("user_lock:%s", form.UserID)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	if err := utils.ValidateUserForm(form); err != nil {
		return nil, fmt.Errorf("invalid user data: %w", err)
	}

	if exists, err := s.userRepo.UserIDExists(ctx, form.UserID); err != nil || exists {
		return nil, errors.New("user ID already registered")
	}

	if form.Role == models.RoleReceptionist {
		if exists, err := s.userRepo.ReceptionistExists(ctx); err != nil {
			return nil, fmt.Errorf("failed to check receptionist: %w", err)
		} else if exists {
			return nil, errors.New("only one receptionist is allowed")
		}
	}

	hashedPassword, err := utils.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserID:     form.UserID,
		Password:   hashedPassword,
		Role:       form.Role,
		Department: form.Department,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser matches a login identifier and credential against the
// users table. The session record is cached on success.
func (s *userService) AuthenticateUser(ctx context.Context, userID, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if user == nil {
		return nil, errors.New("invalid user ID or password")
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, errors.New("invalid user ID or password")
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user data: %w", err)
	}
	cacheKey := fmt.Sprintf("session_cache:%s", userID)
	if err := database.RedisClient.Set(ctx, cacheKey, userJSON, SessionCacheExpiry).Err(); err != nil {
		log.Printf("Failed to set session in cache: %v", err)
	}

	return user, nil
}

func (s *userService) GetUserByUserID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByUserID(ctx, userID)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *userService) UpdateUserPassword(ctx context.Context, userID, newPassword string) error {
	lockKey := fmt.Sprintf("user_lock:%s", userID)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdateUserPassword(ctx, userID, hashedPassword)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.DeleteUser(ctx, id)
}
