package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error inspection
	"fmt"     // Error wrapping

	"posyandu_system/internal/config" // Application configuration
	"posyandu_system/internal/domain" // Importing domain models
	"posyandu_system/internal/utils"  // Password and JWT helpers

	"gorm.io/gorm" // GORM ORM library
)

// RegisterInput carries the fields needed to create an account
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// AuthService registers users and issues tokens
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthService creates an AuthService
func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register hashes the password and persists a new user. Duplicate emails
// surface as the storage error.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := utils.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{Email: in.Email, Username: in.Username, Password: hash}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Login verifies the credentials and returns the user with a signed token
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrUserNotFound
	} else if err != nil {
		return nil, "", fmt.Errorf("find user: %w", err)
	}
	if !utils.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidPassword
	}
	token, err := utils.GenerateJWT(user.ID, user.Email, s.cfg.JWTSecret, s.cfg.JWTTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return &user, token, nil
}

// GetUser loads a user by id
func (s *AuthService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
