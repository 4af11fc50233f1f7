package api

import (
	"context"  // Service calls
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"posyandu_system/internal/domain"     // Importing domain models
	"posyandu_system/internal/middleware" // Context keys
	"posyandu_system/internal/service"    // Auth service and errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Authenticator is the auth behaviour the handlers depend on
type Authenticator interface {
	Register(ctx context.Context, in service.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
}

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`    // Display name
	Email    string `json:"email" validate:"required,email"` // Unique login
	Password string `json:"password" validate:"required"`    // Plaintext, hashed before storage
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterHandler creates a user account
func RegisterHandler(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if !bindAndValidate(c, &req) {
			return
		}
		user, err := auth.Register(c.Request.Context(), service.RegisterInput{
			Email:    req.Email,
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			// Duplicate email lands here too
			respondInternalError(c, "Error registering user", err)
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if !bindAndValidate(c, &req) {
			return
		}
		user, token, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			RespondWithError(c, http.StatusNotFound, "User not found")
			return
		case errors.Is(err, service.ErrInvalidPassword):
			RespondWithError(c, http.StatusUnauthorized, "Invalid password")
			return
		case err != nil:
			respondInternalError(c, "Error logging in user", err)
			return
		}
		// Password hash is excluded from the user's JSON form
		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user, "token": token})
	}
}

// MeHandler returns the user identified by the bearer token
func MeHandler(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get(middleware.ContextUserID)
		if !ok {
			RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		user, err := auth.GetUser(c.Request.Context(), userID.(uint))
		if errors.Is(err, service.ErrUserNotFound) {
			RespondWithError(c, http.StatusNotFound, "User not found")
			return
		} else if err != nil {
			respondInternalError(c, "Error fetching user", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
