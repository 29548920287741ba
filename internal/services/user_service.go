package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/helpers"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

type UserService struct {
	userRepo    models.UserRepo
	profileRepo models.ProfileRepo
	tokens      *helpers.TokenIssuer
	logger      *slog.Logger
}

func NewUserService(userRepo models.UserRepo, profileRepo models.ProfileRepo, tokens *helpers.TokenIssuer, logger *slog.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register creates the account, gives it the default profile and signs a token.
func (us *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	user := &models.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.TrimSpace(req.Email),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Password:  req.Password,
	}
	if err := models.Validate.Struct(user); err != nil {
		return nil, err
	}

	if _, err := us.userRepo.GetUserByEmail(ctx, user.Email); err == nil {
		return nil, ErrEmailTaken
	}
	if _, err := us.userRepo.GetUserByUsername(ctx, user.Username); err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	created, err := us.userRepo.CreateUser(ctx, user)
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		return nil, ErrEmailTaken
	case errors.Is(err, models.ErrDuplicateUsername):
		return nil, ErrUsernameTaken
	case err != nil:
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := us.profileRepo.CreateProfile(ctx, models.DefaultProfile(created.ID)); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	token, err := us.tokens.Issue(created)
	if err != nil {
		return nil, err
	}

	us.logger.InfoContext(ctx, "User registered", "user_id", created.ID)
	return &models.AuthResponse{User: created.Public(), Token: token}, nil
}

// Login answers ErrInvalidCredentials for both an unknown email and a wrong password.
func (us *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := us.userRepo.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !helpers.CheckPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := us.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user.Public(), Token: token}, nil
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	user, err := us.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}
