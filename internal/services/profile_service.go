package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

type ProfileService struct {
	profileRepo models.ProfileRepo
}

func NewProfileService(profileRepo models.ProfileRepo) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get returns the user's profile, creating the default one on first access.
func (ps *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	profile, err := ps.profileRepo.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	profile, err = ps.profileRepo.CreateProfile(ctx, models.DefaultProfile(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to create default profile: %w", err)
	}
	return profile, nil
}

func (ps *ProfileService) Update(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.UserProfile, error) {
	if err := models.Validate.Struct(update); err != nil {
		return nil, err
	}
	if _, err := ps.Get(ctx, userID); err != nil {
		return nil, err
	}
	return ps.profileRepo.UpdateProfile(ctx, userID, update)
}
