package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

// FavouriteService flags a user's saved outfits as favourites.
type FavouriteService struct {
	outfits *OutfitService
	repo    models.OutfitRepo
}

func NewFavouriteService(outfits *OutfitService, repo models.OutfitRepo) *FavouriteService {
	return &FavouriteService{
		outfits: outfits,
		repo:    repo,
	}
}

func (fs *FavouriteService) SetFavourite(ctx context.Context, userID, outfitID uuid.UUID, favourite bool) (*models.Outfit, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	if _, err := fs.outfits.Get(ctx, userID, outfitID); err != nil {
		return nil, err
	}
	return fs.repo.UpdateOutfit(ctx, outfitID, models.OutfitUpdate{IsFavorite: &favourite})
}

func (fs *FavouriteService) ListFavourites(ctx context.Context, userID uuid.UUID) ([]*models.Outfit, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	outfits, err := fs.outfits.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	favourites := make([]*models.Outfit, 0, len(outfits))
	for _, o := range outfits {
		if o.IsFavorite {
			favourites = append(favourites, o)
		}
	}
	return favourites, nil
}
