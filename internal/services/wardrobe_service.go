package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/helpers"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

type WardrobeService struct {
	wardrobeRepo models.WardrobeRepo
}

func NewWardrobeService(wardrobeRepo models.WardrobeRepo) *WardrobeService {
	return &WardrobeService{wardrobeRepo: wardrobeRepo}
}

func (ws *WardrobeService) List(ctx context.Context, userID uuid.UUID) ([]*models.WardrobeItem, error) {
	return ws.wardrobeRepo.ListWardrobeItems(ctx, userID)
}

func (ws *WardrobeService) Create(ctx context.Context, userID uuid.UUID, req models.WardrobeItemRequest) (*models.WardrobeItem, error) {
	item := &models.WardrobeItem{
		UserID:    userID,
		Name:      helpers.StringTrim(req.Name),
		Category:  req.Category,
		Colors:    helpers.RemoveDuplicates(req.Colors),
		ImageURL:  req.ImageURL,
		Brand:     req.Brand,
		Size:      req.Size,
		Purchased: req.Purchased,
		Tags:      helpers.RemoveDuplicates(req.Tags),
	}
	if err := models.Validate.Struct(item); err != nil {
		return nil, err
	}
	return ws.wardrobeRepo.CreateWardrobeItem(ctx, item)
}

// owned returns ErrNotFound unless the item exists and belongs to userID.
func (ws *WardrobeService) owned(ctx context.Context, userID, id uuid.UUID) error {
	item, err := ws.wardrobeRepo.GetWardrobeItem(ctx, id)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return fmt.Errorf("wardrobe item %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (ws *WardrobeService) Update(ctx context.Context, userID, id uuid.UUID, update models.WardrobeItemUpdate) (*models.WardrobeItem, error) {
	if err := models.Validate.Struct(update); err != nil {
		return nil, err
	}
	if err := ws.owned(ctx, userID, id); err != nil {
		return nil, err
	}
	if update.Colors != nil {
		colors := helpers.RemoveDuplicates(*update.Colors)
		update.Colors = &colors
	}
	if update.Tags != nil {
		tags := helpers.RemoveDuplicates(*update.Tags)
		update.Tags = &tags
	}
	return ws.wardrobeRepo.UpdateWardrobeItem(ctx, id, update)
}

func (ws *WardrobeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := ws.owned(ctx, userID, id); err != nil {
		return err
	}
	return ws.wardrobeRepo.DeleteWardrobeItem(ctx, id)
}
