package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

// SetFavourite handles PUT /outfits/:id/favorite with {"isFavorite": bool}.
func SetFavourite(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		var req models.FavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		outfit, err := f.SetFavourite(c.Request.Context(), userID, id, *req.IsFavorite)
		if err != nil {
			respondError(c, err, outfitNotFound)
			return
		}
		c.JSON(http.StatusOK, outfit)
	}
}

func ListFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		outfits, err := f.ListFavourites(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, outfitNotFound)
			return
		}
		c.JSON(http.StatusOK, outfits)
	}
}
