package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/helpers"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

const outfitNotFound = "Outfit not found"

func Recommend(o *services.OutfitService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req models.RecommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		outfits, err := o.Recommend(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err, outfitNotFound)
			return
		}
		c.JSON(http.StatusOK, outfits)
	}
}

func ListOutfits(o *services.OutfitService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		outfits, err := o.List(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, outfitNotFound)
			return
		}
		c.JSON(http.StatusOK, outfits)
	}
}

func GetOutfit(o *services.OutfitService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		outfit, err := o.Get(c.Request.Context(), userID, id)
		if err != nil {
			respondError(c, err, outfitNotFound)
			return
		}
		c.JSON(http.StatusOK, outfit)
	}
}

func DeleteOutfit(o *services.OutfitService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		if err := o.Delete(c.Request.Context(), userID, id); err != nil {
			respondError(c, err, outfitNotFound)
			return
		}
		c.JSON(http.StatusOK, helpers.MessageResponse("Outfit deleted successfully"))
	}
}
