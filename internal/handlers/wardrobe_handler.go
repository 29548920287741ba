package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/helpers"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

const itemNotFound = "Item not found"

func ListWardrobe(w *services.WardrobeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		items, err := w.List(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, itemNotFound)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func CreateWardrobeItem(w *services.WardrobeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req models.WardrobeItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		item, err := w.Create(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err, itemNotFound)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func UpdateWardrobeItem(w *services.WardrobeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		var update models.WardrobeItemUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			badRequest(c, err.Error())
			return
		}

		item, err := w.Update(c.Request.Context(), userID, id, update)
		if err != nil {
			respondError(c, err, itemNotFound)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func DeleteWardrobeItem(w *services.WardrobeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		if err := w.Delete(c.Request.Context(), userID, id); err != nil {
			respondError(c, err, itemNotFound)
			return
		}
		c.JSON(http.StatusOK, helpers.MessageResponse("Item deleted successfully"))
	}
}
