package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

func CreateFeedback(f *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req models.FeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		feedback, err := f.Create(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err, "Feedback not found")
			return
		}
		c.JSON(http.StatusOK, feedback)
	}
}

func ListFeedback(f *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		feedback, err := f.List(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Feedback not found")
			return
		}
		c.JSON(http.StatusOK, feedback)
	}
}
