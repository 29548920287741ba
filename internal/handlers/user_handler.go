package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

func GetProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		profile, err := p.Get(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Profile not found")
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfile applies a partial update; omitted fields keep their values.
func UpdateProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var update models.ProfileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			badRequest(c, err.Error())
			return
		}

		profile, err := p.Update(c.Request.Context(), userID, update)
		if err != nil {
			respondError(c, err, "Profile not found")
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
