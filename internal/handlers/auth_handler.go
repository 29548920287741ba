package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

func Register(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		res, err := u.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		res, err := u.Login(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// Me returns the authenticated user.
func Me(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		user, err := u.GetUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
