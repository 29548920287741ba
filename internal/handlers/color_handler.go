package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

func Palette(s *services.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			BaseColors any `json:"baseColors"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "baseColors must be an array")
			return
		}

		raw, ok := body.BaseColors.([]any)
		if !ok {
			badRequest(c, "baseColors must be an array")
			return
		}
		baseColors := make([]string, 0, len(raw))
		for _, v := range raw {
			color, ok := v.(string)
			if !ok {
				badRequest(c, "baseColors must be an array of strings")
				return
			}
			baseColors = append(baseColors, color)
		}

		palette, err := s.Palette(c.Request.Context(), baseColors)
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, models.PaletteResponse{ComplementaryColors: palette})
	}
}
