package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

const multipartSlack = 1 << 20

// AnalyzeImage accepts a multipart upload in the "image" field.
func AnalyzeImage(a *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		limit := a.MaxBytes()
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartSlack)

		header, err := c.FormFile("image")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(c, services.ErrImageTooLarge, "")
				return
			}
			respondError(c, services.ErrNoImage, "")
			return
		}
		if header.Size > limit {
			respondError(c, services.ErrImageTooLarge, "")
			return
		}

		file, err := header.Open()
		if err != nil {
			respondError(c, err, "")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, limit+1))
		if err != nil {
			respondError(c, err, "")
			return
		}

		analysis, err := a.Analyze(c.Request.Context(), userID, data)
		if err != nil {
			respondError(c, err, "Analysis not found")
			return
		}
		c.JSON(http.StatusOK, analysis)
	}
}

func ListAnalyses(a *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		analyses, err := a.List(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Analysis not found")
			return
		}
		c.JSON(http.StatusOK, analyses)
	}
}
