package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/helpers"
	"github.com/joshua-takyi/wearorithm/internal/middleware"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
)

// clientErrors are answered verbatim with the given status.
var clientErrors = []struct {
	err    error
	status int
	msg    string
}{
	{services.ErrEmailTaken, http.StatusBadRequest, "User already exists with this email"},
	{services.ErrUsernameTaken, http.StatusBadRequest, "Username already taken"},
	{services.ErrPasswordMismatch, http.StatusBadRequest, "Passwords don't match"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{services.ErrNoImage, http.StatusBadRequest, "No image file provided"},
	{services.ErrNotAnImage, http.StatusBadRequest, "Only image files are allowed"},
	{services.ErrImageTooLarge, http.StatusBadRequest, "File too large"},
	{services.ErrRecommendationFailed, http.StatusInternalServerError, "Failed to generate outfit recommendations"},
	{services.ErrAnalysisFailed, http.StatusInternalServerError, "Failed to analyze outfit image"},
	{services.ErrPaletteFailed, http.StatusInternalServerError, "Failed to generate color palette"},
}

// respondError maps a service error onto a status code and a {message} body.
// notFound is the message used for models.ErrNotFound.
func respondError(c *gin.Context, err error, notFound string) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			if ce.status >= http.StatusInternalServerError {
				_ = c.Error(err)
			}
			c.JSON(ce.status, helpers.ErrorResponse(ce.msg))
			return
		}
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, helpers.ErrorResponse(notFound))
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(verrs.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, helpers.ErrorResponse(msg))
}

// currentUserID reads the id of the authenticated caller. It answers 401
// itself and returns false when there is none.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.UserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("Access token required"))
		return uuid.Nil, false
	}
	claims, ok := value.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("Invalid user claims"))
		return uuid.Nil, false
	}
	id, err := claims.ID()
	if err != nil {
		c.JSON(http.StatusForbidden, helpers.ErrorResponse("Invalid or expired token"))
		return uuid.Nil, false
	}
	return id, true
}

func paramID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
	if err != nil {
		badRequest(c, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
