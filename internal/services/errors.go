package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords don't match")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrUsernameTaken      = errors.New("username already taken")

	ErrNoImage       = errors.New("no image file provided")
	ErrImageTooLarge = errors.New("file too large")
	ErrNotAnImage    = errors.New("only image files are allowed")

	ErrRecommendationFailed = errors.New("failed to generate outfit recommendations")
	ErrAnalysisFailed       = errors.New("failed to analyze outfit image")
	ErrPaletteFailed        = errors.New("failed to generate color palette")
)
