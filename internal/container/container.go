package container

import (
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"github.com/joshua-takyi/wearorithm/internal/config"
	"github.com/joshua-takyi/wearorithm/internal/helpers"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/services"
	"github.com/joshua-takyi/wearorithm/internal/stylist"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config
	Tokens *helpers.TokenIssuer

	Store   *models.MemoryRepo
	Stylist stylist.Stylist

	UserService       *services.UserService
	ProfileService    *services.ProfileService
	OutfitService     *services.OutfitService
	FavouritesService *services.FavouriteService
	WardrobeService   *services.WardrobeService
	AnalysisService   *services.AnalysisService
	ColorService      *services.ColorService
	FeedbackService   *services.FeedbackService
}

// NewContainer wires store, stylist and services. A nil geminiClient selects
// the mock stylist.
func NewContainer(logger *slog.Logger, cfg *config.Config, geminiClient *genai.Client) *Container {
	store := models.NewMemoryRepo()
	tokens := helpers.NewTokenIssuer(cfg.SessionSecret, cfg.TokenTTL)

	st := stylist.New(geminiClient, stylist.Options{
		Model:           cfg.GeminiModel,
		FastModel:       cfg.GeminiFastModel,
		Timeout:         cfg.StylistTimeout,
		Rate:            cfg.StylistRate,
		Burst:           cfg.StylistBurst,
		BreakerFailures: cfg.StylistBreakerFailures,
	}, logger)

	profileService := services.NewProfileService(store)
	outfitService := services.NewOutfitService(store, profileService, st, logger)

	return &Container{
		Logger:            logger,
		Config:            cfg,
		Tokens:            tokens,
		Store:             store,
		Stylist:           st,
		UserService:       services.NewUserService(store, store, tokens, logger),
		ProfileService:    profileService,
		OutfitService:     outfitService,
		FavouritesService: services.NewFavouriteService(outfitService, store),
		WardrobeService:   services.NewWardrobeService(store),
		AnalysisService:   services.NewAnalysisService(store, st, cfg.MaxUploadBytes, logger),
		ColorService:      services.NewColorService(st, logger),
		FeedbackService:   services.NewFeedbackService(store, store, logger),
	}
}
