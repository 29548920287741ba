package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wearorithm/internal/container"
	"github.com/joshua-takyi/wearorithm/internal/handlers"
	"github.com/joshua-takyi/wearorithm/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = container.Config.MaxUploadBytes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health())

		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitByIP(container.Config.AuthRateLimit, container.Config.AuthRateWindow))
		auth.POST("/register", handlers.Register(container.UserService))
		auth.POST("/login", handlers.Login(container.UserService))
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(container.Tokens, container.Logger))
	{
		protected.GET("/auth/me", handlers.Me(container.UserService))

		protected.GET("/profile", handlers.GetProfile(container.ProfileService))
		protected.PUT("/profile", handlers.UpdateProfile(container.ProfileService))

		protected.POST("/recommendations", handlers.Recommend(container.OutfitService))

		outfitRoutes := protected.Group("/outfits")
		{
			outfitRoutes.GET("", handlers.ListOutfits(container.OutfitService))
			outfitRoutes.GET("/:id", handlers.GetOutfit(container.OutfitService))
			outfitRoutes.DELETE("/:id", handlers.DeleteOutfit(container.OutfitService))
			outfitRoutes.PUT("/:id/favorite", handlers.SetFavourite(container.FavouritesService))
		}
		protected.GET("/favorites", handlers.ListFavourites(container.FavouritesService))

		protected.POST("/analyze-image", handlers.AnalyzeImage(container.AnalysisService))
		protected.GET("/analyses", handlers.ListAnalyses(container.AnalysisService))

		wardrobeRoutes := protected.Group("/wardrobe")
		{
			wardrobeRoutes.GET("", handlers.ListWardrobe(container.WardrobeService))
			wardrobeRoutes.POST("", handlers.CreateWardrobeItem(container.WardrobeService))
			wardrobeRoutes.PUT("/:id", handlers.UpdateWardrobeItem(container.WardrobeService))
			wardrobeRoutes.DELETE("/:id", handlers.DeleteWardrobeItem(container.WardrobeService))
		}

		protected.POST("/colors/palette", handlers.Palette(container.ColorService))

		protected.GET("/feedback", handlers.ListFeedback(container.FeedbackService))
		protected.POST("/feedback", handlers.CreateFeedback(container.FeedbackService))
	}

	return r
}
