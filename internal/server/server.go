package server

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"careerbridge.org/jobfairhub/internal/middleware"
	"careerbridge.org/jobfairhub/pkg/storage"

	contentHttp "careerbridge.org/jobfairhub/internal/modules/content/delivery/http"
	contentRepo "careerbridge.org/jobfairhub/internal/modules/content/repository"
	contentService "careerbridge.org/jobfairhub/internal/modules/content/service"

	dashboardHttp "careerbridge.org/jobfairhub/internal/modules/dashboard/delivery/http"
	dashboardService "careerbridge.org/jobfairhub/internal/modules/dashboard/service"

	mediaHttp "careerbridge.org/jobfairhub/internal/modules/media/delivery/http"
	mediaService "careerbridge.org/jobfairhub/internal/modules/media/service"

	registrationHttp "careerbridge.org/jobfairhub/internal/modules/registration/delivery/http"
	registrationRepo "careerbridge.org/jobfairhub/internal/modules/registration/repository"
	registrationService "careerbridge.org/jobfairhub/internal/modules/registration/service"

	userHttp "careerbridge.org/jobfairhub/internal/modules/user/delivery/http"
	userRepo "careerbridge.org/jobfairhub/internal/modules/user/repository"
	userService "careerbridge.org/jobfairhub/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(db *gorm.DB) *Server {
	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	users := userRepo.NewUserRepository(db)
	authSvc := userService.NewAuthService(users)
	authHandler := userHttp.NewAuthHandler(authSvc)

	registrations := registrationRepo.NewRegistrationRepository(db)
	registrationSvc := registrationService.NewRegistrationService(registrations)
	registrationHandler := registrationHttp.NewRegistrationHandler(registrationSvc)

	dashboardSvc := dashboardService.NewDashboardService(registrations)
	dashboardHandler := dashboardHttp.NewDashboardHandler(dashboardSvc)

	contents := contentRepo.NewContentRepository(db)
	contentSvc := contentService.NewContentService(contents, imageStorage)
	contentHandler := contentHttp.NewContentHandler(contentSvc)

	// Media tooling is optional: each backend stands on its own API key, and
	// a missing key only disables that backend's route.
	var transcriber mediaService.Transcriber
	if t, err := mediaService.NewGeminiTranscriber(context.Background()); err != nil {
		log.Printf("transcription disabled: %v", err)
	} else {
		transcriber = t
	}

	var speech mediaService.SpeechSynthesizer
	if sp, err := mediaService.NewOpenAISpeech(); err != nil {
		log.Printf("voiceover disabled: %v", err)
	} else {
		speech = sp
	}

	router := gin.New()

	setupCORS(router)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(users)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	api.POST("/registrations", registrationHandler.Register)

	contentGroup := api.Group("/content")
	{
		contentGroup.GET("/events", contentHandler.GetEvents)
		contentGroup.GET("/programs", contentHandler.GetPrograms)
		contentGroup.GET("/stats", contentHandler.GetImpactStats)
		contentGroup.GET("/gallery", contentHandler.GetGallery)
	}

	// Admin routes (auth + admin role, both re-resolved on every request)
	adminGroup := api.Group("/admin")
	adminGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		adminGroup.GET("/registrations", registrationHandler.GetAll)
		adminGroup.GET("/registrations/stats", dashboardHandler.GetStats)
		adminGroup.GET("/registrations/export", dashboardHandler.ExportCSV)

		adminGroup.POST("/gallery", contentHandler.UploadGalleryImage)
		adminGroup.DELETE("/gallery/:id", contentHandler.DeleteGalleryImage)

		registerMediaRoutes(adminGroup, transcriber, speech)
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

// registerMediaRoutes wires whichever media backends are configured. A nil
// backend just leaves its route unregistered.
func registerMediaRoutes(group *gin.RouterGroup, transcriber mediaService.Transcriber, speech mediaService.SpeechSynthesizer) {
	if transcriber == nil && speech == nil {
		return
	}

	h := mediaHttp.NewMediaHandler(mediaService.NewMediaService(transcriber, speech))
	if transcriber != nil {
		group.POST("/media/transcribe", h.Transcribe)
	}
	if speech != nil {
		group.POST("/media/voiceover", h.GenerateVoiceover)
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine) {
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
