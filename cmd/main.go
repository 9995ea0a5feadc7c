package main

import (
	"fmt"
	"os"
	"time"

	"github.com/nextsteps-app/nextsteps-backend/internal/db"
	"github.com/nextsteps-app/nextsteps-backend/internal/handlers"
	"github.com/nextsteps-app/nextsteps-backend/internal/logger"
	"github.com/nextsteps-app/nextsteps-backend/internal/middleware"
	"github.com/nextsteps-app/nextsteps-backend/internal/repos"
	"github.com/nextsteps-app/nextsteps-backend/internal/server"
	"github.com/nextsteps-app/nextsteps-backend/internal/services"
	"github.com/nextsteps-app/nextsteps-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	profileRepo := repos.NewProfileRepo(thePG, log)
	roadmapRepo := repos.NewRoadmapRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	ollamaClient := services.NewOllamaClient(log)
	roadmapProvider := services.NewRoadmapProvider(log, ollamaClient)
	authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	profileService := services.NewProfileService(thePG, log, profileRepo, userRepo)
	roadmapService := services.NewRoadmapService(thePG, log, roadmapProvider, userRepo, roadmapRepo)
	dashboardService := services.NewDashboardService(log, profileService, roadmapRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	roadmapHandler := handlers.NewRoadmapHandler(log, roadmapService)
	dashboardHandler := handlers.NewDashboardHandler(log, dashboardService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:      authHandler,
		AuthMiddleware:   authMiddleware,
		ProfileHandler:   profileHandler,
		RoadmapHandler:   roadmapHandler,
		DashboardHandler: dashboardHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
