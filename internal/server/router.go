package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nextsteps-app/nextsteps-backend/internal/handlers"
	"github.com/nextsteps-app/nextsteps-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	ProfileHandler   *handlers.ProfileHandler
	RoadmapHandler   *handlers.RoadmapHandler
	DashboardHandler *handlers.DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")

	// Public
	api.GET("/health", handlers.HealthCheck)
	api.POST("/auth/register", cfg.AuthHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.GET("/profile/:userId", cfg.ProfileHandler.GetProfile)
	protected.PUT("/profile", cfg.ProfileHandler.UpsertProfile)
	protected.POST("/roadmaps/generate", cfg.RoadmapHandler.Generate)
	protected.GET("/roadmaps/user/:userId", cfg.RoadmapHandler.GetUserRoadmaps)
	protected.GET("/roadmaps/:roadmapId", cfg.RoadmapHandler.GetRoadmap)
	protected.DELETE("/roadmaps/:roadmapId", cfg.RoadmapHandler.DeleteRoadmap)
	protected.GET("/dashboard/:userId", cfg.DashboardHandler.GetDashboard)

	return router
}
