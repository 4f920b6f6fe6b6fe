package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	// The SPA frontend is served from a different origin; the API
	// carries no credentials, so a permissive CORS policy is fine.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/logs", s.handleAddLog)
		api.GET("/logs/:date", s.handleGetDay)
		api.GET("/reports/:period", s.handleReport)
		api.GET("/advice", s.handleAdvice)
		api.POST("/advice/reload", s.handleReload)
		api.GET("/ads/banner", s.handleBanner)
	}

	return router
}
