package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter собирает роутер подсистемы отметки посещаемости
func NewRouter(handler *AttendanceHandler, jwtSecret string, environment string, logger *zap.Logger) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/attendance")
	api.Use(AuthMiddleware(jwtSecret, logger))
	{
		api.POST("/sessions", handler.IssueSession)
		api.POST("/check-in", handler.CheckIn)
	}

	return router
}
