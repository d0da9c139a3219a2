package router

import (
	"cocinacasera/internal/auth"

	"github.com/gin-gonic/gin"
)

func NewRouter(service *auth.Service) *gin.Engine {
	r := gin.Default()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	handler := auth.NewHandler(service)
	r.POST("/auth/anonymous", handler.Anonymous)
	r.POST("/auth/login", handler.Login)

	return r
}
