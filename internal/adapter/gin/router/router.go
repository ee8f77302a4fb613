package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-seed-service/internal/adapter/gin/handler"
	"user-seed-service/internal/adapter/gin/middleware"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	fruitHandler *handler.FruitHandler,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "user-seed-service",
		})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		fruits := v1.Group("/fruits")
		{
			fruits.POST("", fruitHandler.CreateFruit)
			fruits.GET("", fruitHandler.ListFruits)
			fruits.GET("/:id", fruitHandler.GetFruit)
			fruits.PUT("/:id", fruitHandler.UpdateFruit)
			fruits.DELETE("/:id", fruitHandler.DeleteFruit)
		}
	}

	return router
}
