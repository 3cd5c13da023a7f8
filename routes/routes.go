// File: /routes/routes.go
package routes

import (
	"net/http"

	"comments-api/config"
	"comments-api/controllers"
	"comments-api/middleware"
	"comments-api/repositories"
	"comments-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	commentService := services.NewCommentService(commentRepo, userRepo)

	// Controllers
	authController := controllers.NewAuthController(authService)
	commentController := controllers.NewCommentController(commentService)

	r.GET("/ping", func(c *gin.Context) {
		status, dbStatus := http.StatusOK, "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, dbStatus = http.StatusServiceUnavailable, "down"
		}
		c.JSON(status, gin.H{
			"message":  "pong",
			"database": dbStatus,
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.ValidateJSON())

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		comments := protected.Group("/comments")
		{
			comments.POST("/add", commentController.CreateComment)
			comments.GET("", commentController.GetComments)
			comments.GET("/:id", commentController.GetComment)
			comments.PATCH("/:id", commentController.UpdateComment)
		}
	}
}

// SetupCORS allows browser clients on any origin to call the API with a bearer token.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Max-Age", "43200")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
