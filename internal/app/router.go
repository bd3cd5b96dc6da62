package app

import (
	"likebike_backend/internal/config"
	"likebike_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires the real-backend API. Paths carry no /api prefix;
// clients hit the service root directly.
func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	// Public routes.
	router.GET("/health", c.health.HealthCheck)
	router.GET("/news", c.news.List)

	users := router.Group("/users")
	{
		users.POST("", c.auth.Login)
		users.POST("/refresh", c.auth.Refresh)
		users.POST("/logout", c.auth.Logout)
	}

	// Authenticated routes.
	auth := router.Group("")
	auth.Use(middleware.AuthMiddleware(cfg))
	{
		auth.GET("/users/profile", c.user.Profile)
		auth.GET("/users/:id/level", c.user.Level)
		auth.GET("/users/rewards", c.user.Rewards)
		auth.PUT("/users/score", c.user.UpdateScore)

		auth.GET("/quizzes", c.quiz.List)
		auth.GET("/quizzes/today/status", c.quiz.TodayStatus)
		auth.POST("/quizzes/:id/attempt", c.quiz.Attempt)

		auth.GET("/users/bike-logs", c.bikeLog.List)
		auth.POST("/users/bike-logs", c.bikeLog.Create)
		auth.GET("/users/bike-logs/today/count", c.bikeLog.TodayCount)

		auth.GET("/users/course-recommendations", c.course.List)
		auth.POST("/users/course-recommendations", c.course.Create)
		auth.GET("/users/course-recommendations/week/count", c.course.WeekCount)
	}
}
