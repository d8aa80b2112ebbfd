package app

import (
	"quizdeck_backend/docs"
	"quizdeck_backend/internal/config"
	"quizdeck_backend/internal/middleware"
	"quizdeck_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.GET("/leaderboard", c.user.Leaderboard)

		// Quiz catalog and authoring
		authGroup.GET("/quizzes", c.quiz.ListQuizzes)
		authGroup.POST("/quizzes", c.quiz.CreateQuiz)
		authGroup.GET("/quizzes/mine", c.quiz.ListOwnQuizzes)
		authGroup.GET("/quizzes/:id", c.quiz.GetQuiz)
		authGroup.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
		authGroup.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)
		authGroup.POST("/quizzes/:id/bookmark", c.quiz.ToggleBookmark)
		authGroup.PUT("/quizzes/:id/rating", c.quiz.RateQuiz)

		// Attempts
		authGroup.POST("/quizzes/:id/attempts", c.attempt.SubmitAttempt)

		// User-scoped reads; each handler verifies the session owns userId
		authGroup.PUT("/users/:userId/profile", c.user.UpdateProfile)
		authGroup.GET("/users/:userId/bookmarks", c.user.ListBookmarks)
		authGroup.GET("/users/:userId/attempts", c.attempt.ListAttempts)
		authGroup.GET("/users/:userId/analytics/weekly", c.analytics.WeeklyProgress)
		authGroup.GET("/users/:userId/analytics/categories", c.analytics.CategoryPerformance)
		authGroup.GET("/users/:userId/stats", c.analytics.UserStats)
	}
}
