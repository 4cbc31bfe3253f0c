package http

import (
	"github.com/gin-gonic/gin"

	"tasklist/internal/adapter/http/handlers"
	"tasklist/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, projectHandler *handlers.ProjectHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	projects := r.Group("/projects")
	projects.Use(middleware.LanguageMiddleware())
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/view_by_deadline", projectHandler.ViewByDeadline)
		projects.GET("/today", projectHandler.DueToday)
		projects.POST("/:project/tasks", projectHandler.CreateTask)
		projects.PUT("/:project/tasks/:taskId", projectHandler.UpdateDeadline)
		projects.PUT("/:project/tasks/:taskId/done", projectHandler.CheckTask)
		projects.DELETE("/:project/tasks/:taskId/done", projectHandler.UncheckTask)
	}
}
