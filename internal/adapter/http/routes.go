package http

import (
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/handlers"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/priority/:level", taskHandler.ListTasksByPriority)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.POST("", taskHandler.CreateTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
