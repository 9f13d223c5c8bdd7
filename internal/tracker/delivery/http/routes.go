package http

import (
	"github.com/gin-gonic/gin"

	"timetable-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.DetailTask)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.POST("/:id/toggle", h.ToggleCompletion)
		tasks.GET("/:id/streak", h.TaskStreak)
	}

	rg.GET("/progress", h.ListProgress)
	rg.GET("/today", h.Today)

	stats := rg.Group("/stats")
	{
		stats.GET("/daily", h.DailyStats)
		stats.GET("/weekly", h.WeeklyStats)
		stats.GET("/range", h.RangeStats)
		stats.GET("/monthly", h.MonthlyStats)
		stats.GET("/streak", h.OverallStreak)
		stats.GET("/heatmap", h.Heatmap)
		stats.GET("/trend", h.Trend)
		stats.GET("/months", h.Months)
		stats.GET("/breakdown", h.Breakdown)
		stats.GET("/dashboard", h.Dashboard)
		stats.GET("/totals", h.Totals)
	}
}
