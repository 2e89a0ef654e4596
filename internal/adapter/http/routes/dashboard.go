package routes

import (
	"sistemaos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDashboard = "/dashboard"

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/status-count", dashboardHandler.StatusCount)
	}
}
