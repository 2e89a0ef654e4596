package routes

import (
	"sistemaos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/orders"

func addOrderRoutes(staff, admin *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := staff.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.ListAll)
		orders.GET("/assignee/:assigneeId", orderHandler.ListByAssignee)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PUT("/:id", orderHandler.Update)
		orders.GET("/:id/pdf", orderHandler.RenderPDF)
	}

	// Revenue reporting is restricted to administrators.
	admin.GET(PathOrders+"/report", orderHandler.Report)
}
