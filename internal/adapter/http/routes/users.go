package routes

import (
	"sistemaos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathUsers = "/users"

// Account management is restricted to administrators.
func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.FindAll)
		users.GET("/:id", userHandler.GetByID)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}
}
