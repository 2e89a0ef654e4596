package routes

import (
	"sistemaos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathProducts = "/products"
	PathServices = "/services"
)

func addCatalogRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, productHandler *handlers.ProductHandler, serviceHandler *handlers.ServiceHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.FindAll)
		clients.GET("/:id", clientHandler.GetByID)
		clients.GET("/document/:document", clientHandler.GetByDocument)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.Create)
		products.GET("", productHandler.FindAll)
		products.GET("/:id", productHandler.GetByID)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.Create)
		services.GET("", serviceHandler.FindAll)
		services.GET("/:id", serviceHandler.GetByID)
		services.PUT("/:id", serviceHandler.Update)
		services.DELETE("/:id", serviceHandler.Delete)
	}
}
