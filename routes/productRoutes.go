package routes

import (
	"github.com/Luxera/luxera-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	products := server.Group("/api/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/featured", controllers.GetFeaturedProducts)
		products.GET("/:id", controllers.GetProduct)
	}
}
