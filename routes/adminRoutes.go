package routes

import (
	"github.com/Luxera/luxera-api/controllers"
	"github.com/Luxera/luxera-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	server.POST("/api/admin/login", controllers.AdminLogin)

	admin := server.Group("/api/admin", middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetOrders)
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/products/:id/images", controllers.UploadProductImages)
	}
}
