package routes

import (
	"github.com/Luxera/luxera-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	carts := server.Group("/api/cart/:sessionId")
	{
		carts.GET("", controllers.GetCart)
		carts.POST("/items", controllers.AddCartItem)
		carts.PUT("/items/:productId", controllers.UpdateCartItem)
		carts.DELETE("/items/:productId", controllers.RemoveCartItem)
		carts.DELETE("", controllers.ClearCart)
	}
}
