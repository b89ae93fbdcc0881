package routes

import (
	"github.com/Luxera/luxera-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/api/orders", controllers.CreateOrder)
}
