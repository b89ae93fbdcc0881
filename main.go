package main

import (
	"time"

	"github.com/Luxera/luxera-api/cart"
	"github.com/Luxera/luxera-api/config"
	"github.com/Luxera/luxera-api/controllers"
	"github.com/Luxera/luxera-api/initializers"
	"github.com/Luxera/luxera-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.ConnectToRedis()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     config.App.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	controllers.InitCartStore(cart.NewStore(cart.NewRedisStorage(initializers.Redis)))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.AdminRoutes(server)

	server.Run(":" + config.App.Server.Port)
}
