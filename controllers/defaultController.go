package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the LUXERA API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

PRODUCTS
- GET "/api/products" - List active products (supports search, category, sort)
- GET "/api/products/featured" - List featured products
- GET "/api/products/:id" - Get product by ID

CART
- GET "/api/cart/:sessionId" - Get the session cart
- POST "/api/cart/:sessionId/items" - Add a product to the cart
- PUT "/api/cart/:sessionId/items/:productId" - Update quantity
- DELETE "/api/cart/:sessionId/items/:productId" - Remove a product
- DELETE "/api/cart/:sessionId" - Clear the cart

ORDERS
- POST "/api/orders" - Create an order, returns a WhatsApp handoff link

ADMIN
- POST "/api/admin/login" - Admin login
- GET "/api/admin/orders" - List all orders
- POST "/api/admin/products" - Create product
- PUT "/api/admin/products/:id" - Update product
- DELETE "/api/admin/products/:id" - Soft-delete product
- POST "/api/admin/products/:id/images" - Upload product images`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
