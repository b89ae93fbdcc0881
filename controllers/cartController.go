package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Luxera/luxera-api/cart"
	"github.com/Luxera/luxera-api/initializers"
	"github.com/Luxera/luxera-api/logger"
	"github.com/Luxera/luxera-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgFailedToUpdateCart = "Failed to update cart"

var cartStore *cart.Store

// InitCartStore wires the cart persistence port; called once from main.
func InitCartStore(store *cart.Store) {
	cartStore = store
}

type addCartItemInput struct {
	ProductID       uint              `json:"product_id" binding:"required"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selected_options"`
}

type updateCartItemInput struct {
	Quantity int `json:"quantity"`
}

func cartSummary(c cart.Cart) gin.H {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	return gin.H{
		"items":       items,
		"total_items": c.TotalItems(),
		"total_price": c.TotalPrice(),
	}
}

// GetCart returns the session cart. Unknown sessions get an empty cart.
func GetCart(ctx *gin.Context) {
	c, err := cartStore.Get(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		logger.Error().Err(err).Msg("Cart load failed")
		sendError(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	sendSuccess(ctx, cartSummary(c))
}

// AddCartItem snapshots the current product into the cart. Lines with
// the same product and options merge; the quantity defaults to 1.
func AddCartItem(ctx *gin.Context) {
	var input addCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	var product models.Product
	result := initializers.DB.
		Where("id = ? AND is_active = ?", input.ProductID, true).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendError(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			logger.Error().Err(result.Error).Uint("product_id", input.ProductID).Msg("Product lookup failed")
			sendError(ctx, http.StatusInternalServerError, msgFailedToUpdateCart)
		}
		return
	}

	c, err := cartStore.Add(ctx.Request.Context(), ctx.Param("sessionId"), product, input.Quantity, input.SelectedOptions)
	if err != nil {
		logger.Error().Err(err).Msg("Cart save failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToUpdateCart)
		return
	}

	sendSuccess(ctx, cartSummary(c))
}

// UpdateCartItem sets the quantity for a product; zero or less removes
// it. Matching is by product id only, across all option variants.
func UpdateCartItem(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	var input updateCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	c, err := cartStore.UpdateQuantity(ctx.Request.Context(), ctx.Param("sessionId"), uint(productID), input.Quantity)
	if err != nil {
		logger.Error().Err(err).Msg("Cart save failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToUpdateCart)
		return
	}

	sendSuccess(ctx, cartSummary(c))
}

// RemoveCartItem drops every line for the product, regardless of
// selected options.
func RemoveCartItem(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	c, err := cartStore.Remove(ctx.Request.Context(), ctx.Param("sessionId"), uint(productID))
	if err != nil {
		logger.Error().Err(err).Msg("Cart save failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToUpdateCart)
		return
	}

	sendSuccess(ctx, cartSummary(c))
}

// ClearCart empties the session cart, typically after an order handoff.
func ClearCart(ctx *gin.Context) {
	if err := cartStore.Clear(ctx.Request.Context(), ctx.Param("sessionId")); err != nil {
		logger.Error().Err(err).Msg("Cart clear failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToUpdateCart)
		return
	}
	sendSuccess(ctx, nil)
}
