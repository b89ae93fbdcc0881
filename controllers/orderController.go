package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Luxera/luxera-api/checkout"
	"github.com/Luxera/luxera-api/config"
	"github.com/Luxera/luxera-api/initializers"
	"github.com/Luxera/luxera-api/logger"
	"github.com/Luxera/luxera-api/models"
	"github.com/Luxera/luxera-api/whatsapp"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

const (
	msgFailedToCreateOrder = "Failed to create order"
	msgFailedToFetchOrders = "Failed to fetch orders"
)

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CreateOrder validates the checkout form, resolves the current product
// price server-side, persists the order and returns the WhatsApp handoff
// link. There is no idempotency key: a duplicate submission produces a
// duplicate order row.
func CreateOrder(ctx *gin.Context) {
	var input models.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	if fieldErrs := checkout.Validate(input.Form); len(fieldErrs) > 0 {
		sendError(ctx, http.StatusBadRequest, joinFieldErrors(fieldErrs))
		return
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
			sendError(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		}
		return
	}

	order := models.Order{
		CustomerName:    input.CustomerName,
		MobileNumber:    input.MobileNumber,
		WhatsappNumber:  nullable(input.WhatsappNumber),
		Email:           nullable(input.Email),
		DeliveryAddress: input.DeliveryAddress,
		City:            input.City,
		Province:        input.Province,
		ProductID:       product.ID,
		ProductName:     product.Name,
		Quantity:        input.Quantity,
		UnitPrice:       product.Price,
		TotalAmount:     product.Price * input.Quantity,
		OrderStatus:     "pending",
	}

	if err := initializers.DB.Create(&order).Error; err != nil {
		logger.Error().Err(err).Msg("Order creation failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	message := whatsapp.ComposeMessage(input.Form, product.Name, order.Quantity, order.TotalAmount)
	whatsappURL := whatsapp.ComposeLink(config.App.Whatsapp.Phone, message)

	notifyOrder(order, message)

	sendSuccess(ctx, gin.H{
		"orderId":     order.ID,
		"whatsappUrl": whatsappURL,
	})
}

// notifyOrder posts the composed message to the configured webhook and
// marks the order as sent. Failures are logged only; the order stands
// and the customer still gets the deep link.
func notifyOrder(order models.Order, message string) {
	notifyURL := config.App.Whatsapp.NotifyURL
	if notifyURL == "" {
		return
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"phone":   config.App.Whatsapp.Phone,
			"message": message,
		}).
		Post(notifyURL)
	if err != nil || resp.IsError() {
		logger.Warn().Err(err).Uint("order_id", order.ID).Msg("Order notification failed")
		return
	}

	if err := initializers.DB.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("whatsapp_sent", true).Error; err != nil {
		logger.Warn().Err(err).Uint("order_id", order.ID).Msg("whatsapp_sent flag not saved")
	}
}

// GetOrders lists every order, newest first (admin).
func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.Order("created_at DESC").Find(&orders)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Order listing failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	sendSuccess(ctx, orders)
}
