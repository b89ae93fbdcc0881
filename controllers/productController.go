package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Luxera/luxera-api/catalog"
	appconfig "github.com/Luxera/luxera-api/config"
	"github.com/Luxera/luxera-api/initializers"
	"github.com/Luxera/luxera-api/logger"
	"github.com/Luxera/luxera-api/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgInvalidRequestBody    = "Invalid request body"
	msgInvalidProductID      = "Invalid product ID"
	msgProductNotFound       = "Product not found"
	msgFailedToFetchProducts = "Failed to fetch products"
	msgFailedToFetchFeatured = "Failed to fetch featured products"
	msgFailedToFetchProduct  = "Failed to fetch product"
	msgFailedToAddProduct    = "Failed to add product"
	msgFailedToUpdateProduct = "Failed to update product"
	msgFailedToDeleteProduct = "Failed to delete product"
)

// GetProducts lists active products newest first, then applies the
// in-memory search/category/sort pipeline from the query parameters.
func GetProducts(ctx *gin.Context) {
	var products []models.Product
	result := initializers.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Product listing failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToFetchProducts)
		return
	}

	products = catalog.Filter(products, ctx.Query("search"), ctx.Query("category"))
	products = catalog.Sort(products, ctx.Query("sort"))

	sendSuccess(ctx, products)
}

// GetFeaturedProducts lists products that are both featured and active.
func GetFeaturedProducts(ctx *gin.Context) {
	var products []models.Product
	result := initializers.DB.
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("created_at DESC").
		Find(&products)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Featured product listing failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToFetchFeatured)
		return
	}

	sendSuccess(ctx, products)
}

// GetProduct returns one active product. Inactive products are a 404,
// same as missing ones.
func GetProduct(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	var product models.Product
	result := initializers.DB.
		Where("id = ? AND is_active = ?", productID, true).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendError(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			logger.Error().Err(result.Error).Int("product_id", productID).Msg("Product fetch failed")
			sendError(ctx, http.StatusInternalServerError, msgFailedToFetchProduct)
		}
		return
	}

	sendSuccess(ctx, product)
}

// CreateProduct adds a product (admin). New products start active.
func CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	product := models.Product{
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		OriginalPrice:      input.OriginalPrice,
		DiscountPercentage: input.DiscountPercentage,
		ImageURL:           input.ImageURL,
		Category:           input.Category,
		Specifications:     input.Specifications,
		IsFeatured:         input.IsFeatured,
		IsActive:           true,
		StockQuantity:      input.StockQuantity,
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		logger.Error().Err(err).Msg("Product creation failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToAddProduct)
		return
	}

	sendSuccess(ctx, gin.H{"id": product.ID})
}

// UpdateProduct overwrites every mutable field of a product (admin).
// Concurrent edits are last-write-wins; there is no versioning.
func UpdateProduct(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	updates := map[string]any{
		"name":                input.Name,
		"description":         input.Description,
		"price":               input.Price,
		"original_price":      input.OriginalPrice,
		"discount_percentage": input.DiscountPercentage,
		"image_url":           input.ImageURL,
		"category":            input.Category,
		"specifications":      input.Specifications,
		"is_featured":         input.IsFeatured,
		"stock_quantity":      input.StockQuantity,
	}

	result := initializers.DB.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(updates)
	if result.Error != nil {
		logger.Error().Err(result.Error).Int("product_id", productID).Msg("Product update failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToUpdateProduct)
		return
	}

	sendSuccess(ctx, nil)
}

// DeleteProduct soft-deletes by flipping is_active. The row stays for
// admin listings and historical orders.
func DeleteProduct(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	result := initializers.DB.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("is_active", false)
	if result.Error != nil {
		logger.Error().Err(result.Error).Int("product_id", productID).Msg("Product delete failed")
		sendError(ctx, http.StatusInternalServerError, msgFailedToDeleteProduct)
		return
	}

	sendSuccess(ctx, nil)
}

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages uploads product photos to S3 (admin) and points
// the product's image_url at the first successful upload.
func UploadProductImages(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidProductID)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendError(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			logger.Error().Err(err).Int("product_id", productID).Msg("Product lookup failed")
			sendError(ctx, http.StatusInternalServerError, msgFailedToFetchProduct)
		}
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		sendError(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendError(ctx, http.StatusBadRequest, "No files uploaded")
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		logger.Error().Err(err).Msg("AWS configuration failed")
		sendError(ctx, http.StatusInternalServerError, "Failed to configure storage")
		return
	}

	var uploadedURLs []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			logger.Warn().Err(openErr).Str("filename", file.Filename).Msg("Could not open upload")
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key to prevent overwrites between uploads.
		uniqueFilename := fmt.Sprintf("%d-%s-%s", productID, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(appconfig.App.S3.Bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			logger.Warn().Err(uploadErr).Str("filename", file.Filename).Msg("Upload failed")
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedURLs = append(uploadedURLs, result.Location)
	}

	if len(uploadedURLs) > 0 {
		if err := initializers.DB.Model(&product).Update("image_url", uploadedURLs[0]).Error; err != nil {
			logger.Error().Err(err).Int("product_id", productID).Msg("Image URL not saved")
		}
	}

	sendSuccess(ctx, gin.H{
		"urls":   uploadedURLs,
		"failed": failedUploads,
	})
}
