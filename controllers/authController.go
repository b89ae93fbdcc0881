package controllers

import (
	"net/http"
	"time"

	"github.com/Luxera/luxera-api/config"
	"github.com/Luxera/luxera-api/logger"
	"github.com/Luxera/luxera-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgInvalidInput       = "Invalid input"
	msgInvalidCredentials = "Invalid credentials"
	msgTokenError         = "Failed to generate token"
)

func generateAdminToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(config.App.Admin.JWTSecret))
}

// AdminLogin checks the configured admin credentials and issues a JWT.
// The rejection message never distinguishes wrong email from wrong
// password.
func AdminLogin(ctx *gin.Context) {
	var loginData models.AdminLogin
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendError(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	admin := config.App.Admin
	if loginData.Email != admin.Email {
		sendError(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(loginData.Password)); err != nil {
		sendError(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := generateAdminToken(loginData.Email)
	if err != nil {
		logger.Error().Err(err).Msg("JWT generation failed")
		sendError(ctx, http.StatusInternalServerError, msgTokenError)
		return
	}

	sendSuccess(ctx, gin.H{"token": tokenString})
}
