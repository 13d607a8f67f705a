// File: handlers/auth.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"roomify/config"
	"roomify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AuthHandler implements the admin login gate. Credentials come from
// configuration; there is no user model behind them.
type AuthHandler struct {
	Logger *zap.Logger

	username     string
	passwordHash []byte
}

// NewAuthHandler hashes the configured admin password once at startup so the
// plaintext is never kept around for comparisons.
func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	return &AuthHandler{
		Logger:       logger,
		username:     config.AppConfig.AdminUsername,
		passwordHash: hash,
	}
}

// AdminLoginHandler checks the submitted credentials and mints a bearer token
// for the admin routes. The token's hash is cached so it can expire and be
// revoked server-side.
func (h *AuthHandler) AdminLoginHandler(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Username and password are required.", err.Error())
		return
	}

	if input.Username != h.username ||
		bcrypt.CompareHashAndPassword(h.passwordHash, []byte(input.Password)) != nil {
		h.Logger.Warn("admin login rejected", zap.String("username", input.Username))
		utils.JSONError(c, http.StatusUnauthorized, "Invalid admin credentials.", "")
		return
	}

	token, err := utils.GenerateAdminToken(input.Username, adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create admin session.", err.Error())
		return
	}

	cache := utils.GetAuthCacheClient()
	if err := cache.Set(context.Background(), "admin_token:"+utils.HashToken(token), 1, adminTokenTTL).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store admin session.", err.Error())
		return
	}

	h.Logger.Info("admin logged in", zap.String("username", input.Username))
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}
