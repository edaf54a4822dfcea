package handler

import (
	"net/http"

	"gamevault/backend/internal/config"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenInput defines the structure for the API-key exchange.
type TokenInput struct {
	APIKey string `json:"api_key" binding:"required"`
}

// GetToken godoc
// @Summary      Exchange the API key for a bearer token
// @Description  Authenticates a scraper client with the configured API key and returns a JWT for the write endpoints.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body TokenInput true "API key"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/token [post]
func GetToken(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if config.AppConfig.APIKey == "" || input.APIKey != config.AppConfig.APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
		return
	}

	token, err := jwt.GenerateToken("scraper")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
