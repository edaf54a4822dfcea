package handler

import (
	"net/http"
	"time"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CollectionInput struct {
	Name string `json:"name" binding:"required"`
}

type CollectionResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
}

func newCollectionResponse(col models.Collection) CollectionResponse {
	return CollectionResponse{
		ID:        col.ID,
		CreatedAt: col.CreatedAt,
		Name:      col.Name,
	}
}

// CreateCollection godoc
// @Summary      Create a collection
// @Description  Creates a collection whose id can be targeted by add operations.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CollectionInput true "Collection Info"
// @Success      201  {object}  CollectionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /collections [post]
func CreateCollection(c *gin.Context) {
	var input CollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	col := models.Collection{ID: uuid.New(), Name: input.Name}
	if err := database.DB.Create(&col).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusCreated, newCollectionResponse(col))
}

// GetCollections godoc
// @Summary      Get all collections
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   CollectionResponse
// @Router       /collections [get]
func GetCollections(c *gin.Context) {
	var cols []models.Collection
	database.DB.Order("name").Find(&cols)

	response := make([]CollectionResponse, 0, len(cols))
	for _, col := range cols {
		response = append(response, newCollectionResponse(col))
	}
	c.JSON(http.StatusOK, response)
}
