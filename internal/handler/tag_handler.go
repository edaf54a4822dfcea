package handler

import (
	"net/http"
	"time"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TagResponse is the public view of a tag. Tags are created by ingestion, not
// through this API.
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	NSFW      bool      `json:"nsfw"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		CreatedAt: tag.CreatedAt,
		Name:      tag.Name,
		NSFW:      tag.NSFW,
	}
}

// GetTags godoc
// @Summary      Get all tags
// @Description  Retrieves a list of all tags known to the library.
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   TagResponse
// @Router       /tags [get]
func GetTags(c *gin.Context) {
	var tags []models.Tag
	database.DB.Order("name").Find(&tags)

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}
