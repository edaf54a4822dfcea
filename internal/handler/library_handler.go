package handler

import (
	"errors"
	"net/http"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/ingest"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// region --- DTOs ---

// AddGameInput carries a game metadata graph plus ingestion options.
type AddGameInput struct {
	Metadata ingest.GameMeta    `json:"metadata" binding:"required"`
	Options  ingest.GameOptions `json:"options"`
}

// AddPersonInput carries person metadata plus ingestion options.
type AddPersonInput struct {
	Metadata ingest.PersonMeta `json:"metadata" binding:"required"`
	Options  ingest.AddOptions `json:"options"`
}

// AddCompanyInput carries company metadata plus ingestion options.
type AddCompanyInput struct {
	Metadata ingest.CompanyMeta `json:"metadata" binding:"required"`
	Options  ingest.AddOptions  `json:"options"`
}

// AddCharacterInput carries character metadata plus ingestion options.
type AddCharacterInput struct {
	Metadata ingest.CharacterMeta `json:"metadata" binding:"required"`
	Options  ingest.AddOptions    `json:"options"`
}

// AddResponse reports the outcome of an add operation. ExistingReason is set
// only on a dedup hit.
type AddResponse struct {
	ID             uuid.UUID `json:"id"`
	IsNew          bool      `json:"is_new"`
	ExistingReason string    `json:"existing_reason,omitempty"`
}

func newAddResponse(res ingest.AddResult) AddResponse {
	return AddResponse{
		ID:             res.ID,
		IsNew:          res.IsNew,
		ExistingReason: string(res.ExistingReason),
	}
}

func respondAdd(c *gin.Context, res ingest.AddResult, err error) {
	if err != nil {
		var ve *ingest.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ingestion failed"})
		return
	}
	status := http.StatusOK
	if res.IsNew {
		status = http.StatusCreated
	}
	c.JSON(status, newAddResponse(res))
}

// endregion

// region --- Write Handlers ---

// AddGame godoc
// @Summary      Ingest a game
// @Description  Materializes a game metadata graph (with nested persons, companies and characters) into the library. Returns the existing row on a dedup hit.
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AddGameInput true "Game metadata graph and options"
// @Success      201  {object}  AddResponse "Created"
// @Success      200  {object}  AddResponse "Dedup hit"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /library/games [post]
func AddGame(c *gin.Context) {
	var input AddGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := IngestService.AddGame(c.Request.Context(), input.Metadata, input.Options)
	respondAdd(c, res, err)
}

// AddPerson godoc
// @Summary      Ingest a person
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AddPersonInput true "Person metadata and options"
// @Success      201  {object}  AddResponse "Created"
// @Success      200  {object}  AddResponse "Dedup hit"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /library/persons [post]
func AddPerson(c *gin.Context) {
	var input AddPersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := IngestService.AddPerson(c.Request.Context(), input.Metadata, input.Options)
	respondAdd(c, res, err)
}

// AddCompany godoc
// @Summary      Ingest a company
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AddCompanyInput true "Company metadata and options"
// @Success      201  {object}  AddResponse "Created"
// @Success      200  {object}  AddResponse "Dedup hit"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /library/companies [post]
func AddCompany(c *gin.Context) {
	var input AddCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := IngestService.AddCompany(c.Request.Context(), input.Metadata, input.Options)
	respondAdd(c, res, err)
}

// AddCharacter godoc
// @Summary      Ingest a character
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AddCharacterInput true "Character metadata and options"
// @Success      201  {object}  AddResponse "Created"
// @Success      200  {object}  AddResponse "Dedup hit"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /library/characters [post]
func AddCharacter(c *gin.Context) {
	var input AddCharacterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := IngestService.AddCharacter(c.Request.Context(), input.Metadata, input.Options)
	respondAdd(c, res, err)
}

// endregion

// region --- Read Handlers ---

func listEntities[T any](c *gin.Context) {
	page, limit := pageParams(c)

	query := database.DB.Model(new(T))
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	response, err := Paginate[T](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entities"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetGames godoc
// @Summary      List games
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        q     query string false "Search query for game name"
// @Param        page  query int    false "Page number" default(1)
// @Param        limit query int    false "Items per page" default(20)
// @Success      200 {object} PaginatedResponse[models.Game]
// @Router       /library/games [get]
func GetGames(c *gin.Context) {
	listEntities[models.Game](c)
}

// GetPersons godoc
// @Summary      List persons
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} PaginatedResponse[models.Person]
// @Router       /library/persons [get]
func GetPersons(c *gin.Context) {
	listEntities[models.Person](c)
}

// GetCompanies godoc
// @Summary      List companies
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} PaginatedResponse[models.Company]
// @Router       /library/companies [get]
func GetCompanies(c *gin.Context) {
	listEntities[models.Company](c)
}

// GetCharacters godoc
// @Summary      List characters
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} PaginatedResponse[models.Character]
// @Router       /library/characters [get]
func GetCharacters(c *gin.Context) {
	listEntities[models.Character](c)
}

// endregion
